package realtime

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a client beyond the required Config fields.
type Option func(*settings)

// WithLogger routes the client's internal logging to logger. The default
// logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVocabulary selects the outbound command dialect. The default is
// RoomVocabulary.
func WithVocabulary(v Vocabulary) Option {
	return func(s *settings) {
		s.vocab = v
	}
}

// WithMaxReconnectAttempts caps automatic reconnection. Zero disables
// reconnection entirely; negative values are ignored.
func WithMaxReconnectAttempts(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.maxReconnectAttempts = n
		}
	}
}

// WithReconnectDelay sets the base and maximum backoff delays between
// reconnection attempts.
func WithReconnectDelay(base, max time.Duration) Option {
	return func(s *settings) {
		if base > 0 {
			s.reconnectBase = base
		}
		if max > 0 {
			s.reconnectMax = max
		}
	}
}

// WithDialTimeout bounds connection establishment. A dial still pending when
// the timeout fires is abandoned and counts as a failed attempt.
func WithDialTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.dialTimeout = d
		}
	}
}

// WithWriteTimeout sets the per-frame write deadline.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithPingInterval sets the keepalive ping cadence. Zero disables keepalive.
func WithPingInterval(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.pingInterval = d
		}
	}
}
