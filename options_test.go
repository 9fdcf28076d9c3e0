package realtime

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()

	if s.maxReconnectAttempts != 5 {
		t.Errorf("maxReconnectAttempts = %d, want 5", s.maxReconnectAttempts)
	}
	if s.reconnectBase != time.Second {
		t.Errorf("reconnectBase = %v, want 1s", s.reconnectBase)
	}
	if s.reconnectMax != 30*time.Second {
		t.Errorf("reconnectMax = %v, want 30s", s.reconnectMax)
	}
	if s.dialTimeout != 10*time.Second {
		t.Errorf("dialTimeout = %v, want 10s", s.dialTimeout)
	}
	if s.vocab.Name != "room" {
		t.Errorf("default vocabulary = %q, want room", s.vocab.Name)
	}
	if s.logger == nil {
		t.Error("default logger should be a nop logger, not nil")
	}
}

func TestOptionsApply(t *testing.T) {
	s := defaultSettings()
	logger := zap.NewExample()

	for _, opt := range []Option{
		WithLogger(logger),
		WithVocabulary(CommandVocabulary()),
		WithMaxReconnectAttempts(2),
		WithReconnectDelay(100*time.Millisecond, 3*time.Second),
		WithDialTimeout(4 * time.Second),
		WithWriteTimeout(2 * time.Second),
		WithPingInterval(0),
	} {
		opt(&s)
	}

	if s.logger != logger {
		t.Error("WithLogger not applied")
	}
	if s.vocab.Name != "command" {
		t.Errorf("vocabulary = %q, want command", s.vocab.Name)
	}
	if s.maxReconnectAttempts != 2 {
		t.Errorf("maxReconnectAttempts = %d, want 2", s.maxReconnectAttempts)
	}
	if s.reconnectBase != 100*time.Millisecond || s.reconnectMax != 3*time.Second {
		t.Errorf("reconnect delays = %v/%v", s.reconnectBase, s.reconnectMax)
	}
	if s.dialTimeout != 4*time.Second {
		t.Errorf("dialTimeout = %v, want 4s", s.dialTimeout)
	}
	if s.writeTimeout != 2*time.Second {
		t.Errorf("writeTimeout = %v, want 2s", s.writeTimeout)
	}
	if s.pingInterval != 0 {
		t.Errorf("pingInterval = %v, want 0 (keepalive disabled)", s.pingInterval)
	}
}

func TestOptionGuards(t *testing.T) {
	s := defaultSettings()

	WithLogger(nil)(&s)
	if s.logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}

	WithMaxReconnectAttempts(-1)(&s)
	if s.maxReconnectAttempts != 5 {
		t.Errorf("negative attempt cap applied: %d", s.maxReconnectAttempts)
	}

	WithReconnectDelay(0, 0)(&s)
	if s.reconnectBase != time.Second || s.reconnectMax != 30*time.Second {
		t.Errorf("zero reconnect delays applied: %v/%v", s.reconnectBase, s.reconnectMax)
	}

	WithDialTimeout(0)(&s)
	if s.dialTimeout != 10*time.Second {
		t.Errorf("zero dial timeout applied: %v", s.dialTimeout)
	}

	WithPingInterval(-time.Second)(&s)
	if s.pingInterval != 30*time.Second {
		t.Errorf("negative ping interval applied: %v", s.pingInterval)
	}
}
