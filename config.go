package realtime

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// TokenSource supplies the auth token for a connection attempt. The token is
// read fresh on every attempt, so a token refreshed by the session layer is
// picked up on the next retry. An empty token means "not signed in yet" and
// makes Connect a soft no-op rather than an error.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() (string, error)

func (f TokenFunc) Token() (string, error) { return f() }

// StaticToken returns a TokenSource that always yields tok.
func StaticToken(tok string) TokenSource {
	return TokenFunc(func() (string, error) { return tok, nil })
}

// EnvToken returns a TokenSource backed by the named environment variable.
func EnvToken(key string) TokenSource {
	return TokenFunc(func() (string, error) { return os.Getenv(key), nil })
}

// Config holds the configuration for a realtime client.
type Config struct {
	// BaseURL is the HTTP origin of the irepair backend. Its scheme is
	// translated (http→ws, https→wss) to derive the websocket endpoint.
	// Fallback: IREPAIR_BASE_URL environment variable.
	BaseURL string

	// Tokens supplies the auth token for each connection attempt.
	// Fallback: a source reading the IREPAIR_AUTH_TOKEN environment variable.
	Tokens TokenSource

	// UserID identifies the current staff user in typing indicators and read
	// receipts. Fallback: IREPAIR_USER_ID environment variable.
	UserID string
}

// settings are the tunables applied by Options, kept off Config so the zero
// Config stays a plain value callers can build literally.
type settings struct {
	logger               *zap.Logger
	vocab                Vocabulary
	maxReconnectAttempts int
	reconnectBase        time.Duration
	reconnectMax         time.Duration
	dialTimeout          time.Duration
	writeTimeout         time.Duration
	pingInterval         time.Duration
}

func defaultSettings() settings {
	return settings{
		logger:               zap.NewNop(),
		vocab:                RoomVocabulary(),
		maxReconnectAttempts: 5,
		reconnectBase:        1 * time.Second,
		reconnectMax:         30 * time.Second,
		dialTimeout:          10 * time.Second,
		writeTimeout:         5 * time.Second,
		pingInterval:         30 * time.Second,
	}
}

// resolveConfig fills empty fields from environment variables and validates
// required fields.
func resolveConfig(cfg Config) (Config, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("IREPAIR_BASE_URL")
	}
	if cfg.Tokens == nil {
		cfg.Tokens = EnvToken("IREPAIR_AUTH_TOKEN")
	}
	if cfg.UserID == "" {
		cfg.UserID = os.Getenv("IREPAIR_USER_ID")
	}

	if cfg.BaseURL == "" {
		return cfg, fmt.Errorf("BaseURL is required (set in Config or IREPAIR_BASE_URL env)")
	}

	return cfg, nil
}
