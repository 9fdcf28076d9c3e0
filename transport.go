package realtime

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// dialFunc opens a websocket connection to the given endpoint. The client
// uses a gorilla dialer; tests swap in a counting or failing implementation.
type dialFunc func(ctx context.Context, endpoint string) (*websocket.Conn, error)

func gorillaDial(handshakeTimeout time.Duration) dialFunc {
	return func(ctx context.Context, endpoint string) (*websocket.Conn, error) {
		dialer := websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		}
		conn, _, err := dialer.DialContext(ctx, endpoint, nil)
		return conn, err
	}
}

// wsEndpoint derives the websocket endpoint from the configured HTTP origin:
// scheme translated http→ws and https→wss, fixed /ws path, and the auth
// token as a query parameter. Origins already using a ws scheme pass through.
func wsEndpoint(baseURL, token string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
