package realtime

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by frame writes attempted while the socket is
// not open. The public command methods translate it into a false return
// instead of surfacing it.
var ErrNotConnected = errors.New("client is not connected")

// ConnectionError represents a failure to derive or reach the websocket
// endpoint for the messaging backend.
type ConnectionError struct {
	URL   string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error [%s]: %v", e.URL, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
