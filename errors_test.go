package realtime

import (
	"errors"
	"strings"
	"testing"
)

func TestConnectionError(t *testing.T) {
	cause := errors.New("no dice")
	err := &ConnectionError{URL: "https://api.irepair.example", Cause: cause}

	msg := err.Error()
	if !strings.Contains(msg, "https://api.irepair.example") {
		t.Errorf("Error() = %q, should contain the URL", msg)
	}
	if !strings.Contains(msg, "no dice") {
		t.Errorf("Error() = %q, should contain the cause", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should unwrap to the cause")
	}
}

func TestConnStateString(t *testing.T) {
	cases := []struct {
		state ConnState
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateConnecting, "connecting"},
		{StateOpen, "open"},
		{StateClosing, "closing"},
		{ConnState(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("ConnState(%d).String() = %q, want %q", int(tc.state), got, tc.want)
		}
	}
}
