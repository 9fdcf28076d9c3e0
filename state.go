package realtime

// ConnState is the lifecycle state of the managed connection.
type ConnState int

const (
	// StateDisconnected means no connection exists and none is being made.
	StateDisconnected ConnState = iota

	// StateConnecting means a dial is in flight.
	StateConnecting

	// StateOpen means the connection is established and frames flow.
	StateOpen

	// StateClosing means an explicit Disconnect is tearing the socket down.
	StateClosing
)

// String returns the string representation of a ConnState.
func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}
