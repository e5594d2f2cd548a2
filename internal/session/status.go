package session

import "sync"

// State is a source's connection lifecycle phase.
type State int

const (
	StateConnecting State = iota
	StateConnected
	StateError
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the connection state plus the failure message when the
// state is StateError. StateError is terminal for a session: the
// ingestion loop exits after entering it and is never restarted.
type Status struct {
	State   State
	Message string
}

// statusCell guards one source's status between the ingestion goroutine
// (writer) and the render loop (reader).
type statusCell struct {
	mu     sync.Mutex
	status Status
}

func (c *statusCell) get() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *statusCell) set(s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
}

func (c *statusCell) fail(message string) {
	c.set(Status{State: StateError, Message: message})
}
