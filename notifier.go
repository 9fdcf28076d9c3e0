package realtime

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StateListener observes connected/disconnected transitions.
type StateListener func(connected bool)

type stateRegistration struct {
	id string
	fn StateListener
}

// stateNotifier keeps connectivity listeners separate from topic dispatch:
// components that only care whether the pipe is up (a connectivity icon, a
// re-fetch trigger) subscribe here instead of special-casing a topic.
type stateNotifier struct {
	mu        sync.Mutex
	listeners []stateRegistration
	logger    *zap.Logger
}

func newStateNotifier(logger *zap.Logger) *stateNotifier {
	return &stateNotifier{logger: logger}
}

// add registers fn and returns its unsubscribe closure. Double-unsubscribe
// is a no-op.
func (n *stateNotifier) add(fn StateListener) func() {
	id := uuid.NewString()

	n.mu.Lock()
	n.listeners = append(n.listeners, stateRegistration{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.remove(id)
	}
}

func (n *stateNotifier) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, reg := range n.listeners {
		if reg.id == id {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// notify invokes every listener in registration order with the new
// connectivity state, isolating panics the same way topic dispatch does.
func (n *stateNotifier) notify(connected bool) {
	n.mu.Lock()
	snapshot := append([]stateRegistration(nil), n.listeners...)
	n.mu.Unlock()

	for _, reg := range snapshot {
		n.invoke(reg, connected)
	}
}

func (n *stateNotifier) invoke(reg stateRegistration, connected bool) {
	defer func() {
		if p := recover(); p != nil {
			n.logger.Error("connection-state listener panic", zap.Any("panic", p))
		}
	}()
	reg.fn(connected)
}
