package realtime

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener receives inbound events for a subscribed topic.
type Listener func(Event)

type registration struct {
	id string
	fn Listener
}

// topicRegistry routes inbound events to listeners keyed by event type.
// Listeners are invoked in registration order, specific topic first, then the
// wildcard topic.
type topicRegistry struct {
	mu     sync.Mutex
	topics map[string][]registration
	logger *zap.Logger
}

func newTopicRegistry(logger *zap.Logger) *topicRegistry {
	return &topicRegistry{
		topics: make(map[string][]registration),
		logger: logger,
	}
}

// add registers fn under topic and returns a closure removing exactly that
// registration. Calling the closure more than once is a no-op.
func (r *topicRegistry) add(topic string, fn Listener) func() {
	id := uuid.NewString()

	r.mu.Lock()
	r.topics[topic] = append(r.topics[topic], registration{id: id, fn: fn})
	r.mu.Unlock()

	return func() {
		r.remove(topic, id)
	}
}

func (r *topicRegistry) remove(topic, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.topics[topic]
	for i, reg := range regs {
		if reg.id == id {
			r.topics[topic] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(r.topics[topic]) == 0 {
		delete(r.topics, topic)
	}
}

// dispatch invokes the listeners for ev's topic, then the wildcard listeners.
// A panicking listener is logged and does not stop the remaining listeners.
func (r *topicRegistry) dispatch(ev Event) {
	r.mu.Lock()
	ordered := make([]registration, 0, len(r.topics[ev.Type])+len(r.topics[TopicWildcard]))
	ordered = append(ordered, r.topics[ev.Type]...)
	if ev.Type != TopicWildcard {
		ordered = append(ordered, r.topics[TopicWildcard]...)
	}
	r.mu.Unlock()

	for _, reg := range ordered {
		r.invoke(reg, ev)
	}
}

func (r *topicRegistry) invoke(reg registration, ev Event) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("listener panic",
				zap.String("topic", ev.Type),
				zap.Any("panic", p),
			)
		}
	}()
	reg.fn(ev)
}
