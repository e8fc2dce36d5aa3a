package events

import (
	"sync"
	"time"
)

// Event describes a cart state change delivered to subscribers.
type Event struct {
	Topic      string
	CartID     string
	OccurredAt time.Time
}

// Handler reacts to a published event. Handlers run synchronously on the
// publishing goroutine; they must not block.
type Handler func(Event)

// Bus fans cart events out to in-process subscribers. It is the seam
// between the cart's state mutations and everything that re-renders or
// measures in response.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Subscribe registers a handler for the topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	if b == nil || topic == "" || h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers the event to every handler subscribed to its topic.
// Publishing on a nil bus is a no-op so collaborators can treat the bus
// as optional.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	b.mu.RLock()
	handlers := b.handlers[ev.Topic]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(ev)
	}
}
