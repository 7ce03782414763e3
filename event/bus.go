package event

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ncobase/taskboard/logging/logger"
)

// Data basic event data
type Data struct {
	Time      time.Time
	Source    string
	EventType string
	Payload   any
}

// Handler receives published events
type Handler func(Data)

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous event bus: Publish returns after every handler ran.
type Bus struct {
	source      string
	subscribers map[string][]subscriber
	mu          sync.RWMutex
	nextID      atomic.Uint64
	metrics     struct {
		processed     atomic.Int64
		failed        atomic.Int64
		lastEventTime atomic.Value
	}
}

// Wildcard subscribes to every event type
const Wildcard = "*"

// NewBus creates a new Bus
func NewBus(source string) *Bus {
	return &Bus{
		source:      source,
		subscribers: make(map[string][]subscriber),
	}
}

// Subscribe adds a handler for an event type and returns a function removing it
func (b *Bus) Subscribe(eventType string, handler Handler) func() {
	if handler == nil {
		return func() {}
	}

	id := b.nextID.Add(1)
	b.mu.Lock()
	b.subscribers[eventType] = append(b.subscribers[eventType], subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subscribers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers an event to its subscribers and to wildcard subscribers
func (b *Bus) Publish(eventType string, payload any) {
	b.mu.RLock()
	handlers := make([]subscriber, 0, len(b.subscribers[eventType])+len(b.subscribers[Wildcard]))
	handlers = append(handlers, b.subscribers[eventType]...)
	if eventType != Wildcard {
		handlers = append(handlers, b.subscribers[Wildcard]...)
	}
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	data := Data{
		Time:      time.Now(),
		Source:    b.source,
		EventType: eventType,
		Payload:   payload,
	}
	b.metrics.lastEventTime.Store(data.Time)

	for _, s := range handlers {
		b.dispatch(s.handler, data)
	}
}

func (b *Bus) dispatch(h Handler, data Data) {
	defer func() {
		if r := recover(); r != nil {
			b.metrics.failed.Add(1)
			logger.Errorf(context.Background(), "event handler panic on %s: %v", data.EventType, r)
		}
	}()
	h(data)
	b.metrics.processed.Add(1)
}

// GetMetrics returns metrics
func (b *Bus) GetMetrics() map[string]any {
	return map[string]any{
		"processed_events": b.metrics.processed.Load(),
		"failed_events":    b.metrics.failed.Load(),
		"last_event_time":  b.metrics.lastEventTime.Load(),
	}
}
