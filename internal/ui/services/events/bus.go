package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services.
// Handlers run synchronously on the publishing goroutine, in subscription order,
// so a subscriber always observes the state the publisher has just written.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := EventType(event)

	// Snapshot the handlers so a listener may publish or subscribe re-entrantly
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[eventType]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// EventType extracts the type name used as the subscription key, e.g. "listing.DataChangedEvent"
func EventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
