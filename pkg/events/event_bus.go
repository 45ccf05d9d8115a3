package events

import (
	"sync"

	"github.com/mintgate/mintterm/pkg/logging"
)

// EventBus carries all terminal-level signaling: input submission, history
// navigation, clear requests, prompt and theme changes. One instance is
// created per application root and passed explicitly to components.
//
// Emission is synchronous: all handlers registered for an event type are
// invoked in registration order on the emitting goroutine. Each handler is
// individually recover-guarded so one failure never blocks the rest. No
// ordering is promised across different event types.
type EventBus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
	once    bool
}

// NewEventBus creates a new terminal event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for a specific event type.
// Returns an unsubscribe function.
func (bus *EventBus) Subscribe(eventType string, handler func(interface{})) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// SubscribeOnce registers a handler that will only be called once
func (bus *EventBus) SubscribeOnce(eventType string, handler func(interface{})) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    true,
	})

	return func() {
		bus.unsubscribe(eventType, id)
	}
}

// Emit sends an event to all subscribers of the given event type.
// Handlers run synchronously in registration order; a panicking handler is
// logged and skipped without affecting the others.
func (bus *EventBus) Emit(eventType string, event interface{}) {
	bus.mu.RLock()
	subscribers := bus.subscribers[eventType]
	// Snapshot to avoid holding the lock during handler execution
	handlersCopy := make([]subscriberInfo, len(subscribers))
	copy(handlersCopy, subscribers)
	bus.mu.RUnlock()

	var onceHandlerIDs []int

	for _, sub := range handlersCopy {
		if sub.once {
			onceHandlerIDs = append(onceHandlerIDs, sub.id)
		}
		invoke(eventType, sub.handler, event)
	}

	if len(onceHandlerIDs) > 0 {
		bus.mu.Lock()
		for _, id := range onceHandlerIDs {
			bus.removeSubscriber(eventType, id)
		}
		bus.mu.Unlock()
	}
}

func invoke(eventType string, handler func(interface{}), event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("event handler panicked", "event", eventType, "panic", r)
		}
	}()
	handler(event)
}

// Clear removes all subscribers
func (bus *EventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.subscribers = make(map[string][]subscriberInfo)
}

// unsubscribe removes a specific subscriber
func (bus *EventBus) unsubscribe(eventType string, id int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.removeSubscriber(eventType, id)
}

// removeSubscriber removes a subscriber by ID (must be called with lock held)
func (bus *EventBus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]

	for i, sub := range subscribers {
		if sub.id == id {
			bus.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			if len(bus.subscribers[eventType]) == 0 {
				delete(bus.subscribers, eventType)
			}
			break
		}
	}
}
