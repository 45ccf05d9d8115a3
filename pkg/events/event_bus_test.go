package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestEvent struct {
	Message string
}

func TestEventBus_Subscribe_And_Emit(t *testing.T) {
	t.Run("subscriber receives emitted event", func(t *testing.T) {
		bus := NewEventBus()
		var receivedEvent interface{}

		bus.Subscribe("test.event", func(event interface{}) {
			receivedEvent = event
		})

		testEvent := TestEvent{Message: "hello"}
		bus.Emit("test.event", testEvent)

		assert.Equal(t, testEvent, receivedEvent)
	})

	t.Run("multiple subscribers receive same event in registration order", func(t *testing.T) {
		bus := NewEventBus()
		var order []string

		bus.Subscribe("multi.event", func(event interface{}) {
			order = append(order, "first")
		})
		bus.Subscribe("multi.event", func(event interface{}) {
			order = append(order, "second")
		})

		bus.Emit("multi.event", TestEvent{Message: "broadcast"})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("subscriber only receives subscribed event type", func(t *testing.T) {
		bus := NewEventBus()
		receivedCorrect := false
		receivedWrong := false

		bus.Subscribe("specific.event", func(event interface{}) {
			receivedCorrect = true
		})
		bus.Subscribe("other.event", func(event interface{}) {
			receivedWrong = true
		})

		bus.Emit("specific.event", TestEvent{Message: "specific"})

		assert.True(t, receivedCorrect, "Should receive subscribed event")
		assert.False(t, receivedWrong, "Should not receive unsubscribed event")
	})

	t.Run("unsubscribe stops receiving events", func(t *testing.T) {
		bus := NewEventBus()
		callCount := 0

		unsubscribe := bus.Subscribe("unsub.event", func(event interface{}) {
			callCount++
		})

		bus.Emit("unsub.event", TestEvent{})
		assert.Equal(t, 1, callCount)

		unsubscribe()

		bus.Emit("unsub.event", TestEvent{})
		assert.Equal(t, 1, callCount, "Should not receive events after unsubscribe")
	})

	t.Run("emit with no subscribers does not panic", func(t *testing.T) {
		bus := NewEventBus()

		assert.NotPanics(t, func() {
			bus.Emit("no.subscribers", TestEvent{Message: "alone"})
		})
	})

	t.Run("panicking handler does not block later handlers", func(t *testing.T) {
		bus := NewEventBus()
		laterCalled := false

		bus.Subscribe("panic.event", func(event interface{}) {
			panic("handler failure")
		})
		bus.Subscribe("panic.event", func(event interface{}) {
			laterCalled = true
		})

		assert.NotPanics(t, func() {
			bus.Emit("panic.event", TestEvent{})
		})
		assert.True(t, laterCalled, "Handler after a panicking one should still run")
	})

	t.Run("concurrent emit and subscribe is safe", func(t *testing.T) {
		bus := NewEventBus()

		var mu sync.Mutex
		eventCount := 0

		bus.Subscribe("concurrent.event", func(event interface{}) {
			mu.Lock()
			eventCount++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bus.Emit("concurrent.event", TestEvent{})
			}()
		}
		wg.Wait()

		mu.Lock()
		assert.Equal(t, 100, eventCount, "All events should be received")
		mu.Unlock()
	})
}

func TestEventBus_SubscribeOnce(t *testing.T) {
	bus := NewEventBus()
	callCount := 0

	bus.SubscribeOnce("once.event", func(event interface{}) {
		callCount++
	})

	bus.Emit("once.event", TestEvent{})
	bus.Emit("once.event", TestEvent{})
	bus.Emit("once.event", TestEvent{})

	assert.Equal(t, 1, callCount, "SubscribeOnce handler should only be called once")
}

func TestEventBus_Clear(t *testing.T) {
	bus := NewEventBus()
	received := false

	bus.Subscribe("clear.event", func(event interface{}) {
		received = true
	})

	bus.Clear()
	bus.Emit("clear.event", TestEvent{})

	assert.False(t, received, "Should not receive event after clear")
}

func TestEventBus_ReSubscribeAfterUnsubscribe(t *testing.T) {
	// Re-running initialization must not leave duplicate subscriptions when
	// callers unsubscribe before re-subscribing.
	bus := NewEventBus()
	callCount := 0

	subscribe := func() func() {
		return bus.Subscribe("setup.event", func(event interface{}) {
			callCount++
		})
	}

	unsub := subscribe()
	unsub()
	subscribe()

	bus.Emit("setup.event", TestEvent{})
	require.Equal(t, 1, callCount)
}

func BenchmarkEventBus_Emit(b *testing.B) {
	bus := NewEventBus()

	for i := 0; i < 10; i++ {
		bus.Subscribe("bench.event", func(event interface{}) {})
	}

	event := TestEvent{Message: "benchmark"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Emit("bench.event", event)
	}
}
