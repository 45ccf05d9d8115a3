package state

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTerminalState_Authentication(t *testing.T) {
	s := NewTerminalState("user@mintgate:~$")

	assert.False(t, s.IsAuthenticated(), "sessions start locked")

	s.SetAuthenticated(true)
	assert.True(t, s.IsAuthenticated())

	s.SetAuthenticated(false)
	assert.False(t, s.IsAuthenticated())
}

func TestTerminalState_Processing(t *testing.T) {
	s := NewTerminalState("$")

	assert.False(t, s.IsProcessing())
	assert.Equal(t, int64(0), int64(s.GetProcessingDuration()))

	assert.True(t, s.TryBeginProcessing())
	assert.True(t, s.IsProcessing())

	// Second submission while in flight is dropped
	assert.False(t, s.TryBeginProcessing())

	time.Sleep(time.Millisecond)
	assert.Greater(t, int64(s.GetProcessingDuration()), int64(0), "duration ticks while in flight")

	s.EndProcessing()
	assert.False(t, s.IsProcessing())
	assert.Equal(t, int64(0), int64(s.GetProcessingDuration()), "duration resets when idle")
	assert.True(t, s.TryBeginProcessing())
}

func TestTerminalState_ProcessingRace(t *testing.T) {
	s := NewTerminalState("$")

	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryBeginProcessing() {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins, "exactly one concurrent submission may win")
}

func TestTerminalState_Prompt(t *testing.T) {
	s := NewTerminalState("guest@mintgate:~$")
	assert.Equal(t, "guest@mintgate:~$", s.GetPrompt())

	s.SetPrompt("user@mintgate:~$")
	assert.Equal(t, "user@mintgate:~$", s.GetPrompt())
}
