package state

import (
	"sync"
	"time"
)

// TerminalState tracks the session flags the controller dispatches on:
// whether the session is unlocked, whether a command is in flight, and
// the current prompt label.
type TerminalState struct {
	mu                  sync.RWMutex
	authenticated       bool
	processing          bool
	processingStartTime time.Time
	prompt              string
}

func NewTerminalState(prompt string) *TerminalState {
	return &TerminalState{
		prompt: prompt,
	}
}

func (s *TerminalState) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *TerminalState) SetAuthenticated(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = authenticated
}

// TryBeginProcessing flips the processing flag on, unless a command is
// already in flight. Submissions that lose the race are dropped, not
// queued.
func (s *TerminalState) TryBeginProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return false
	}
	s.processing = true
	s.processingStartTime = time.Now()
	return true
}

func (s *TerminalState) EndProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = false
}

func (s *TerminalState) IsProcessing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processing
}

func (s *TerminalState) GetProcessingDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.processing {
		return 0
	}
	return time.Since(s.processingStartTime)
}

func (s *TerminalState) GetPrompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt
}

func (s *TerminalState) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
}
