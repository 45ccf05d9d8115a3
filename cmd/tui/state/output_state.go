package state

import (
	"sync"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// OutputState holds the rendered terminal transcript. The greeting block
// lives outside the scrollback proper so that clearing the screen keeps
// the banner in place.
type OutputState struct {
	mu       sync.RWMutex
	greeting []types.OutputItem
	items    []types.OutputItem
	maxItems int
}

func NewOutputState(maxItems int) *OutputState {
	if maxItems <= 0 {
		maxItems = 500 // Default fallback
	}
	return &OutputState{
		items:    []types.OutputItem{},
		maxItems: maxItems,
	}
}

func (s *OutputState) SetGreeting(items []types.OutputItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greeting = make([]types.OutputItem, len(items))
	copy(s.greeting, items)
}

func (s *OutputState) GetGreeting() []types.OutputItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	greetingCopy := make([]types.OutputItem, len(s.greeting))
	copy(greetingCopy, s.greeting)
	return greetingCopy
}

func (s *OutputState) AddItems(items ...types.OutputItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, items...)

	if len(s.items) > s.maxItems {
		s.items = s.items[len(s.items)-s.maxItems:]
	}
}

// GetItems returns the greeting block followed by the scrollback
func (s *OutputState) GetItems() []types.OutputItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]types.OutputItem, 0, len(s.greeting)+len(s.items))
	all = append(all, s.greeting...)
	all = append(all, s.items...)
	return all
}

func (s *OutputState) GetItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear empties the scrollback but keeps the greeting block. Clearing an
// already-clear terminal is a no-op.
func (s *OutputState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []types.OutputItem{}
}
