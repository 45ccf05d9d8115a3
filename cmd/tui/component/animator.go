package component

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

const minTypingDelay = 2 * time.Millisecond

// Animator paces the typewriter output and carries the generation counter
// that lets a clear cancel whatever animation is still in flight. The
// sleep function is injectable so pacing logic is testable without real
// waiting.
type Animator struct {
	mu         sync.Mutex
	generation int64
	rng        *rand.Rand
	sleep      func(time.Duration)

	delay    time.Duration
	variance time.Duration
	instant  bool
}

func NewAnimator(config *types.Config) *Animator {
	a := &Animator{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:    time.Sleep,
		delay:    time.Duration(config.TypingDelayMs) * time.Millisecond,
		variance: time.Duration(config.TypingVarianceMs) * time.Millisecond,
		instant:  config.Instant,
	}
	if a.delay <= 0 {
		a.delay = 12 * time.Millisecond
	}
	return a
}

// SetSleep replaces the wait function, for tests
func (a *Animator) SetSleep(sleep func(time.Duration)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sleep = sleep
}

// Generation returns the token animations must carry to stay valid
func (a *Animator) Generation() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// Cancel invalidates every animation started before this call
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
}

// Alive reports whether an animation holding gen may keep animating
func (a *Animator) Alive(gen int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation == gen
}

// NextDelay returns a jittered per-line delay with a lower floor so even
// unlucky draws read as typing rather than a dump.
func (a *Animator) NextDelay() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.instant {
		return 0
	}
	d := a.delay
	if a.variance > 0 {
		d += time.Duration(a.rng.Int63n(int64(a.variance)))
	}
	if d < minTypingDelay {
		d = minTypingDelay
	}
	return d
}

// Pace sleeps one jittered delay if the generation is still alive.
// Returns false when the animation has been cancelled.
func (a *Animator) Pace(gen int64) bool {
	if !a.Alive(gen) {
		return false
	}
	if d := a.NextDelay(); d > 0 {
		a.mu.Lock()
		sleep := a.sleep
		a.mu.Unlock()
		sleep(d)
	}
	return a.Alive(gen)
}
