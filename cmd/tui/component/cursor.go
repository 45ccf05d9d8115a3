package component

import (
	"sync"
	"time"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

const DefaultBlinkInterval = 530 * time.Millisecond

// Cursor is the blinking caret spliced into the input line. It is a pure
// state machine: Frame renders the current line with the caret glyph, and
// the owning component drives blinking and pushes frames to the screen.
type Cursor struct {
	mu      sync.Mutex
	value   string
	pos     int
	visible bool
	paused  bool
	style   types.CursorStyle
}

func NewCursor(style types.CursorStyle) *Cursor {
	return &Cursor{
		visible: true,
		style:   style,
	}
}

// SyncWithValue adopts the buffer content, clamping the caret into range
func (c *Cursor) SyncWithValue(value string, pos int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	runes := []rune(value)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	c.value = value
	c.pos = pos
	// Typing makes the caret show immediately instead of mid-blink
	c.visible = true
}

// Blink toggles visibility; a no-op while paused. Returns the new state.
func (c *Cursor) Blink() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.visible
	}
	c.visible = !c.visible
	return c.visible
}

// Pause freezes the cursor in its visible state
func (c *Cursor) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
	c.visible = true
}

func (c *Cursor) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	c.visible = true
}

func (c *Cursor) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Cursor) SetStyle(style types.CursorStyle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = style
}

func (c *Cursor) Style() types.CursorStyle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.style
}

// Frame renders the line with the caret glyph spliced in at the caret
// position. With the cursor invisible the line comes back untouched, so
// the text never shifts as the caret blinks (except for the pipe style,
// which reserves its column with a space).
func (c *Cursor) Frame() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	runes := []rune(c.value)

	if c.style == types.CursorPipe {
		glyph := "|"
		if !c.visible {
			glyph = " "
		}
		return string(runes[:c.pos]) + glyph + string(runes[c.pos:])
	}

	if !c.visible {
		return c.value
	}

	if c.pos >= len(runes) {
		switch c.style {
		case types.CursorUnderscore:
			return c.value + "_"
		default:
			return c.value + "█"
		}
	}

	under := string(runes[c.pos])
	var marked string
	switch c.style {
	case types.CursorUnderscore:
		marked = "\033[4m" + under + "\033[24m"
	default:
		marked = "\033[7m" + under + "\033[27m"
	}
	return string(runes[:c.pos]) + marked + string(runes[c.pos+1:])
}
