package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

func TestCursor_BlockFrame(t *testing.T) {
	c := NewCursor(types.CursorBlock)

	t.Run("caret at end appends a block", func(t *testing.T) {
		c.SyncWithValue("mint", 4)
		assert.Equal(t, "mint█", c.Frame())
	})

	t.Run("caret mid-line inverts the char under it", func(t *testing.T) {
		c.SyncWithValue("mint", 1)
		assert.Equal(t, "m\033[7mi\033[27mnt", c.Frame())
	})

	t.Run("invisible cursor leaves the line untouched", func(t *testing.T) {
		c.SyncWithValue("mint", 2)
		c.Blink()
		assert.Equal(t, "mint", c.Frame())
	})
}

func TestCursor_UnderscoreFrame(t *testing.T) {
	c := NewCursor(types.CursorUnderscore)
	c.SyncWithValue("ok", 2)
	assert.Equal(t, "ok_", c.Frame())

	c.SyncWithValue("ok", 0)
	assert.Equal(t, "\033[4mo\033[24mk", c.Frame())
}

func TestCursor_PipeReservesColumn(t *testing.T) {
	c := NewCursor(types.CursorPipe)
	c.SyncWithValue("ab", 1)
	assert.Equal(t, "a|b", c.Frame())

	c.Blink()
	assert.Equal(t, "a b", c.Frame(), "pipe keeps its column while blinked off")
}

func TestCursor_SyncClampsCaret(t *testing.T) {
	c := NewCursor(types.CursorBlock)

	c.SyncWithValue("ab", 99)
	assert.Equal(t, "ab█", c.Frame())

	c.SyncWithValue("ab", -3)
	assert.Equal(t, "\033[7ma\033[27mb", c.Frame())
}

func TestCursor_PauseAndResume(t *testing.T) {
	c := NewCursor(types.CursorBlock)
	c.SyncWithValue("x", 1)

	c.Pause()
	assert.True(t, c.IsPaused())

	// Blinking is suspended and the caret stays visible
	c.Blink()
	c.Blink()
	assert.Equal(t, "x█", c.Frame())

	c.Resume()
	assert.False(t, c.IsPaused())
	c.Blink()
	assert.Equal(t, "x", c.Frame())
}

func TestCursor_TypingRestoresVisibility(t *testing.T) {
	c := NewCursor(types.CursorBlock)
	c.SyncWithValue("a", 1)
	c.Blink() // off

	c.SyncWithValue("ab", 2)
	assert.Equal(t, "ab█", c.Frame())
}

func TestLineBuffer(t *testing.T) {
	b := NewLineBuffer()

	for _, ch := range "mint 3" {
		b.Insert(ch)
	}
	assert.Equal(t, "mint 3", b.String())
	assert.Equal(t, 6, b.Pos())

	b.MoveLeft()
	b.MoveLeft()
	b.Insert('x')
	assert.Equal(t, "mintx 3", b.String())

	b.Backspace()
	assert.Equal(t, "mint 3", b.String())

	b.MoveHome()
	b.Delete()
	assert.Equal(t, "int 3", b.String())

	b.MoveEnd()
	b.Delete() // no-op at end
	assert.Equal(t, "int 3", b.String())

	assert.Equal(t, "*****", b.Masked("*"))

	b.Set("history entry")
	assert.Equal(t, "history entry", b.String())
	assert.Equal(t, b.Len(), b.Pos())

	b.Clear()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Pos())
	b.Backspace() // no-op when empty
	assert.Equal(t, "", b.String())
}
