package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(maxSize int) CommandHistory {
	return NewCommandHistory("", maxSize, false)
}

func TestAdd_OrderAndBounds(t *testing.T) {
	t.Run("stores newest first", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("first")
		h.Add("second")
		h.Add("third")

		assert.Equal(t, []string{"third", "second", "first"}, h.Commands())
	})

	t.Run("ignores empty input", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("")
		assert.Empty(t, h.Commands())
	})

	t.Run("collapses adjacent duplicates only", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("ls")
		h.Add("ls")
		h.Add("mint")
		h.Add("ls")

		assert.Equal(t, []string{"ls", "mint", "ls"}, h.Commands())
	})

	t.Run("duplicate match is case sensitive", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("mint")
		h.Add("Mint")

		assert.Equal(t, []string{"Mint", "mint"}, h.Commands())
	})

	t.Run("drops oldest entry past the cap", func(t *testing.T) {
		h := newTestHistory(3)
		h.Add("a")
		h.Add("b")
		h.Add("c")
		h.Add("d")

		assert.Equal(t, []string{"d", "c", "b"}, h.Commands())
	})

	t.Run("no two adjacent stored entries are equal", func(t *testing.T) {
		h := newTestHistory(5)
		for _, cmd := range []string{"a", "a", "b", "b", "a", "a", "a", "c"} {
			h.Add(cmd)
		}

		stored := h.Commands()
		for i := 1; i < len(stored); i++ {
			assert.NotEqual(t, stored[i-1], stored[i])
		}
	})

	t.Run("resets navigation cursor", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("a")
		h.Add("b")
		h.Navigate(DirectionUp)
		require.Equal(t, 0, h.Index())

		h.Add("c")
		assert.Equal(t, -1, h.Index())
	})
}

func TestNavigate(t *testing.T) {
	t.Run("up moves towards older entries and clamps", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("oldest")
		h.Add("newest")

		cmd, prev := h.Navigate(DirectionUp)
		assert.Equal(t, "newest", cmd)
		assert.Equal(t, -1, prev)

		cmd, prev = h.Navigate(DirectionUp)
		assert.Equal(t, "oldest", cmd)
		assert.Equal(t, 0, prev)

		// Clamped at the oldest entry
		cmd, prev = h.Navigate(DirectionUp)
		assert.Equal(t, "oldest", cmd)
		assert.Equal(t, 1, prev)
	})

	t.Run("down moves back to the live line", func(t *testing.T) {
		h := newTestHistory(10)
		h.Add("a")
		h.Navigate(DirectionUp)

		cmd, prev := h.Navigate(DirectionDown)
		assert.Equal(t, "", cmd)
		assert.Equal(t, 0, prev)
		assert.Equal(t, -1, h.Index())

		// Clamped at the live line
		cmd, _ = h.Navigate(DirectionDown)
		assert.Equal(t, "", cmd)
		assert.Equal(t, -1, h.Index())
	})

	t.Run("empty history is a no-op", func(t *testing.T) {
		h := newTestHistory(10)
		cmd, prev := h.Navigate(DirectionUp)
		assert.Equal(t, "", cmd)
		assert.Equal(t, -1, prev)
		assert.Equal(t, -1, h.Index())
	})

	t.Run("up N then down N returns to the live line", func(t *testing.T) {
		h := newTestHistory(10)
		n := 5
		for i := 0; i < n; i++ {
			h.Add(string(rune('a' + i)))
		}
		for i := 0; i < n; i++ {
			h.Navigate(DirectionUp)
		}
		var cmd string
		for i := 0; i < n; i++ {
			cmd, _ = h.Navigate(DirectionDown)
		}

		assert.Equal(t, -1, h.Index())
		assert.Equal(t, "", cmd)
	})
}

func TestPersistence(t *testing.T) {
	t.Run("round-trips commands across instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history")

		h := NewCommandHistory(path, 10, true)
		h.Add("connect")
		h.Add("mint 2")
		h.Add(`verify "0xabc"`)

		reloaded := NewCommandHistory(path, 10, true)
		require.NoError(t, reloaded.Load())
		assert.Equal(t, h.Commands(), reloaded.Commands())
	})

	t.Run("round-trips multiline and backslash content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history")

		h := NewCommandHistory(path, 10, true)
		h.Add("line one\nline two")
		h.Add(`back\slash`)

		reloaded := NewCommandHistory(path, 10, true)
		require.NoError(t, reloaded.Load())
		assert.Equal(t, []string{`back\slash`, "line one\nline two"}, reloaded.Commands())
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		h := NewCommandHistory(filepath.Join(t.TempDir(), "absent"), 10, true)
		assert.NoError(t, h.Load())
		assert.Empty(t, h.Commands())
	})

	t.Run("load trims to cap", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history")

		h := NewCommandHistory(path, 10, true)
		for _, cmd := range []string{"a", "b", "c", "d", "e"} {
			h.Add(cmd)
		}

		reloaded := NewCommandHistory(path, 3, true)
		require.NoError(t, reloaded.Load())
		assert.Equal(t, []string{"e", "d", "c"}, reloaded.Commands())
	})
}
