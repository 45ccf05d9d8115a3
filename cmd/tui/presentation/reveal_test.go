package presentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambler_Frames(t *testing.T) {
	s := NewScrambler(1)
	text := "ACCESS GRANTED"
	frames := s.Frames(text, 8)

	require.Len(t, frames, 9)

	t.Run("last frame is the text", func(t *testing.T) {
		assert.Equal(t, text, frames[len(frames)-1])
	})

	t.Run("every frame keeps the text shape", func(t *testing.T) {
		for _, frame := range frames {
			assert.Equal(t, len([]rune(text)), len([]rune(frame)))
			assert.Equal(t, strings.IndexRune(text, ' '), strings.IndexRune(frame, ' '))
		}
	})

	t.Run("settled prefix grows monotonically", func(t *testing.T) {
		prev := 0
		for _, frame := range frames {
			settled := 0
			for settled < len(frame) && frame[settled] == text[settled] {
				settled++
			}
			assert.GreaterOrEqual(t, settled, prev)
			prev = settled
		}
	})
}

func TestScrambler_PreservesNewlines(t *testing.T) {
	s := NewScrambler(7)
	text := "LINE ONE\nLINE TWO"

	for _, frame := range s.Frames(text, 4) {
		assert.Equal(t, 1, strings.Count(frame, "\n"))
	}
}

func TestScrambler_Deterministic(t *testing.T) {
	a := NewScrambler(42).Frames("user@mintgate:~$", 6)
	b := NewScrambler(42).Frames("user@mintgate:~$", 6)
	assert.Equal(t, a, b)
}

func TestScrambler_DegenerateSteps(t *testing.T) {
	s := NewScrambler(1)
	assert.Equal(t, []string{"hi"}, s.Frames("hi", 0))
}

func TestStepsForText(t *testing.T) {
	assert.Equal(t, 6, StepsForText("$"))
	assert.Equal(t, 10, StepsForText(strings.Repeat("x", 40)))
	assert.Equal(t, 16, StepsForText(strings.Repeat("x", 200)))
}
