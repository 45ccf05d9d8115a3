package presentation

import (
	"math/rand"
	"strings"
)

const scrambleCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789#$%&*+=<>"

// Scrambler generates decryption-effect animation frames: text starts fully
// scrambled and settles into place left to right. Frame generation is pure
// so the effect can be tested without a terminal.
type Scrambler struct {
	rng *rand.Rand
}

func NewScrambler(seed int64) *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewSource(seed))}
}

// Frames returns steps+1 frames for the text. Every frame has the same
// shape as the final text: whitespace stays put and only visible glyphs
// are scrambled. The last frame is always the text itself.
func (s *Scrambler) Frames(text string, steps int) []string {
	if steps < 1 {
		return []string{text}
	}

	runes := []rune(text)
	visible := make([]int, 0, len(runes))
	for i, r := range runes {
		if !isWhitespace(r) {
			visible = append(visible, i)
		}
	}

	frames := make([]string, 0, steps+1)
	for step := 0; step <= steps; step++ {
		settled := len(visible) * step / steps
		frame := make([]rune, len(runes))
		copy(frame, runes)
		for _, idx := range visible[settled:] {
			frame[idx] = s.randomGlyph()
		}
		frames = append(frames, string(frame))
	}
	return frames
}

func (s *Scrambler) randomGlyph() rune {
	return rune(scrambleCharset[s.rng.Intn(len(scrambleCharset))])
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// StepsForText scales the frame count to the text so short prompts settle
// quickly and banners take their time.
func StepsForText(text string) int {
	glyphs := len(strings.TrimSpace(text))
	switch {
	case glyphs <= 12:
		return 6
	case glyphs <= 80:
		return 10
	default:
		return 16
	}
}
