package component

import "strings"

// LineBuffer is the single-line edit buffer behind the input view. All
// editing operations live here, decoupled from key decoding, so the
// password mode and cursor splicing can be tested without a terminal.
type LineBuffer struct {
	runes []rune
	pos   int
}

func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

func (b *LineBuffer) Insert(ch rune) {
	b.runes = append(b.runes[:b.pos], append([]rune{ch}, b.runes[b.pos:]...)...)
	b.pos++
}

func (b *LineBuffer) Backspace() {
	if b.pos == 0 {
		return
	}
	b.runes = append(b.runes[:b.pos-1], b.runes[b.pos:]...)
	b.pos--
}

func (b *LineBuffer) Delete() {
	if b.pos >= len(b.runes) {
		return
	}
	b.runes = append(b.runes[:b.pos], b.runes[b.pos+1:]...)
}

func (b *LineBuffer) MoveLeft() {
	if b.pos > 0 {
		b.pos--
	}
}

func (b *LineBuffer) MoveRight() {
	if b.pos < len(b.runes) {
		b.pos++
	}
}

func (b *LineBuffer) MoveHome() {
	b.pos = 0
}

func (b *LineBuffer) MoveEnd() {
	b.pos = len(b.runes)
}

func (b *LineBuffer) Clear() {
	b.runes = nil
	b.pos = 0
}

// Set replaces the content and puts the caret at the end
func (b *LineBuffer) Set(value string) {
	b.runes = []rune(value)
	b.pos = len(b.runes)
}

func (b *LineBuffer) String() string {
	return string(b.runes)
}

func (b *LineBuffer) Len() int {
	return len(b.runes)
}

func (b *LineBuffer) Pos() int {
	return b.pos
}

// Masked returns a same-length masked rendition for password input
func (b *LineBuffer) Masked(mask string) string {
	if mask == "" {
		mask = "*"
	}
	return strings.Repeat(mask, len(b.runes))
}
