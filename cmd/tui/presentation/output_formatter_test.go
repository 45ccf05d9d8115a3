package presentation

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

func newTestFormatter() *OutputFormatter {
	config := &types.Config{MarkdownRendering: "disabled"}
	return NewOutputFormatter(config, GetTheme(DefaultThemeName))
}

func TestFormatItemWithWidth(t *testing.T) {
	f := newTestFormatter()

	t.Run("text carries its content", func(t *testing.T) {
		out := f.FormatItemWithWidth(types.Text("hello world"), 80)
		assert.Contains(t, out, "hello world")
	})

	t.Run("long text wraps to the view width", func(t *testing.T) {
		long := strings.Repeat("word ", 30)
		out := f.FormatItemWithWidth(types.Text(long), 40)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, len(stripAnsi(line)), 40)
		}
	})

	t.Run("banners are never rewrapped", func(t *testing.T) {
		art := strings.Repeat("=", 60)
		out := f.FormatItemWithWidth(types.Banner(art), 20)
		assert.Contains(t, out, art)
	})

	t.Run("markup falls back to text when rendering is disabled", func(t *testing.T) {
		out := f.FormatItemWithWidth(types.Markup("**bold**"), 80)
		assert.Contains(t, out, "**bold**")
	})

	t.Run("every kind renders without panicking", func(t *testing.T) {
		kinds := []types.OutputKind{
			types.KindText, types.KindEcho, types.KindError, types.KindSuccess,
			types.KindWarning, types.KindBanner, types.KindGreeting,
			types.KindPrompt, types.KindMenu, types.KindRaw,
		}
		for _, kind := range kinds {
			out := f.FormatItemWithWidth(types.OutputItem{Kind: kind, Content: "x"}, 80)
			assert.Contains(t, out, "x", string(kind))
		}
	})
}

func TestGetTheme(t *testing.T) {
	assert.Same(t, Themes["matrix"], GetTheme("matrix"))
	assert.Same(t, Themes[DefaultThemeName], GetTheme("no-such-theme"))
	assert.True(t, IsValidTheme("nord"))
	assert.False(t, IsValidTheme("hotdog-stand"))
	assert.Contains(t, GetThemeNames(), "amber")
}

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}
