package presentation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// OutputFormatter turns OutputItems into styled terminal text. It owns the
// kind dispatch: each OutputKind maps to one styling path, so commands
// never emit escape sequences themselves.
type OutputFormatter struct {
	config *types.Config
	theme  *types.Theme
}

func NewOutputFormatter(config *types.Config, theme *types.Theme) *OutputFormatter {
	return &OutputFormatter{
		config: config,
		theme:  theme,
	}
}

func (f *OutputFormatter) SetTheme(theme *types.Theme) {
	f.theme = theme
}

// FormatItemWithWidth renders one item into lines ready for the output view
func (f *OutputFormatter) FormatItemWithWidth(item types.OutputItem, width int) string {
	switch item.Kind {
	case types.KindEcho:
		return f.styledLine(item.Content, f.theme.TextEcho, width)
	case types.KindError:
		return f.styledLine(item.Content, f.theme.Error, width)
	case types.KindSuccess:
		return f.styledLine(item.Content, f.theme.Success, width)
	case types.KindWarning:
		return f.styledLine(item.Content, f.theme.Warning, width)
	case types.KindMarkup:
		return f.formatMarkup(item.Content, width)
	case types.KindBanner, types.KindGreeting:
		// Preformatted art, never rewrapped
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(f.theme.Primary)).
			Render(item.Content)
	case types.KindPrompt:
		return f.styledLine(item.Content, f.theme.Secondary, width)
	case types.KindMenu:
		return f.styledLine(item.Content, f.theme.TextSecondary, width)
	case types.KindRaw:
		return f.styledLine(fmt.Sprintf("%v", item.Content), f.theme.Muted, width)
	default:
		return f.styledLine(item.Content, f.theme.TextPrimary, width)
	}
}

func (f *OutputFormatter) styledLine(content, color string, width int) string {
	if width > 10 {
		content = wordwrap.String(content, width-2)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(content)
}

var leadingAnsi = regexp.MustCompile(`^\x1b\[[0-9;]*m`)

func (f *OutputFormatter) formatMarkup(content string, width int) string {
	if !f.config.IsMarkdownRenderingEnabled() {
		return f.styledLine(content, f.theme.TextPrimary, width)
	}

	renderer, err := createMarkupRenderer(f.config.GlamourTheme, width-2)
	if err != nil {
		return f.styledLine(content, f.theme.TextPrimary, width)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return f.styledLine(content, f.theme.TextPrimary, width)
	}

	rendered = strings.TrimSpace(rendered)
	// Leading escape sequences shift the first line; strip them only there
	for leadingAnsi.MatchString(rendered) {
		rendered = leadingAnsi.ReplaceAllString(rendered, "")
	}
	return strings.TrimSpace(rendered)
}

func createMarkupRenderer(glamourTheme string, width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	style := glamourTheme
	if style == "" || style == "auto" {
		style = "dark"
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}
