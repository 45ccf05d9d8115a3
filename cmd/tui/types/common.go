package types

import (
	"github.com/awesome-gocui/gocui"
)

type KeyBinding struct {
	View    string
	Key     interface{}
	Mod     gocui.Modifier
	Handler func(*gocui.Gui, *gocui.View) error
}

// CursorStyle selects the glyph drawn at the caret position
type CursorStyle string

const (
	CursorBlock      CursorStyle = "block"
	CursorUnderscore CursorStyle = "underscore"
	CursorPipe       CursorStyle = "pipe"
)

type Theme struct {
	// Accent colors (indicators, borders, prompt)
	Primary   string
	Secondary string
	Error     string
	Warning   string
	Success   string
	Muted     string

	// Text colors
	TextPrimary   string // command output text
	TextSecondary string // system/status text
	TextEcho      string // echoed prompt + command lines

	// Border colors
	BorderDefault string
	BorderFocused string

	// Cursor colors
	CursorFg string
	CursorBg string
}

type Config struct {
	Theme       string      `json:"theme"`
	Language    string      `json:"language"`
	CursorStyle CursorStyle `json:"cursorStyle"`

	ShowCursor        string `json:"showCursor"`        // "enabled" or "disabled" (default: "enabled")
	MarkdownRendering string `json:"markdownRendering"` // "enabled" or "disabled" (default: "enabled")

	// Terminal output configuration
	// OutputMode controls gocui color and Unicode support:
	// - "true": 24-bit color with enhanced Unicode support (default, recommended)
	// - "normal": 8-color mode with basic Unicode
	// - "256": 256-color mode
	OutputMode string `json:"outputMode"`

	// GlamourTheme controls the glamour theme for rich output blocks.
	// Set to "auto" to follow the terminal theme.
	GlamourTheme string `json:"glamourTheme"`

	EnableMouse string `json:"enableMouse"` // "enabled" or "disabled" (default: "enabled")

	// Prompt label shown before the input line and in command echoes
	Prompt string `json:"prompt"`

	// Character used to mask access-code input
	MaskChar string `json:"maskChar"`

	// Command history entries kept in memory and on disk
	HistorySize int `json:"historySize"`

	// Output pacing, in milliseconds. Zero values fall back to defaults;
	// Instant disables the typewriter effect entirely.
	TypingDelayMs    int  `json:"typingDelayMs"`
	TypingVarianceMs int  `json:"typingVarianceMs"`
	Instant          bool `json:"instant"`
}

// IsStringBoolEnabled returns true if a string boolean field is enabled
// For fields that default to DISABLED (false):
// Treats "enabled", "true" as enabled
// Treats "disabled", "false", and empty string as disabled
func IsStringBoolEnabled(value string) bool {
	return value == "enabled" || value == "true"
}

// IsStringBoolEnabledWithDefault returns true if a string boolean field is enabled
// For fields that default to ENABLED (true):
// Treats "enabled", "true", and empty string as enabled
// Treats "disabled", "false" as disabled
func IsStringBoolEnabledWithDefault(value string) bool {
	return value == "enabled" || value == "true" || value == ""
}

// IsMouseEnabled returns true if mouse is enabled in config
func (c *Config) IsMouseEnabled() bool {
	return IsStringBoolEnabledWithDefault(c.EnableMouse)
}

// IsShowCursorEnabled returns true if cursor is enabled in config
func (c *Config) IsShowCursorEnabled() bool {
	return IsStringBoolEnabledWithDefault(c.ShowCursor)
}

// IsMarkdownRenderingEnabled returns true if markdown rendering is enabled in config
func (c *Config) IsMarkdownRenderingEnabled() bool {
	return IsStringBoolEnabledWithDefault(c.MarkdownRendering)
}
