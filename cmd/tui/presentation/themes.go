package presentation

import (
	"sort"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// Themes defines the available terminal palettes using W3C hex colors
var Themes = map[string]*types.Theme{
	// Classic phosphor green on black
	"matrix": {
		Primary:   "#00FF41",
		Secondary: "#008F11",
		Error:     "#FF4136",
		Warning:   "#FFDC00",
		Success:   "#00FF41",
		Muted:     "#0D5C1E",

		TextPrimary:   "#C8FFC8",
		TextSecondary: "#7ACC7A",
		TextEcho:      "#00FF41",

		BorderDefault: "#0D5C1E",
		BorderFocused: "#00FF41",

		CursorFg: "#000000",
		CursorBg: "#00FF41",
	},
	// Amber monochrome, old VT terminal
	"amber": {
		Primary:   "#FFB000",
		Secondary: "#CC8C00",
		Error:     "#FF5533",
		Warning:   "#FFD700",
		Success:   "#FFB000",
		Muted:     "#7A5500",

		TextPrimary:   "#FFE0A3",
		TextSecondary: "#D9B36C",
		TextEcho:      "#FFB000",

		BorderDefault: "#7A5500",
		BorderFocused: "#FFB000",

		CursorFg: "#000000",
		CursorBg: "#FFB000",
	},
	"dracula": {
		Primary:   "#50FA7B",
		Secondary: "#BD93F9",
		Error:     "#FF5555",
		Warning:   "#F1FA8C",
		Success:   "#50FA7B",
		Muted:     "#6272A4",

		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BAC2DE",
		TextEcho:      "#8BE9FD",

		BorderDefault: "#44475A",
		BorderFocused: "#8BE9FD",

		CursorFg: "#282A36",
		CursorBg: "#F8F8F2",
	},
	"nord": {
		Primary:   "#A3BE8C",
		Secondary: "#5E81AC",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",
		Success:   "#A3BE8C",
		Muted:     "#616E88",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextEcho:      "#88C0D0",

		BorderDefault: "#3B4252",
		BorderFocused: "#88C0D0",

		CursorFg: "#2E3440",
		CursorBg: "#ECEFF4",
	},
	// Plain grays for terminals without color appetite
	"mono": {
		Primary:   "#E8E8E8",
		Secondary: "#B0B0B0",
		Error:     "#E8E8E8",
		Warning:   "#D0D0D0",
		Success:   "#E8E8E8",
		Muted:     "#5A5A5A",

		TextPrimary:   "#E8E8E8",
		TextSecondary: "#B0B0B0",
		TextEcho:      "#FFFFFF",

		BorderDefault: "#505050",
		BorderFocused: "#B0B0B0",

		CursorFg: "#000000",
		CursorBg: "#E8E8E8",
	},
}

const DefaultThemeName = "matrix"

// GetTheme returns the named theme, falling back to the default
func GetTheme(name string) *types.Theme {
	if theme, exists := Themes[name]; exists {
		return theme
	}
	return Themes[DefaultThemeName]
}

// IsValidTheme reports whether the name maps to a known theme
func IsValidTheme(name string) bool {
	_, exists := Themes[name]
	return exists
}

// GetThemeNames returns all theme names, sorted
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
