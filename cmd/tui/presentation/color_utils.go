package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awesome-gocui/gocui"
)

// ConvertColorToAnsi converts a theme color into an ANSI escape sequence.
// Hex colors become 24-bit true color sequences; ANSI codes pass through.
func ConvertColorToAnsi(colorStr string) string {
	if strings.HasPrefix(colorStr, "#") {
		return hexToTrueColorAnsi(colorStr)
	}
	if strings.HasPrefix(colorStr, "\033[") {
		return colorStr
	}
	return colorStr
}

// hexToTrueColorAnsi converts hex color to 24-bit ANSI escape sequence
func hexToTrueColorAnsi(hex string) string {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return "\033[37m" // Default to white
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

func hexToRGB(hex string) (int, int, int, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}

	r, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 32)

	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(r), int(g), int(b), true
}

// ConvertColorToGocuiColor maps a hex color onto a gocui attribute for
// view frames, which cannot take raw escape sequences.
func ConvertColorToGocuiColor(colorStr string) gocui.Attribute {
	r, g, b, ok := hexToRGB(colorStr)
	if !ok {
		return gocui.ColorDefault
	}
	return mapRGBToGocuiColor(r, g, b)
}

// mapRGBToGocuiColor maps RGB values to the closest gocui basic color
func mapRGBToGocuiColor(r, g, b int) gocui.Attribute {
	if r > 200 && g > 200 && b > 200 {
		return gocui.ColorWhite
	}
	if r < 100 && g < 100 && b < 100 {
		return gocui.ColorBlack
	}

	if r > g && r > b {
		if r > 128 {
			return gocui.ColorRed | gocui.AttrBold
		}
		return gocui.ColorRed
	}
	if g > r && g > b {
		if g > 128 {
			return gocui.ColorGreen | gocui.AttrBold
		}
		return gocui.ColorGreen
	}
	if b > r && b > g {
		if b > 128 {
			return gocui.ColorBlue | gocui.AttrBold
		}
		return gocui.ColorBlue
	}

	if r > 128 && g > 128 && b < 100 {
		return gocui.ColorYellow | gocui.AttrBold
	}
	if r > 128 && g < 100 && b > 128 {
		return gocui.ColorMagenta | gocui.AttrBold
	}
	if r < 100 && g > 128 && b > 128 {
		return gocui.ColorCyan | gocui.AttrBold
	}

	return gocui.ColorDefault
}

const ansiReset = "\033[0m"
