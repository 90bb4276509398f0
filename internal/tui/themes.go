// Package tui provides the terminal user interface for todo using bubbletea.
package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// Theme represents the colour theme for the TUI.
type Theme string

const (
	// ThemeAuto automatically detects the terminal background colour.
	ThemeAuto Theme = "auto"
	// ThemeDark uses the amber colour palette designed for dark backgrounds.
	ThemeDark Theme = "dark"
	// ThemeLight uses darker colours designed for light backgrounds.
	ThemeLight Theme = "light"
)

// DetectTheme queries the terminal to determine if it has a dark or light background.
// Falls back to ThemeDark if detection fails.
func DetectTheme() Theme {
	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme converts ThemeAuto to the actual detected theme.
func ResolveTheme(configured Theme) Theme {
	if configured == ThemeAuto {
		return DetectTheme()
	}
	return configured
}

// ParseTheme converts a configured theme name to a Theme. An empty name means auto.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case "":
		return ThemeAuto, nil
	case ThemeAuto, ThemeDark, ThemeLight:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be one of auto, dark, light", s)
	}
}
