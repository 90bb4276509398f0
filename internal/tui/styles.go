package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark theme colour palette (for dark terminal backgrounds)
const (
	ColourAmber      = lipgloss.Color("214") // #FFB000 - Headers, active states, borders
	ColourAmberDim   = lipgloss.Color("136") // #996600 - Inactive borders, separators
	ColourAmberLight = lipgloss.Color("222") // #FFD966 - Body text, values
	ColourAmberFaded = lipgloss.Color("178") // #B38F00 - Labels, secondary text
	ColourBackground = lipgloss.Color("0")   // #000000 - Terminal background
	ColourSuccess    = lipgloss.Color("82")  // #00FF00 - Success status
	ColourError      = lipgloss.Color("196") // #FF3300 - Error status
)

// Light theme colour palette (for light terminal backgrounds)
const (
	ColourAmberDark       = lipgloss.Color("94")  // #8B6914 - Headers, active states, borders
	ColourAmberDarkDim    = lipgloss.Color("58")  // #5C4A0A - Inactive borders, separators
	ColourAmberDarkFaded  = lipgloss.Color("101") // #7A6A30 - Labels, secondary text
	ColourBackgroundLight = lipgloss.Color("231") // #FFFFFF - Light background reference
	ColourSuccessDark     = lipgloss.Color("22")  // #008000 - Success status
	ColourErrorDark       = lipgloss.Color("160") // #CC0000 - Error status
)

// Box drawing characters for the UI frame.
const (
	BoxTopLeft     = "╔"
	BoxTopRight    = "╗"
	BoxBottomLeft  = "╚"
	BoxBottomRight = "╝"
	BoxHorizontal  = "═"
	BoxVertical    = "║"
	BoxLeftT       = "╠"
	BoxRightT      = "╣"
)

// Icons
const (
	IconBrand = "◆"
	IconTask  = "•"
	IconValid = "✓"
	IconError = "✗"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	Border lipgloss.Style
	Brand  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style

	// Task list
	TaskItem  lipgloss.Style
	EmptyList lipgloss.Style

	// Input field
	Prompt      lipgloss.Style
	InputText   lipgloss.Style
	Placeholder lipgloss.Style

	// Status message, one per category
	StatusNeutral lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style

	// Confirmation dialog
	DialogTitle    lipgloss.Style
	DialogText     lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style

	TooSmallMessage lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
}

// DarkStyles returns the amber theme optimised for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourAmber),
		Brand:  lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourAmberFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourAmberLight).Bold(true),

		TaskItem:  lipgloss.NewStyle().Foreground(ColourAmberLight),
		EmptyList: lipgloss.NewStyle().Foreground(ColourAmberDim).Italic(true),

		Prompt:      lipgloss.NewStyle().Foreground(ColourAmber),
		InputText:   lipgloss.NewStyle().Foreground(ColourAmberLight),
		Placeholder: lipgloss.NewStyle().Foreground(ColourAmberDim),

		StatusNeutral: lipgloss.NewStyle().Foreground(ColourAmberFaded),
		StatusSuccess: lipgloss.NewStyle().Foreground(ColourSuccess).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(ColourError).Bold(true),

		DialogTitle:    lipgloss.NewStyle().Foreground(ColourAmber).Bold(true),
		DialogText:     lipgloss.NewStyle().Foreground(ColourAmberLight),
		ButtonActive:   lipgloss.NewStyle().Foreground(ColourBackground).Background(ColourAmber).Bold(true).Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().Foreground(ColourAmberFaded).Padding(0, 2),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourError).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourAmberDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourAmberFaded),
	}
}

// LightStyles returns the amber theme optimised for light terminal backgrounds.
func LightStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Foreground(ColourAmberDark),
		Brand:  lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
		Value:  lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),

		TaskItem:  lipgloss.NewStyle().Foreground(ColourAmberDark),
		EmptyList: lipgloss.NewStyle().Foreground(ColourAmberDarkDim).Italic(true),

		Prompt:      lipgloss.NewStyle().Foreground(ColourAmberDark),
		InputText:   lipgloss.NewStyle().Foreground(ColourAmberDark),
		Placeholder: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),

		StatusNeutral: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
		StatusSuccess: lipgloss.NewStyle().Foreground(ColourSuccessDark).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(ColourErrorDark).Bold(true),

		DialogTitle:    lipgloss.NewStyle().Foreground(ColourAmberDark).Bold(true),
		DialogText:     lipgloss.NewStyle().Foreground(ColourAmberDark),
		ButtonActive:   lipgloss.NewStyle().Foreground(ColourBackgroundLight).Background(ColourAmberDark).Bold(true).Padding(0, 2),
		ButtonInactive: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded).Padding(0, 2),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourErrorDark).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourAmberDarkDim),
		HelpKey: lipgloss.NewStyle().Foreground(ColourAmberDarkFaded),
	}
}

// GetStyles returns the Styles for the given theme.
// Falls back to dark theme for unknown theme values.
func GetStyles(theme Theme) Styles {
	switch theme {
	case ThemeLight:
		return LightStyles()
	default:
		return DarkStyles()
	}
}

// RenderTopBorder renders the top border of the frame.
func RenderTopBorder(width int, style lipgloss.Style) string {
	return renderBorder(BoxTopLeft, BoxTopRight, width, style)
}

// RenderMidBorder renders a horizontal divider between panels.
func RenderMidBorder(width int, style lipgloss.Style) string {
	return renderBorder(BoxLeftT, BoxRightT, width, style)
}

// RenderBottomBorder renders the bottom border of the frame.
func RenderBottomBorder(width int, style lipgloss.Style) string {
	return renderBorder(BoxBottomLeft, BoxBottomRight, width, style)
}

func renderBorder(left, right string, width int, style lipgloss.Style) string {
	if width <= 2 {
		return style.Render(left + right)
	}
	return style.Render(left + strings.Repeat(BoxHorizontal, width-2) + right)
}
