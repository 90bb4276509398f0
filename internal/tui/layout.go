package tui

// MinTerminalWidth is the minimum supported terminal width.
const MinTerminalWidth = 40

// MinTerminalHeight is the minimum supported terminal height.
const MinTerminalHeight = 12

// Panel heights (number of lines)
const (
	// HeaderPanelHeight is the height of the header panel (brand + counter).
	HeaderPanelHeight = 1

	// InputPanelHeight is the height of the input panel (input field + status line).
	InputPanelHeight = 2

	// HelpBarHeight is the height of the help bar at the bottom (outside main frame).
	HelpBarHeight = 1

	// BorderHeight is the total height used by horizontal borders:
	// top, after header, after list, bottom.
	BorderHeight = 4
)

// Layout represents the calculated dimensions for each UI region.
type Layout struct {
	// Total terminal dimensions
	Width  int
	Height int

	// ListHeight is the number of task rows visible at once
	ListHeight int

	// TooSmall indicates the terminal is below minimum size
	TooSmall bool

	// TooSmallMessage is shown when terminal is too small
	TooSmallMessage string
}

// CalculateLayout computes the layout based on terminal dimensions.
func CalculateLayout(width, height int) Layout {
	layout := Layout{
		Width:  width,
		Height: height,
	}

	if width < MinTerminalWidth {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too narrow. Minimum width: 40 columns."
		return layout
	}

	if height < MinTerminalHeight {
		layout.TooSmall = true
		layout.TooSmallMessage = "Terminal too short. Minimum height: 12 rows."
		return layout
	}

	layout.ListHeight = height - HeaderPanelHeight - InputPanelHeight - HelpBarHeight - BorderHeight
	return layout
}

// ContentWidth returns the usable width inside panels (accounting for borders).
func (l Layout) ContentWidth() int {
	return l.Width - 2
}
