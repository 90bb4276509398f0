package tui

import "testing"

func TestCalculateLayout(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		tooSmall   bool
		listHeight int
	}{
		{"standard", 80, 24, false, 16},
		{"minimum", MinTerminalWidth, MinTerminalHeight, false, 4},
		{"too narrow", MinTerminalWidth - 1, 24, true, 0},
		{"too short", 80, MinTerminalHeight - 1, true, 0},
		{"tall", 120, 60, false, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := CalculateLayout(tt.width, tt.height)

			if l.TooSmall != tt.tooSmall {
				t.Errorf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if l.TooSmall && l.TooSmallMessage == "" {
				t.Error("expected a TooSmallMessage")
			}
			if l.ListHeight != tt.listHeight {
				t.Errorf("ListHeight = %d, want %d", l.ListHeight, tt.listHeight)
			}
		})
	}
}

func TestLayoutFillsTerminal(t *testing.T) {
	l := CalculateLayout(80, 30)

	total := HeaderPanelHeight + l.ListHeight + InputPanelHeight + HelpBarHeight + BorderHeight
	if total != 30 {
		t.Errorf("panels use %d rows, want 30", total)
	}
}

func TestContentWidth(t *testing.T) {
	if got := CalculateLayout(80, 24).ContentWidth(); got != 78 {
		t.Errorf("ContentWidth() = %d, want 78", got)
	}
}
