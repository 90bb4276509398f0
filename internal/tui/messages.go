package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flashingpumpkin/todo/internal/tasks"
)

// StatusRevertMsg is delivered when a status message's reversion delay has elapsed.
type StatusRevertMsg tasks.Reversion

// scheduleRevert returns a command that fires StatusRevertMsg after the reversion delay.
// Returns nil for an empty reversion.
func scheduleRevert(rev tasks.Reversion) tea.Cmd {
	if rev.IsZero() {
		return nil
	}
	return tea.Tick(rev.After, func(time.Time) tea.Msg {
		return StatusRevertMsg(rev)
	})
}
