package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// Options configures a Program.
type Options struct {
	// Theme is the colour theme. ThemeAuto is resolved against the terminal.
	Theme Theme

	// Logger receives debug records about list changes. Nil discards them.
	Logger logrus.FieldLogger

	// Input and Output override the terminal. Nil uses stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// Program wraps the tea.Program for lifecycle management.
type Program struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI program driving ctrl.
func New(ctrl *tasks.Controller, opts Options) *Program {
	// Handle NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := NewModel(ctrl)
	model.SetStyles(GetStyles(ResolveTheme(opts.Theme)))
	model.SetLogger(opts.Logger)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	return &Program{
		program: tea.NewProgram(model, progOpts...),
		model:   model,
	}
}

// Run starts the TUI program. This blocks until the program exits.
func (p *Program) Run() error {
	_, err := p.program.Run()
	return err
}

// Send sends a message to the program.
func (p *Program) Send(msg tea.Msg) {
	p.program.Send(msg)
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Kill forcefully terminates the program.
func (p *Program) Kill() {
	p.program.Kill()
}

// Model returns the initial model the program was created with.
func (p *Program) Model() Model {
	return p.model
}
