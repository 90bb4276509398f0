package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/sirupsen/logrus"
)

// Text shown by the TUI.
const (
	Title            = "Simple Task Manager"
	InputPlaceholder = "Enter task name"
	ConfirmTitle     = "Clear All Tasks?"
	ConfirmQuestion  = "Are you sure you want to clear all tasks?"
	ConfirmYes       = "Yes, clear all"
	ConfirmNo        = "No, keep them"
	EmptyListText    = "No tasks yet"
)

// Model is the main bubbletea model for the todo TUI.
type Model struct {
	// Layout
	layout Layout

	// Content
	ctrl  *tasks.Controller
	input textinput.Model

	// List scrolling
	listOffset  int  // Index of the first visible task when not tailing
	listTailing bool // Whether the list is locked to the newest task

	// Clear-all confirmation dialog
	confirming    bool
	confirmChoice int               // 0 = yes, 1 = no
	deferred      []tasks.Reversion // Reversions that fired while the dialog was open

	// Styles
	styles Styles

	log logrus.FieldLogger

	// State
	ready bool
}

// NewModel creates a new TUI model driving ctrl.
func NewModel(ctrl *tasks.Controller) Model {
	styles := DarkStyles()

	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.InputText
	ti.PlaceholderStyle = styles.Placeholder
	ti.Focus()

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Model{
		ctrl:          ctrl,
		input:         ti,
		listTailing:   true,
		confirmChoice: 1,
		styles:        styles,
		log:           discard,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = CalculateLayout(msg.Width, msg.Height)
		m.input.Width = m.inputWidth()
		m.ready = true
		return m, nil

	case StatusRevertMsg:
		rev := tasks.Reversion(msg)
		// The dialog suspends everything else, timers included.
		if m.confirming {
			m.deferred = append(m.deferred, rev)
			return m, nil
		}
		m.ctrl.Revert(rev)
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirmDialog(msg)
		}
		return m.updateMain(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateMain handles key events while the task list is in focus.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "ctrl+x":
		m.confirming = true
		m.confirmChoice = 1 // Default to "No"
		m.input.Blur()
		return m, nil

	case "up":
		return m.scrollUp(1), nil
	case "down":
		return m.scrollDown(1), nil
	case "pgup":
		return m.scrollUp(m.layout.ListHeight), nil
	case "pgdown":
		return m.scrollDown(m.layout.ListHeight), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the input field's value to the controller.
// The field is cleared only when the task was accepted.
func (m Model) submit() (tea.Model, tea.Cmd) {
	res := m.ctrl.Submit(m.input.Value())
	if res.Err == nil {
		m.input.Reset()
		m.listTailing = true
		m.log.WithField("count", m.ctrl.Count()).Debug("task added")
	}
	return m, scheduleRevert(res.Reversion)
}

// updateConfirmDialog handles key events in the clear-all confirmation dialog.
func (m Model) updateConfirmDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "n":
		return m.closeConfirmDialog(false)

	case "y":
		return m.closeConfirmDialog(true)

	case "left", "h":
		m.confirmChoice = 0
		return m, nil

	case "right", "l":
		m.confirmChoice = 1
		return m, nil

	case "tab":
		m.confirmChoice = (m.confirmChoice + 1) % 2
		return m, nil

	case "enter":
		return m.closeConfirmDialog(m.confirmChoice == 0)
	}

	return m, nil
}

// closeConfirmDialog dismisses the dialog and applies the user's answer.
// Reversions held while the dialog was open fire once the action completes.
func (m Model) closeConfirmDialog(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirming = false
	focus := m.input.Focus()

	res := m.ctrl.ClearAll(confirmed)
	if res.Changed {
		m.listOffset = 0
		m.listTailing = true
		m.log.Debug("tasks cleared")
	}

	for _, rev := range m.deferred {
		m.ctrl.Revert(rev)
	}
	m.deferred = nil

	return m, tea.Batch(focus, scheduleRevert(res.Reversion))
}

// listStart returns the index of the first visible task.
func (m Model) listStart(n int) int {
	maxStart := n - m.layout.ListHeight
	if maxStart < 0 {
		maxStart = 0
	}
	if m.listTailing || m.listOffset > maxStart {
		return maxStart
	}
	return m.listOffset
}

// scrollUp moves the list view towards older tasks.
func (m Model) scrollUp(lines int) Model {
	start := m.listStart(m.ctrl.Count())
	m.listTailing = false
	m.listOffset = start - lines
	if m.listOffset < 0 {
		m.listOffset = 0
	}
	return m
}

// scrollDown moves the list view towards newer tasks, resuming tailing at the end.
func (m Model) scrollDown(lines int) Model {
	n := m.ctrl.Count()
	maxStart := n - m.layout.ListHeight
	if maxStart < 0 {
		maxStart = 0
	}
	next := m.listStart(n) + lines
	if next >= maxStart {
		m.listTailing = true
		m.listOffset = maxStart
		return m
	}
	m.listOffset = next
	return m
}

// inputWidth returns the width available to the text input.
func (m Model) inputWidth() int {
	w := m.layout.ContentWidth() - ansi.StringWidth(m.input.Prompt) - 3
	if w < 1 {
		w = 1
	}
	return w
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.layout.TooSmall {
		return m.styles.TooSmallMessage.Render(m.layout.TooSmallMessage)
	}

	var sections []string
	sections = append(sections, RenderTopBorder(m.layout.Width, m.styles.Border))
	sections = append(sections, m.renderHeader())
	sections = append(sections, RenderMidBorder(m.layout.Width, m.styles.Border))

	if m.confirming {
		sections = append(sections, m.renderConfirmDialog()...)
	} else {
		sections = append(sections, m.renderTaskList()...)
	}

	sections = append(sections, RenderMidBorder(m.layout.Width, m.styles.Border))
	sections = append(sections, m.frameLine(" "+m.input.View()))
	sections = append(sections, m.frameLine(" "+m.renderStatus()))
	sections = append(sections, RenderBottomBorder(m.layout.Width, m.styles.Border))
	sections = append(sections, m.renderHelpBar())

	return strings.Join(sections, "\n")
}

// frameLine wraps content in vertical borders, padding or truncating it to the content width.
func (m Model) frameLine(content string) string {
	width := m.layout.ContentWidth()
	border := m.styles.Border.Render(BoxVertical)

	w := ansi.StringWidth(content)
	if w > width {
		content = ansi.Truncate(content, width, "")
		w = ansi.StringWidth(content)
	}
	return border + content + strings.Repeat(" ", width-w) + border
}

// renderHeader renders the title and the task counter.
func (m Model) renderHeader() string {
	width := m.layout.ContentWidth()

	brand := m.styles.Brand.Render(IconBrand + " " + Title)
	brandWidth := ansi.StringWidth(IconBrand + " " + Title)

	counter := m.ctrl.CounterText()
	metrics := m.styles.Label.Render("Tasks: ") + m.styles.Value.Render(counter)
	metricsWidth := ansi.StringWidth("Tasks: " + counter)

	padding := width - brandWidth - metricsWidth - 2
	if padding < 1 {
		padding = 1
	}

	return m.frameLine(" " + brand + strings.Repeat(" ", padding) + metrics + " ")
}

// renderTaskList renders exactly ListHeight rows of the task list.
func (m Model) renderTaskList() []string {
	height := m.layout.ListHeight
	lines := make([]string, 0, height)

	items := m.ctrl.Tasks()
	if len(items) == 0 {
		lines = append(lines, m.frameLine("  "+m.styles.EmptyList.Render(EmptyListText)))
	}

	labelWidth := m.layout.ContentWidth() - 5
	start := m.listStart(len(items))
	for i := start; i < len(items) && len(lines) < height; i++ {
		label := ansi.Truncate(items[i].Label, labelWidth, "…")
		lines = append(lines, m.frameLine("  "+m.styles.TaskItem.Render(IconTask+" "+label)))
	}

	for len(lines) < height {
		lines = append(lines, m.frameLine(""))
	}
	return lines
}

// renderConfirmDialog renders the clear-all confirmation in place of the task list.
func (m Model) renderConfirmDialog() []string {
	yes := m.styles.ButtonInactive.Render(ConfirmYes)
	no := m.styles.ButtonInactive.Render(ConfirmNo)
	if m.confirmChoice == 0 {
		yes = m.styles.ButtonActive.Render(ConfirmYes)
	} else {
		no = m.styles.ButtonActive.Render(ConfirmNo)
	}

	content := []string{
		"  " + m.styles.DialogTitle.Render(ConfirmTitle),
		"  " + m.styles.DialogText.Render(ConfirmQuestion),
		"",
		"  " + yes + "  " + no,
	}
	if m.layout.ListHeight < len(content) {
		// Drop the spacer on short terminals
		content = append(content[:2], content[3:]...)
	}

	lines := make([]string, 0, m.layout.ListHeight)
	for _, c := range content {
		if len(lines) == m.layout.ListHeight {
			break
		}
		lines = append(lines, m.frameLine(c))
	}
	for len(lines) < m.layout.ListHeight {
		lines = append(lines, m.frameLine(""))
	}
	return lines
}

// renderStatus renders the status message in its category's style.
func (m Model) renderStatus() string {
	st := m.ctrl.Status()
	switch st.Category {
	case tasks.CategorySuccess:
		return m.styles.StatusSuccess.Render(IconValid + " " + st.Text)
	case tasks.CategoryError:
		return m.styles.StatusError.Render(IconError + " " + st.Text)
	default:
		if st.Text == "" {
			return ""
		}
		return m.styles.StatusNeutral.Render(st.Text)
	}
}

// renderHelpBar renders the help text below the main frame.
func (m Model) renderHelpBar() string {
	if m.confirming {
		return "  " + m.styles.HelpKey.Render("←/→") + m.styles.HelpBar.Render(" select  ") +
			m.styles.HelpKey.Render("y/n") + m.styles.HelpBar.Render(" quick choice  ") +
			m.styles.HelpKey.Render("enter") + m.styles.HelpBar.Render(" confirm  ") +
			m.styles.HelpKey.Render("esc") + m.styles.HelpBar.Render(" cancel")
	}
	return "  " + m.styles.HelpKey.Render("enter") + m.styles.HelpBar.Render(" add  ") +
		m.styles.HelpKey.Render("ctrl+x") + m.styles.HelpBar.Render(" clear all  ") +
		m.styles.HelpKey.Render("↑/↓") + m.styles.HelpBar.Render(" scroll  ") +
		m.styles.HelpKey.Render("esc") + m.styles.HelpBar.Render(" quit")
}

// SetStyles replaces the model's styles, including those of the input field.
func (m *Model) SetStyles(styles Styles) {
	m.styles = styles
	m.input.PromptStyle = styles.Prompt
	m.input.TextStyle = styles.InputText
	m.input.PlaceholderStyle = styles.Placeholder
}

// SetLogger sets the logger used for debug records about list changes.
func (m *Model) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		m.log = log
	}
}

// Controller returns the controller driven by the model.
func (m Model) Controller() *tasks.Controller {
	return m.ctrl
}

// Confirming reports whether the clear-all dialog is open.
func (m Model) Confirming() bool {
	return m.confirming
}

// InputValue returns the current contents of the input field.
func (m Model) InputValue() string {
	return m.input.Value()
}
