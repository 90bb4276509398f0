// Package plain provides a line-oriented host for the task list, used when
// the TUI is disabled or stdin is not a terminal.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	todoerrors "github.com/flashingpumpkin/todo/internal/errors"
	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/sirupsen/logrus"
)

// Commands understood by the host. Any other line is submitted as a task.
const (
	CmdClear  = ":clear"
	CmdList   = ":list"
	CmdStatus = ":status"
	CmdHelp   = ":help"
	CmdQuit   = ":quit"
)

// ConfirmPrompt is printed before a clear-all confirmation is read.
const ConfirmPrompt = "Are you sure you want to clear all tasks? [y/N] "

// Options configures a Host.
type Options struct {
	// Interactive prints a prompt before each line is read.
	Interactive bool

	// NoColor disables coloured status output.
	NoColor bool

	// Logger receives debug records about list changes. Nil discards them.
	Logger logrus.FieldLogger
}

// Host reads commands from a line stream and drives a Controller.
// It owns the event loop: input lines and status reversions are handled
// one at a time on the goroutine that calls Run.
type Host struct {
	ctrl *tasks.Controller
	in   io.Reader
	out  io.Writer
	opts Options
	log  logrus.FieldLogger

	green *color.Color
	red   *color.Color
	cyan  *color.Color
	dim   *color.Color

	started    atomic.Bool
	reverts    chan tasks.Reversion
	done       chan struct{}
	confirming bool
	deferred   []tasks.Reversion
}

// New creates a Host reading from in and writing to out.
func New(ctrl *tasks.Controller, in io.Reader, out io.Writer, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	h := &Host{
		ctrl:    ctrl,
		in:      in,
		out:     out,
		opts:    opts,
		log:     log,
		green:   color.New(color.FgGreen, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		cyan:    color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.Faint),
		reverts: make(chan tasks.Reversion, 16),
		done:    make(chan struct{}),
	}
	if opts.NoColor {
		for _, c := range []*color.Color{h.green, h.red, h.cyan, h.dim} {
			c.DisableColor()
		}
	}
	return h
}

// Run processes input until EOF, :quit, or ctx is cancelled.
// EOF and :quit return nil. A Host runs once; later calls return ErrHostAlreadyRun.
func (h *Host) Run(ctx context.Context) error {
	if !h.started.CompareAndSwap(false, true) {
		return todoerrors.ErrHostAlreadyRun
	}
	defer close(h.done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go h.readLines(lines, readErr)

	h.printHeader()
	h.printList()
	h.printPrompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case rev := <-h.reverts:
			if h.confirming {
				h.deferred = append(h.deferred, rev)
				continue
			}
			h.ctrl.Revert(rev)

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			if quit := h.handleLine(line); quit {
				return nil
			}
			h.printPrompt()
		}
	}
}

// readLines sends each input line, without its line ending, to lines.
// Lines have no length limit. The final error, nil at EOF, goes to readErr.
func (h *Host) readLines(lines chan<- string, readErr chan<- error) {
	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			select {
			case lines <- line:
			case <-h.done:
				return
			}
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			readErr <- err
			close(lines)
			return
		}
	}
}

// handleLine processes one line of input. Returns true when the host should stop.
func (h *Host) handleLine(line string) bool {
	if h.confirming {
		h.answerConfirm(line)
		return false
	}

	switch strings.TrimSpace(line) {
	case CmdQuit:
		return true
	case CmdClear:
		h.confirming = true
		_, _ = fmt.Fprint(h.out, ConfirmPrompt)
		return false
	case CmdList:
		h.printList()
		return false
	case CmdStatus:
		h.printStatus(h.ctrl.Status())
		return false
	case CmdHelp:
		h.printHelp()
		return false
	}

	res := h.ctrl.Submit(line)
	h.report(res)
	if res.Err == nil {
		h.log.WithField("count", h.ctrl.Count()).Debug("task added")
	}
	return false
}

// answerConfirm applies the answer to a pending clear-all confirmation.
// Reversions held while waiting fire once the action completes.
func (h *Host) answerConfirm(answer string) {
	h.confirming = false

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		res := h.ctrl.ClearAll(true)
		h.report(res)
		h.log.Debug("tasks cleared")
	default:
		h.ctrl.ClearAll(false)
	}

	for _, rev := range h.deferred {
		h.ctrl.Revert(rev)
	}
	h.deferred = nil
}

// report prints the outcome of an action and schedules its reversion.
func (h *Host) report(res tasks.Result) {
	if res.Status.IsZero() {
		return
	}
	h.printStatus(res.Status)
	if res.Changed {
		h.printCounter()
	}
	h.schedule(res.Reversion)
}

// schedule delivers rev back to the event loop once its delay has elapsed.
func (h *Host) schedule(rev tasks.Reversion) {
	if rev.IsZero() {
		return
	}
	time.AfterFunc(rev.After, func() {
		select {
		case h.reverts <- rev:
		case <-h.done:
		}
	})
}

func (h *Host) printHeader() {
	_, _ = h.cyan.Fprintln(h.out, "Simple Task Manager")
	_, _ = h.dim.Fprintln(h.out, "Type a task and press enter. :clear clears all, :help lists commands.")
}

func (h *Host) printList() {
	h.printCounter()
	for i, task := range h.ctrl.Tasks() {
		_, _ = fmt.Fprintf(h.out, "  %d. %s\n", i+1, task.Label)
	}
}

func (h *Host) printCounter() {
	_, _ = fmt.Fprintf(h.out, "Tasks: %s\n", h.ctrl.CounterText())
}

func (h *Host) printStatus(st tasks.Status) {
	switch st.Category {
	case tasks.CategorySuccess:
		_, _ = h.green.Fprintln(h.out, "✓ "+st.Text)
	case tasks.CategoryError:
		_, _ = h.red.Fprintln(h.out, "✗ "+st.Text)
	default:
		_, _ = fmt.Fprintln(h.out, st.Text)
	}
}

func (h *Host) printHelp() {
	_, _ = fmt.Fprintln(h.out, "Commands:")
	_, _ = fmt.Fprintln(h.out, "  "+CmdList+"    show all tasks")
	_, _ = fmt.Fprintln(h.out, "  "+CmdClear+"   clear all tasks (asks for confirmation)")
	_, _ = fmt.Fprintln(h.out, "  "+CmdStatus+"  show the current status message")
	_, _ = fmt.Fprintln(h.out, "  "+CmdHelp+"    show this list")
	_, _ = fmt.Fprintln(h.out, "  "+CmdQuit+"    exit")
}

func (h *Host) printPrompt() {
	if h.opts.Interactive && !h.confirming {
		_, _ = fmt.Fprint(h.out, "> ")
	}
}
