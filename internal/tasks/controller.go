// Package tasks provides the task list controller for todo.
// This package can be used by both TUI and non-TUI modes.
package tasks

import (
	"strconv"
	"strings"
	"time"

	todoerrors "github.com/flashingpumpkin/todo/internal/errors"
)

// Status messages shown after user actions.
const (
	MsgEmptyTaskName = "Please enter a task name!"
	MsgTaskAdded     = "Task added successfully!"
	MsgTasksCleared  = "All tasks cleared!"
)

// DefaultStatusTimeout is how long a status keeps its category before reverting to neutral.
const DefaultStatusTimeout = 3000 * time.Millisecond

// DefaultSampleTasks are the tasks present when the list is first shown.
var DefaultSampleTasks = []string{
	"Set up CI pipeline",
	"Write Selenium tests",
}

// Task represents a single task item. The label is its only attribute.
type Task struct {
	Label string
}

// Options configures a Controller.
type Options struct {
	// SampleTasks are pre-existing tasks. The counter starts at len(SampleTasks).
	SampleTasks []string

	// StatusTimeout is the delay before a status reverts to neutral (default: 3s).
	StatusTimeout time.Duration

	// CoalesceStatus makes reversions for superseded messages no-ops.
	// When false, every reversion clears the category, even if a newer
	// message has been shown since.
	CoalesceStatus bool
}

// Result describes the outcome of a user action.
type Result struct {
	// Status is the status message after the action. Zero if none was shown.
	Status Status

	// Reversion must be scheduled by the host when Status is non-zero.
	Reversion Reversion

	// Changed is true if the task list or counter was mutated.
	Changed bool

	// Err is ErrEmptyTaskName when a submission was rejected.
	Err error
}

// Controller owns the task list, the task counter and the status message.
// It is not safe for concurrent use; hosts drive it from a single event loop.
type Controller struct {
	tasks  []Task
	count  int
	status Status
	seq    uint64
	opts   Options
}

// New creates a Controller seeded with opts.SampleTasks.
// Blank sample labels are skipped so the counter always matches the rendered list.
func New(opts Options) *Controller {
	if opts.StatusTimeout <= 0 {
		opts.StatusTimeout = DefaultStatusTimeout
	}

	c := &Controller{
		tasks: make([]Task, 0, len(opts.SampleTasks)),
		opts:  opts,
	}
	for _, label := range opts.SampleTasks {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		c.tasks = append(c.tasks, Task{Label: label})
	}
	c.count = len(c.tasks)

	return c
}

// Submit handles a submitted task name.
// Leading and trailing whitespace is trimmed; an empty name is rejected
// with an error status and leaves the list untouched.
func (c *Controller) Submit(input string) Result {
	label := strings.TrimSpace(input)
	if label == "" {
		rev := c.ShowStatus(MsgEmptyTaskName, CategoryError)
		return Result{
			Status:    c.status,
			Reversion: rev,
			Err:       todoerrors.ErrEmptyTaskName,
		}
	}

	c.tasks = append(c.tasks, Task{Label: label})
	c.count++

	rev := c.ShowStatus(MsgTaskAdded, CategorySuccess)
	return Result{
		Status:    c.status,
		Reversion: rev,
		Changed:   true,
	}
}

// ClearAll removes every task once the user has confirmed.
// A declined confirmation has no effect at all.
func (c *Controller) ClearAll(confirmed bool) Result {
	if !confirmed {
		return Result{}
	}

	c.tasks = c.tasks[:0]
	c.count = 0

	rev := c.ShowStatus(MsgTasksCleared, CategorySuccess)
	return Result{
		Status:    c.status,
		Reversion: rev,
		Changed:   true,
	}
}

// Tasks returns a copy of the current task list, in insertion order.
func (c *Controller) Tasks() []Task {
	result := make([]Task, len(c.tasks))
	copy(result, c.tasks)
	return result
}

// Count returns the task counter.
func (c *Controller) Count() int {
	return c.count
}

// CounterText renders the counter for display.
func (c *Controller) CounterText() string {
	return strconv.Itoa(c.count)
}

// CheckInvariant reports whether the counter agrees with the task list.
func (c *Controller) CheckInvariant() error {
	if c.count != len(c.tasks) {
		return todoerrors.ErrCounterMismatch
	}
	return nil
}
