package tasks

import "time"

// Category classifies a status message for presentation.
type Category string

const (
	// CategoryNone is the neutral state a status reverts to.
	CategoryNone Category = ""
	// CategorySuccess marks a completed action.
	CategorySuccess Category = "success"
	// CategoryError marks a rejected action.
	CategoryError Category = "error"
)

// Status is the transient feedback shown after an action.
type Status struct {
	Text     string
	Category Category
}

// IsZero reports whether no status has been set.
func (s Status) IsZero() bool {
	return s.Text == "" && s.Category == CategoryNone
}

// Reversion is a one-shot request to reset the status category.
// Hosts schedule it After the given delay and hand it back to Revert.
type Reversion struct {
	Seq   uint64
	After time.Duration
}

// IsZero reports whether the reversion is empty (nothing to schedule).
func (r Reversion) IsZero() bool {
	return r.Seq == 0
}

// Status returns the current status message.
func (c *Controller) Status() Status {
	return c.status
}

// ShowStatus sets the status text and category and returns the reversion
// the host must schedule.
func (c *Controller) ShowStatus(text string, category Category) Reversion {
	c.seq++
	c.status = Status{Text: text, Category: category}
	return Reversion{Seq: c.seq, After: c.opts.StatusTimeout}
}

// Revert resets the status category to neutral. The text is kept.
// With CoalesceStatus, reversions for superseded messages are ignored.
func (c *Controller) Revert(r Reversion) {
	if r.IsZero() {
		return
	}
	if c.opts.CoalesceStatus && r.Seq != c.seq {
		return
	}
	c.status.Category = CategoryNone
}
