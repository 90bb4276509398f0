// Package config provides configuration management for todo.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/go-playground/validator/v10"
)

// Config holds the configuration for a todo session.
type Config struct {
	// WorkingDir is the directory searched for .todo/config.toml (default: ".").
	WorkingDir string `validate:"required"`

	// Theme is the colour theme for the TUI: "auto", "dark", or "light".
	// "auto" detects the terminal background colour automatically.
	// Default: "auto".
	Theme string `validate:"oneof=auto dark light"`

	// Minimal selects the line-oriented host instead of the TUI.
	Minimal bool

	// StatusTimeout is how long a status message keeps its category (default: 3s).
	StatusTimeout time.Duration `validate:"gt=0"`

	// CoalesceStatus ignores reversions for status messages that have been superseded.
	CoalesceStatus bool

	// SampleTasks are shown in the list at startup (default: two samples).
	SampleTasks []string `validate:"dive,required"`

	// LogLevel is the logrus level name (default: "info").
	LogLevel string `validate:"oneof=trace debug info warn error"`

	// LogFormat is "text" or "json" (default: "text").
	LogFormat string `validate:"oneof=text json"`

	// LogFile receives log output when set. Empty means stderr.
	LogFile string
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	samples := make([]string, len(tasks.DefaultSampleTasks))
	copy(samples, tasks.DefaultSampleTasks)

	return &Config{
		WorkingDir:    ".",
		Theme:         "auto",
		StatusTimeout: tasks.DefaultStatusTimeout,
		SampleTasks:   samples,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

var validate = validator.New()

// Validate checks that the configuration is valid.
// Returns an error naming the first offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("invalid %s %q: must be one of %s",
			fieldName(fe), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Errorf("%s must be positive", fieldName(fe))
	case "required":
		return fmt.Errorf("%s cannot be empty", fieldName(fe))
	default:
		return fmt.Errorf("invalid %s: %s", fieldName(fe), fe.Tag())
	}
}

// fieldName converts a validator field name such as "StatusTimeout" to "status timeout".
func fieldName(fe validator.FieldError) string {
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// TaskOptions returns the controller options described by the configuration.
func (c *Config) TaskOptions() tasks.Options {
	return tasks.Options{
		SampleTasks:    c.SampleTasks,
		StatusTimeout:  c.StatusTimeout,
		CoalesceStatus: c.CoalesceStatus,
	}
}
