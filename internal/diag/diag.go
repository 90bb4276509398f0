// Package diag provides the diagnostic log stream for todo.
package diag

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Startup messages.
const (
	MsgLoaded   = "Task Manager loaded successfully"
	MsgLoadTime = "Page load time:"
)

// NewLogger creates a logrus logger writing to w at the given level.
// format is "text" or "json".
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return log, nil
}

// FormatElapsed renders d as milliseconds with two decimal places, e.g. "12.34ms".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

// Startup writes the two startup records: the loaded notice and the time
// elapsed since start. start should carry a monotonic clock reading.
func Startup(log logrus.FieldLogger, start time.Time) {
	elapsed := time.Since(start)

	log.Info(MsgLoaded)
	log.WithField("elapsed_ms", float64(elapsed)/float64(time.Millisecond)).
		Info(MsgLoadTime + " " + FormatElapsed(elapsed))
}
