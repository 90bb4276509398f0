// Package main provides the CLI entry point for todo.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/flashingpumpkin/todo/internal/config"
	"github.com/flashingpumpkin/todo/internal/diag"
	"github.com/flashingpumpkin/todo/internal/plain"
	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/flashingpumpkin/todo/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	configFile     string
	workingDir     string
	theme          string
	minimal        bool
	statusTimeout  time.Duration
	coalesceStatus bool
	logLevel       string
	logFormat      string
	logFile        string
	samples        []string
}

// newRootCmd creates the todo command with its subcommands registered.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	defaults := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A minimal to-do list for the terminal",
		Long: `todo shows a task list with an input field for adding tasks.

Type a task name and press enter to add it. Blank names are rejected.
Press ctrl+x to clear every task after confirming. Press esc or ctrl+c to quit.

When stdin is not a terminal, or --minimal is given, todo reads one line per
task instead. The commands :clear, :list, :status, :help and :quit are
understood in that mode.

CONFIGURATION FILE

todo can be configured via a TOML file. By default, it looks for .todo/config.toml
in the working directory. Use --config to specify a different path, and
'todo init' to write one with the defaults.`,
		Args:          cobra.NoArgs,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to config file (default: .todo/config.toml)")
	flags.StringVarP(&opts.workingDir, "working-dir", "d", defaults.WorkingDir, "Directory searched for .todo/config.toml")
	flags.StringVar(&opts.theme, "theme", defaults.Theme, "Colour theme: auto, dark, light")
	flags.BoolVar(&opts.minimal, "minimal", false, "Use the line-oriented mode (no TUI)")
	flags.DurationVar(&opts.statusTimeout, "status-timeout", defaults.StatusTimeout, "How long a status message stays highlighted")
	flags.BoolVar(&opts.coalesceStatus, "coalesce-status", false, "Ignore highlight resets from superseded status messages")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", defaults.LogFormat, "Log format: text, json")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.StringArrayVar(&opts.samples, "sample", nil, "Task present at startup (can be repeated, replaces the defaults)")

	cmd.AddCommand(newInitCmd())

	return cmd
}

// loadConfig builds the effective configuration: defaults, then the config
// file, then any flags given explicitly on the command line.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	if flags.Changed("working-dir") {
		cfg.WorkingDir = opts.workingDir
	}

	var fileConfig *config.FileConfig
	var err error
	if opts.configFile != "" {
		fileConfig, err = config.LoadFileConfigFrom(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", opts.configFile, err)
		}
		if fileConfig == nil {
			return nil, fmt.Errorf("config file not found: %s", opts.configFile)
		}
	} else {
		fileConfig, err = config.LoadFileConfig(cfg.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	fileConfig.Apply(cfg)

	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("minimal") {
		cfg.Minimal = opts.minimal
	}
	if flags.Changed("status-timeout") {
		cfg.StatusTimeout = opts.statusTimeout
	}
	if flags.Changed("coalesce-status") {
		cfg.CoalesceStatus = opts.coalesceStatus
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("sample") {
		cfg.SampleTasks = append([]string(nil), opts.samples...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func runTodo(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logOut := cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}

	log, err := diag.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctrl := tasks.New(cfg.TaskOptions())
	if err := ctrl.CheckInvariant(); err != nil {
		return err
	}

	diag.Startup(log, startedAt)

	ctx, cancel := withShutdownSignals(cmd.Context(), log)
	defer cancel()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if !shouldUseTUI(cfg, in) {
		log.WithField("tasks", ctrl.Count()).Debug("starting line mode")
		host := plain.New(ctrl, in, out, plain.Options{
			Interactive: isTerminal(in),
			NoColor:     os.Getenv("NO_COLOR") != "" || !isTerminal(out),
			Logger:      log,
		})
		err := host.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	program, err := newTUIProgram(cfg, ctrl, log, in, out)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIProgram creates the full-screen host reading from in and drawing to out.
func newTUIProgram(cfg *config.Config, ctrl *tasks.Controller, log logrus.FieldLogger, in io.Reader, out io.Writer) (*tui.Program, error) {
	theme, err := tui.ParseTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	// Records written to stderr would corrupt the alt screen.
	var tuiLog logrus.FieldLogger
	if cfg.LogFile != "" {
		tuiLog = log
	}

	return tui.New(ctrl, tui.Options{
		Theme:  theme,
		Logger: tuiLog,
		Input:  in,
		Output: out,
	}), nil
}

// shouldUseTUI reports whether the full-screen interface should be used.
func shouldUseTUI(cfg *config.Config, in io.Reader) bool {
	if cfg.Minimal {
		return false
	}
	return isTerminal(in)
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
