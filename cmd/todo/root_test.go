package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flashingpumpkin/todo/internal/config"
	"github.com/flashingpumpkin/todo/internal/diag"
	"github.com/flashingpumpkin/todo/internal/tasks"
	"github.com/flashingpumpkin/todo/internal/testhelpers"
)

// executeRoot runs the root command with input on stdin and returns its output streams.
func executeRoot(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_PipedInputUsesLineMode(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeRoot(t, "Buy milk\n   \n:clear\ny\n", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Tasks: 2",
		tasks.MsgTaskAdded,
		"Tasks: 3",
		tasks.MsgEmptyTaskName,
		tasks.MsgTasksCleared,
		"Tasks: 0",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRoot_WritesStartupDiagnostic(t *testing.T) {
	_, stderr, err := executeRoot(t, "", "-d", t.TempDir(), "--minimal")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stderr, diag.MsgLoaded) {
		t.Errorf("stderr missing %q:\n%s", diag.MsgLoaded, stderr)
	}
	if !strings.Contains(stderr, diag.MsgLoadTime) {
		t.Errorf("stderr missing %q:\n%s", diag.MsgLoadTime, stderr)
	}
}

func TestRoot_JSONLogFormat(t *testing.T) {
	_, stderr, err := executeRoot(t, "", "-d", t.TempDir(), "--log-format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, `"msg":"`+diag.MsgLoaded+`"`) {
		t.Errorf("expected JSON record, got:\n%s", stderr)
	}
}

func TestRoot_LogLevelSuppressesDiagnostic(t *testing.T) {
	_, stderr, err := executeRoot(t, "", "-d", t.TempDir(), "--log-level", "warn")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no log output at warn level, got:\n%s", stderr)
	}
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "todo.log")

	_, stderr, err := executeRoot(t, "task\n", "-d", dir, "--log-file", logPath, "--log-level", "debug")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("expected logs in file only, stderr:\n%s", stderr)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), diag.MsgLoaded) {
		t.Errorf("log file missing startup record:\n%s", content)
	}
	if !strings.Contains(string(content), "task added") {
		t.Errorf("log file missing debug record:\n%s", content)
	}
}

func TestRoot_ConfigFileInWorkingDir(t *testing.T) {
	dir, _ := testhelpers.WriteConfig(t, `sample_tasks = ["Water plants", "Pay rent", "Call mum"]`)

	stdout, _, err := executeRoot(t, "", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Tasks: 3") {
		t.Errorf("expected counter from config samples:\n%s", stdout)
	}
	if !strings.Contains(stdout, "3. Call mum") {
		t.Errorf("expected config samples listed:\n%s", stdout)
	}
}

func TestRoot_EmptySampleList(t *testing.T) {
	dir, _ := testhelpers.WriteConfig(t, `sample_tasks = []`)

	stdout, _, err := executeRoot(t, "", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Tasks: 0") {
		t.Errorf("expected empty list:\n%s", stdout)
	}
}

func TestRoot_SampleFlagOverridesConfig(t *testing.T) {
	dir, _ := testhelpers.WriteConfig(t, `sample_tasks = ["from file"]`)

	stdout, _, err := executeRoot(t, "", "-d", dir, "--sample", "one", "--sample", "two")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(stdout, "from file") {
		t.Errorf("config samples should be replaced:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1. one") || !strings.Contains(stdout, "2. two") {
		t.Errorf("expected flag samples:\n%s", stdout)
	}
}

func TestRoot_ExplicitConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte(`sample_tasks = ["custom"]`), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeRoot(t, "", "-d", t.TempDir(), "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1. custom") {
		t.Errorf("expected sample from explicit config:\n%s", stdout)
	}
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr string
	}{
		{
			name:    "missing explicit config",
			args:    []string{"--config", "/nonexistent/todo.toml"},
			wantErr: "config file not found",
		},
		{
			name:    "invalid config file",
			config:  "invalid toml {{{",
			wantErr: "failed to load config file",
		},
		{
			name:    "invalid theme flag",
			args:    []string{"--theme", "neon"},
			wantErr: `invalid theme "neon"`,
		},
		{
			name:    "invalid theme in file",
			config:  `theme = "neon"`,
			wantErr: `invalid theme "neon"`,
		},
		{
			name:    "zero status timeout",
			args:    []string{"--status-timeout", "0s"},
			wantErr: "status timeout must be positive",
		},
		{
			name:    "blank sample",
			args:    []string{"--sample", ""},
			wantErr: "sample tasks cannot be empty",
		},
		{
			name:    "invalid log level",
			args:    []string{"--log-level", "loud"},
			wantErr: `invalid log level "loud"`,
		},
		{
			name:    "positional argument",
			args:    []string{"extra"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				dir, _ = testhelpers.WriteConfig(t, tt.config)
			}

			args := append([]string{"-d", dir}, tt.args...)
			_, _, err := executeRoot(t, "", args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q; want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestShouldUseTUI(t *testing.T) {
	cfg := config.NewConfig()
	if shouldUseTUI(cfg, strings.NewReader("")) {
		t.Error("non-terminal input should use line mode")
	}

	cfg.Minimal = true
	if shouldUseTUI(cfg, os.Stdin) {
		t.Error("minimal should always use line mode")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if isTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}

func TestNewTUIProgram_UsesGivenStreams(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Theme = "dark"
	ctrl := tasks.New(cfg.TaskOptions())

	// ctrl+c quits the program.
	in := bytes.NewBufferString("\x03")
	var out bytes.Buffer

	program, err := newTUIProgram(cfg, ctrl, quietLogger(), in, &out)
	if err != nil {
		t.Fatalf("newTUIProgram() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- program.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		program.Kill()
		t.Fatal("program did not read from the given input")
	}

	if !strings.Contains(out.String(), "Initializing...") {
		t.Errorf("expected view drawn to the given output, got %q", out.String())
	}
}

func TestNewTUIProgram_InvalidTheme(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Theme = "neon"

	_, err := newTUIProgram(cfg, tasks.New(cfg.TaskOptions()), quietLogger(), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for invalid theme")
	}
}
