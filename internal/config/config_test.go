package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig_ReturnsConfigWithDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg == nil {
		t.Fatal("NewConfig() returned nil")
	}

	if cfg.WorkingDir != "." {
		t.Errorf("WorkingDir = %q; want %q", cfg.WorkingDir, ".")
	}

	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q; want %q", cfg.Theme, "auto")
	}

	if cfg.StatusTimeout != 3*time.Second {
		t.Errorf("StatusTimeout = %v; want %v", cfg.StatusTimeout, 3*time.Second)
	}

	if len(cfg.SampleTasks) != 2 {
		t.Errorf("len(SampleTasks) = %d; want 2", len(cfg.SampleTasks))
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}

	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q; want %q", cfg.LogFormat, "text")
	}

	if cfg.Minimal {
		t.Error("Minimal = true; want false")
	}

	if cfg.CoalesceStatus {
		t.Error("CoalesceStatus = true; want false")
	}
}

func TestNewConfig_SampleTasksAreCopied(t *testing.T) {
	a := NewConfig()
	a.SampleTasks[0] = "changed"

	b := NewConfig()
	if b.SampleTasks[0] == "changed" {
		t.Error("NewConfig() shares the default sample slice")
	}
}

func TestConfig_Validate_Defaults(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v; want nil", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad theme",
			mutate:  func(c *Config) { c.Theme = "neon" },
			wantErr: `invalid theme "neon": must be one of auto, dark, light`,
		},
		{
			name:    "zero status timeout",
			mutate:  func(c *Config) { c.StatusTimeout = 0 },
			wantErr: "status timeout must be positive",
		},
		{
			name:    "negative status timeout",
			mutate:  func(c *Config) { c.StatusTimeout = -time.Second },
			wantErr: "status timeout must be positive",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: `invalid log level "loud"`,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: `invalid log format "xml"`,
		},
		{
			name:    "empty working dir",
			mutate:  func(c *Config) { c.WorkingDir = "" },
			wantErr: "working dir cannot be empty",
		},
		{
			name:    "empty sample task",
			mutate:  func(c *Config) { c.SampleTasks = []string{"ok", ""} },
			wantErr: "sample tasks cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil; want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q; want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_EmptySampleListAllowed(t *testing.T) {
	cfg := NewConfig()
	cfg.SampleTasks = nil

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v; want nil", err)
	}
}

func TestConfig_TaskOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.StatusTimeout = time.Second
	cfg.CoalesceStatus = true
	cfg.SampleTasks = []string{"one"}

	opts := cfg.TaskOptions()

	if opts.StatusTimeout != time.Second {
		t.Errorf("StatusTimeout = %v; want 1s", opts.StatusTimeout)
	}
	if !opts.CoalesceStatus {
		t.Error("CoalesceStatus = false; want true")
	}
	if len(opts.SampleTasks) != 1 || opts.SampleTasks[0] != "one" {
		t.Errorf("SampleTasks = %v; want [one]", opts.SampleTasks)
	}
}
