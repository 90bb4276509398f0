package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigDir is the directory, relative to the working directory, that holds config.toml.
const ConfigDir = ".todo"

// FileConfig represents the configuration loaded from .todo/config.toml.
// Pointer fields distinguish "unset" from a zero value.
type FileConfig struct {
	// Theme is the TUI colour theme: "auto", "dark" or "light".
	Theme string `toml:"theme"`

	// SampleTasks replaces the default pre-existing tasks.
	// An explicit empty array starts with an empty list.
	SampleTasks *[]string `toml:"sample_tasks"`

	// StatusTimeout is a duration string such as "3s" or "1500ms".
	StatusTimeout *Duration `toml:"status_timeout"`

	// CoalesceStatus ignores reversions for superseded status messages.
	CoalesceStatus *bool `toml:"coalesce_status"`

	// Log configures the diagnostic stream.
	Log *LogConfig `toml:"log"`
}

// LogConfig represents the [log] section in config.toml.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Duration wraps time.Duration so it can be written as a string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ConfigPath returns the default config file path for a working directory.
func ConfigPath(workingDir string) string {
	return filepath.Join(workingDir, ConfigDir, "config.toml")
}

// LoadFileConfig reads configuration from .todo/config.toml in the working directory.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(workingDir string) (*FileConfig, error) {
	return LoadFileConfigFrom(ConfigPath(workingDir))
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply copies every value set in the file onto cfg.
// Callers apply command-line flags afterwards so flags take precedence.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc == nil {
		return
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.SampleTasks != nil {
		cfg.SampleTasks = append([]string(nil), (*fc.SampleTasks)...)
	}
	if fc.StatusTimeout != nil {
		cfg.StatusTimeout = fc.StatusTimeout.Duration
	}
	if fc.CoalesceStatus != nil {
		cfg.CoalesceStatus = *fc.CoalesceStatus
	}
	if fc.Log != nil {
		if fc.Log.Level != "" {
			cfg.LogLevel = fc.Log.Level
		}
		if fc.Log.Format != "" {
			cfg.LogFormat = fc.Log.Format
		}
		if fc.Log.File != "" {
			cfg.LogFile = fc.Log.File
		}
	}
}

// DefaultConfigHeader is the commented preamble written by todo init.
const DefaultConfigHeader = `# todo configuration
#
# theme            "auto", "dark" or "light"
# sample_tasks     tasks shown at startup; the counter starts at their count
# status_timeout   how long a status message stays highlighted
# coalesce_status  ignore highlight resets from superseded messages
#
# [log]
# level  = "info"   # trace, debug, info, warn, error
# format = "text"   # text or json
# file   = ""       # empty writes to stderr

`

// Encode renders cfg as a config.toml document, preceded by DefaultConfigHeader.
func Encode(cfg *Config) ([]byte, error) {
	samples := append([]string{}, cfg.SampleTasks...)
	coalesce := cfg.CoalesceStatus
	fc := FileConfig{
		Theme:          cfg.Theme,
		SampleTasks:    &samples,
		StatusTimeout:  &Duration{cfg.StatusTimeout},
		CoalesceStatus: &coalesce,
		Log: &LogConfig{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultConfigHeader)
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
