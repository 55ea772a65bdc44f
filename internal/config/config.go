// Package config handles configuration loading, validation, and live
// reload for the zhuyind tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zhuyind/internal/layout"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the shared configuration of the zhuyind binaries.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Input configures the composition engine.
	Input InputConfig `toml:"input" json:"input" yaml:"input"`

	// Display configures how compositions are rendered.
	Display DisplayConfig `toml:"display" json:"display" yaml:"display"`

	// History configures the committed-syllable store.
	History HistoryConfig `toml:"history" json:"history" yaml:"history"`

	// Logging configures structured logging.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// InputConfig selects the keyboard arrangement and correction behavior.
type InputConfig struct {
	// Layout is the keyboard arrangement name, e.g. "dachen" or
	// "hanyupinyin".
	Layout string `toml:"layout" json:"layout" yaml:"layout"`

	// Correction enables the phonetic combination corrector.
	Correction bool `toml:"correction" json:"correction" yaml:"correction"`
}

// DisplayConfig selects the rendering of the inline composition.
type DisplayConfig struct {
	// Pinyin renders the composition as Hanyu Pinyin instead of Bopomofo.
	Pinyin bool `toml:"pinyin" json:"pinyin" yaml:"pinyin"`

	// Textbook uses textbook styling: tone diacritics for Pinyin, a
	// leading neutral-tone mark for Bopomofo.
	Textbook bool `toml:"textbook" json:"textbook" yaml:"textbook"`
}

// HistoryConfig configures the SQLite syllable history.
type HistoryConfig struct {
	// Enabled turns history recording on.
	Enabled bool `toml:"enabled" json:"enabled" yaml:"enabled"`

	// Path is the database file location. Empty means the default under
	// the zhuyind directory.
	Path string `toml:"path" json:"path" yaml:"path"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is text or json.
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is stdout, stderr, file, or both.
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the log file location when Output includes a file.
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// Dir returns the per-user zhuyind directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zhuyind"
	}
	return filepath.Join(home, ".zhuyind")
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultHistoryPath returns the default history database location.
func DefaultHistoryPath() string {
	return filepath.Join(Dir(), "history.db")
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Input: InputConfig{
			Layout:     layout.Dachen.String(),
			Correction: false,
		},
		Display: DisplayConfig{},
		History: HistoryConfig{
			Enabled: true,
			Path:    DefaultHistoryPath(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Layout resolves the configured arrangement.
func (c *Config) Layout() (layout.Layout, error) {
	return layout.Parse(c.Input.Layout)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error

	if c.Version <= 0 || c.Version > Version {
		errs = append(errs, fmt.Errorf("unsupported config version %d", c.Version))
	}
	if _, err := layout.Parse(c.Input.Layout); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", c.Logging.Format))
	}
	switch c.Logging.Output {
	case "stdout", "stderr", "file", "both":
	default:
		errs = append(errs, fmt.Errorf("invalid log output %q", c.Logging.Output))
	}
	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.FilePath == "" {
		errs = append(errs, errors.New("logging.file_path required for file output"))
	}

	return errors.Join(errs...)
}

// ApplyEnvOverrides lets the environment override the input settings,
// which is handy when testing arrangements without editing the file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ZHUYIND_LAYOUT"); v != "" {
		c.Input.Layout = v
	}
	if v := os.Getenv("ZHUYIND_CORRECTION"); v != "" {
		c.Input.Correction = strings.EqualFold(v, "true") || v == "1"
	}
}
