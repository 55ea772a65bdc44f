// Package logging provides structured logging with slog for the zhuyind
// binaries.
//
// The core composition packages never log; logging belongs to the outer
// daemons and CLIs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	appconfig "zhuyind/internal/config"
)

// Config holds the logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level slog.Level

	// JSON selects JSON output instead of human-readable text.
	JSON bool

	// Output specifies where logs are written: "stdout", "stderr",
	// "file", or "both" (stderr plus file).
	Output string

	// FilePath is the log file used when Output includes a file.
	FilePath string

	// AddSource adds source file and line to log entries.
	AddSource bool

	// Component tags every entry with the emitting binary.
	Component string
}

// DefaultConfig returns a stderr text logger at info level.
func DefaultConfig() *Config {
	return &Config{
		Level:     slog.LevelInfo,
		Output:    "stderr",
		FilePath:  defaultLogPath(),
		Component: "zhuyind",
	}
}

// FromAppConfig translates the shared application config into a logging
// Config.
func FromAppConfig(lc appconfig.LoggingConfig, component string) *Config {
	cfg := DefaultConfig()
	cfg.Component = component
	cfg.JSON = lc.Format == "json"
	cfg.Output = lc.Output
	if lc.FilePath != "" {
		cfg.FilePath = lc.FilePath
	}
	switch lc.Level {
	case "debug":
		cfg.Level = slog.LevelDebug
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	default:
		cfg.Level = slog.LevelInfo
	}
	return cfg
}

// defaultLogPath returns the platform-specific default log path.
func defaultLogPath() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Logs", "zhuyind", "zhuyind.log")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "zhuyind", "logs", "zhuyind.log")
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			home, _ := os.UserHomeDir()
			stateHome = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateHome, "zhuyind", "zhuyind.log")
	}
}

// Logger wraps slog.Logger with its configuration.
type Logger struct {
	*slog.Logger
	config *Config
	file   *os.File
}

var (
	defaultLogger *Logger
	loggerOnce    sync.Once
)

// Default returns the process-wide logger, creating a stderr fallback on
// first use.
func Default() *Logger {
	loggerOnce.Do(func() {
		l, err := New(DefaultConfig())
		if err != nil {
			l = &Logger{Logger: slog.Default(), config: DefaultConfig()}
		}
		defaultLogger = l
	})
	return defaultLogger
}

// SetDefault installs l as the process-wide logger.
func SetDefault(l *Logger) {
	defaultLogger = l
	slog.SetDefault(l.Logger)
}

// New creates a Logger from cfg.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Logger{config: cfg}

	var writers []io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		writers = append(writers, os.Stdout)
	case "", "stderr":
		writers = append(writers, os.Stderr)
	case "file":
		f, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		l.file = f
		writers = append(writers, f)
	case "both":
		f, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		l.file = f
		writers = append(writers, os.Stderr, f)
	default:
		return nil, fmt.Errorf("unknown log output %q", cfg.Output)
	}

	var w io.Writer
	if len(writers) == 1 {
		w = writers[0]
	} else {
		w = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	if cfg.Component != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("component", cfg.Component)})
	}

	l.Logger = slog.New(handler)
	return l, nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
