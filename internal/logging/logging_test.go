package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appconfig "zhuyind/internal/config"
)

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	l, err := New(&Config{
		Level:     slog.LevelInfo,
		JSON:      true,
		Output:    "file",
		FilePath:  path,
		Component: "test",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hello", "layout", "dachen")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"layout":"dachen"`) || !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("unexpected log contents: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(&Config{Level: slog.LevelWarn, Output: "file", FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("quiet")
	l.Warn("loud")
	l.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") || !strings.Contains(string(data), "loud") {
		t.Fatalf("level filtering broken: %s", data)
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(appconfig.LoggingConfig{
		Level:  "debug",
		Format: "json",
		Output: "stderr",
	}, "zhuyinctl")
	if cfg.Level != slog.LevelDebug || !cfg.JSON || cfg.Component != "zhuyinctl" {
		t.Fatalf("unexpected translation: %+v", cfg)
	}
}

func TestUnknownOutputFails(t *testing.T) {
	if _, err := New(&Config{Output: "pipe"}); err == nil {
		t.Fatal("unknown output should fail")
	}
}
