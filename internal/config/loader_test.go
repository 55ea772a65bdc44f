package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[input]\nlayout = \"dachen\"\n"), 0o600))

	l := NewLoader(path)
	t.Cleanup(func() { l.Close() })

	_, err := l.Load()
	require.NoError(t, err)

	changed := make(chan *Config, 1)
	l.OnChange(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[input]\nlayout = \"hsu\"\n"), 0o600))

	select {
	case cfg := <-changed:
		assert.Equal(t, "hsu", cfg.Input.Layout)
		assert.Equal(t, "hsu", l.Config().Input.Layout)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestLoaderIgnoresBrokenEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[input]\nlayout = \"dachen\"\n"), 0o600))

	l := NewLoader(path)
	t.Cleanup(func() { l.Close() })
	_, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())

	// An invalid layout must not displace the loaded config.
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[input]\nlayout = \"bogus\"\n"), 0o600))
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, "dachen", l.Config().Input.Layout)
}
