package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhuyind/internal/layout"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	l, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.Dachen, l)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1

[input]
layout = "hsu"
correction = true

[display]
pinyin = true

[logging]
level = "debug"
format = "json"
output = "stderr"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	l, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.Hsu, l)
	assert.True(t, cfg.Input.Correction)
	assert.True(t, cfg.Display.Pinyin)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  "version": 1,
  "input": {"layout": "hanyupinyin", "correction": false}
}`), 0o600))
	cfg, err := Load(jsonPath)
	require.NoError(t, err)
	l, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.HanyuPinyin, l)

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
version: 1
input:
  layout: eten26
  correction: true
`), 0o600))
	cfg, err = Load(yamlPath)
	require.NoError(t, err)
	l, err = cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.ETen26, l)
	assert.True(t, cfg.Input.Correction)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Input.Layout, cfg.Input.Layout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Layout = "qwerty"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Level = "chatty"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = ""
	assert.Error(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ZHUYIND_LAYOUT", "starlight")
	t.Setenv("ZHUYIND_CORRECTION", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	l, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout.Starlight, l)
	assert.True(t, cfg.Input.Correction)
}
