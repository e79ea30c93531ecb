package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/guard/internal/config"
	"codeberg.org/mutker/guard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "guard.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
max_length = 80
trim = true
upper = false
`)
	t.Setenv("GUARD_CONFIG", path)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.GetLogLevel(), "Expected LogLevel debug")
	assert.Equal(t, 80, cfg.GetMaxLength(), "Expected MaxLength 80")
	assert.True(t, cfg.IsTrim(), "Expected Trim true")
	assert.False(t, cfg.IsUpper(), "Expected Upper false")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")

	cfg, err := config.Load(nil, config.WithConfigDir(t.TempDir()))
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultMaxLength, cfg.MaxLength)
	assert.False(t, cfg.Trim)
	assert.False(t, cfg.Upper)
	assert.Empty(t, cfg.Args)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)

	_, err := config.Load(nil, config.WithConfigFile(path))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrReadConfig))
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestLoadConfigDir(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")
	path := writeConfig(t, `
max_length = 64
upper = true
`)

	cfg, err := config.Load(nil, config.WithConfigDir(filepath.Dir(path)))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxLength)
	assert.True(t, cfg.Upper)

	dir := filepath.Join(t.TempDir(), "broken")
	require.NoError(t, os.Mkdir(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guard.toml"), []byte("not toml"), 0o600))

	_, err = config.Load(nil, config.WithConfigDir(dir))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrReadConfig))
}

func TestLoadFlagOutput(t *testing.T) {
	var out bytes.Buffer

	_, err := config.Load([]string{"--loud"}, config.WithOutput(&out), config.WithConfigDir(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrBindFlags))
	assert.Contains(t, out.String(), "unknown flag: --loud")
	assert.Contains(t, out.String(), "--max-length")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrReadConfig))
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
log_level = "invalid"
`)
	t.Setenv("GUARD_CONFIG", path)

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrInvalidLogLevel))
	assert.Contains(t, err.Error(), `"invalid"`)
}

func TestMaxLengthOutOfRange(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")

	_, err := config.Load([]string{"--max-length", "0"}, config.WithConfigDir(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrInvalidConfig))
	assert.True(t, errors.HasCode(err, errors.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "Input parameter 'max_length':0∉[min:1; max:1048576].")
}

func TestLogLevelFlag(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")

	cfg, err := config.Load([]string{"--log-level", "debug", "привет", "мир"}, config.WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
	assert.Equal(t, []string{"привет", "мир"}, cfg.Args)
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
max_length = 80
upper = true
`)
	t.Setenv("GUARD_CONFIG", path)
	t.Setenv("GUARD_MAX_LENGTH", "120")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.MaxLength, "env overrides file")
	assert.True(t, cfg.Upper, "file overrides default")

	cfg, err = config.Load([]string{"--max-length", "200"})
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.MaxLength, "flag overrides env")
}

func TestWithEnvPrefix(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")
	t.Setenv("TRANSLIT_TRIM", "true")

	cfg, err := config.Load(nil, config.WithEnvPrefix("TRANSLIT"), config.WithConfigDir(t.TempDir()))
	require.NoError(t, err)
	assert.True(t, cfg.Trim)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{LogLevel: " ", MaxLength: 10}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, config.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "Checked parameter 'log_level' is empty.")

	cfg = &config.Config{LogLevel: "info", MaxLength: 10}
	assert.NoError(t, cfg.Validate())
}
