package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv shields a test from launcher variables in the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDelegate, EnvRunner, EnvLogFile, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
}

func TestLoader_Load_NoFile_ReturnsDefaults(t *testing.T) {
	clearEnv(t)
	loader := NewLoaderWithGlobalDir(t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "ziri", cfg.Delegate)
	assert.Equal(t, "npx", cfg.Runner)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
delegate = "ziri-dev"

[log]
level = "debug"
`)
	loader := NewLoaderWithGlobalDir(dir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "ziri-dev", cfg.Delegate)
	assert.Equal(t, "npx", cfg.Runner, "unset fields keep their defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `runner = "pnpx"`)
	t.Setenv(EnvRunner, "bunx")
	t.Setenv(EnvLogFile, "/tmp/launcher.log")
	loader := NewLoaderWithGlobalDir(dir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "bunx", cfg.Runner)
	assert.Equal(t, "/tmp/launcher.log", cfg.Log.File)
}

func TestLoader_Load_MalformedFile_DegradesToDefaultsWithWarning(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `delegate = [`)
	loader := NewLoaderWithGlobalDir(dir)

	cfg, err := loader.Load()

	require.NoError(t, err, "a broken config must never block delegation")
	assert.Equal(t, "ziri", cfg.Delegate)
	assert.Equal(t, "npx", cfg.Runner)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "ignoring config")
}

func TestLoader_Load_EmptyGlobalDir_ReturnsDefaults(t *testing.T) {
	clearEnv(t)
	loader := NewLoaderWithGlobalDir("")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "ziri", cfg.Delegate)
}

func TestDefaultGlobalConfigDir_RespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir := defaultGlobalConfigDir()

	assert.Equal(t, filepath.Join("/custom/config", "ziri-launcher"), dir)
}
