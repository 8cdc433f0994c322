package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)

	cfg := MustLoad("")

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, BiometricNone, cfg.BiometricMode)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "pronotes.db"), cfg.DataPath)
}

func TestMustLoadDefaultLogLevelPerEnv(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	t.Setenv("APP_ENV", EnvProd)
	cfg := MustLoad("")
	assert.Equal(t, "info", cfg.LogLevel)

	t.Setenv("LOG_LEVEL", "warn")
	cfg = MustLoad("")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestMustLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "pronotes.env")
	content := "APP_ENV=dev\n" +
		"LOG_LEVEL=error\n" +
		"STORE_BACKEND=memory\n" +
		"BIOMETRIC_MODE=trusted\n" +
		"DATA_DIR=" + dir + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Cleanup(func() {
		for _, key := range []string{"APP_ENV", "LOG_LEVEL", "STORE_BACKEND", "BIOMETRIC_MODE", "DATA_DIR"} {
			os.Unsetenv(key)
		}
	})

	cfg := MustLoad(path)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, BiometricTrusted, cfg.BiometricMode)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestMustLoadMissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.env"))
	})
}

func TestMustLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("STORE_BACKEND", "bolt")

	assert.Panics(t, func() {
		MustLoad("")
	})
}
