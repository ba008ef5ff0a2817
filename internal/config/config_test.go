package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251218-go-app-boot/internal/config"
	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
	"github.com/lwmacct/251218-go-app-boot/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "app", cfg.App.Name)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, int64(logging.DefaultMaxBytes), cfg.Logging.MaxBytes)
	assert.Equal(t, logging.DefaultBackupCount, cfg.Logging.BackupCount)
}

func TestDecodeOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  file: /var/log/app.log\n  backup_count: 2\n"), 0o600))

	store, err := cfgm.Open(path)
	require.NoError(t, err)

	t.Setenv("APP_LOGGING_MAX_BYTES", "2048")

	cfg := config.DefaultConfig()
	require.NoError(t, store.Decode("", &cfg))

	assert.Equal(t, "app", cfg.App.Name)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "/var/log/app.log", cfg.Logging.File)
	assert.Equal(t, 2, cfg.Logging.BackupCount)
	assert.Equal(t, int64(2048), cfg.Logging.MaxBytes)

	lc := cfg.LoggerConfig()
	assert.Equal(t, "app", lc.Name)
	assert.Equal(t, "/var/log/app.log", lc.File)
	assert.Equal(t, int64(2048), lc.MaxBytes)
}
