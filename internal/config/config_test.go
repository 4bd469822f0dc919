package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, time.Second, cfg.Assistant.ChatDelay)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
server:
  port: 8181
metrics:
  enabled: false
database:
  driver: postgres
  dsn: host=localhost dbname=wastewise sslmode=disable
assistant:
  chat_delay: 250ms
  seed: 42
auth:
  jwt_secret: s3cret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Assistant.ChatDelay)
	assert.Equal(t, int64(42), cfg.Assistant.Seed)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	// untouched keys keep their defaults
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WASTEWISE_PORT", "9000")
	t.Setenv("WASTEWISE_DB_DSN", "file::memory:")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8181\n"))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "database:\n  driver: mysql\n"))
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = Load(writeConfig(t, "server: [\n"))
	assert.ErrorContains(t, err, "parsing config")

	t.Setenv("WASTEWISE_PORT", "eighty")
	_, err = Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "WASTEWISE_PORT")
}
