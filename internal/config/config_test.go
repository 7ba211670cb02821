package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
auth:
  username: admin
  password: secret-pw
  session_secret: "0123456789abcdef0123456789abcdef"
`

func TestLoadFillsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "backups", cfg.Backup.Dir)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.OverdueRentalReminders)
	assert.Equal(t, ":8080", cfg.GetServerAddress())
}

func TestLoadRejectsMissingAuth(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  port: 9000\n"))
	assert.Error(t, err)
}

func TestLoadRejectsShortSessionSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
auth:
  username: admin
  password: secret-pw
  session_secret: "too-short"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("DATA_DIR", "/var/lib/fleet")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "/var/lib/fleet", cfg.Data.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
