package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
app:
  env: dev
http:
  addr: ":9000"
storage:
  driver: memory
telegram:
  token: abc
  admin_chat_id: 42
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dev", c.App.Env)
	require.Equal(t, "Europe/Berlin", c.App.Timezone)
	require.Equal(t, ":9000", c.HTTP.Addr)
	require.Equal(t, DriverMemory, c.Storage.Driver)
	require.Equal(t, int64(42), c.Telegram.AdminChatID)
	require.True(t, c.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeYAML(t, "http:\n  addr: \":9000\"\n")
	t.Setenv("APP_HTTP_ADDR", ":7070")
	t.Setenv("APP_STORAGE_DIR", "/tmp/shopdesk")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", c.HTTP.Addr)
	require.Equal(t, "/tmp/shopdesk", c.Storage.Dir)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", c.HTTP.Addr)
	require.Equal(t, "http://localhost:8080", c.HTTP.PublicURL)
	require.Equal(t, DriverFile, c.Storage.Driver)
}

func TestLoad_PostgresNeedsDSN(t *testing.T) {
	path := writeYAML(t, "storage:\n  driver: postgres\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeYAML(t, "storage:\n  driver: redis\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "redis")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
