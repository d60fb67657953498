package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
db_username: "postgres"
db_password: "postgres"
db_host: "localhost"
db_port: "5432"
db_name: "hrmis"
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, "./private.pem", cfg.PrivateKeyFile)
	assert.Equal(t, 10, cfg.DTRCacheTTLMinutes)
}

func TestNewConfigMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
server_port: ":9000"
db_username: "postgres"
`)

	_, err := NewConfig(path)
	assert.Error(t, err)
}

func TestNewConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
server_port: ":9000"
db_username: "postgres"
db_password: "postgres"
db_host: "db"
db_port: "5432"
db_name: "hrmis"
redis_addr: "redis:6379"
dtr_cache_ttl_minutes: 30
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 30, cfg.DTRCacheTTLMinutes)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
