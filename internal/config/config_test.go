package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "db"
user = "profile"
dbname = "profiles"

[catalog]
url = "http://catalog:8080"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Catalog.TimeoutDuration())
	assert.Equal(t, time.Hour, cfg.Booking.FlowTTLDuration())
	assert.Equal(t, 30*time.Second, cfg.Booking.SubmitLockTTLDuration())
	assert.Equal(t, time.Minute, cfg.Redis.CatalogCacheTTLDuration())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090

[redis]
enabled = true
addr = "redis:6379"
catalog_cache_ttl = 120

[booking]
flow_ttl = 600
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Redis.CatalogCacheTTLDuration())
	assert.Equal(t, 10*time.Minute, cfg.Booking.FlowTTLDuration())
}

func TestLoad_EnvSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("REDIS_PASSWORD", "r3dis")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "r3dis", cfg.Redis.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
	assert.Contains(t, cfg.Database.DSN(), "dbname=profiles")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing catalog url", content: "[database]\nhost = \"db\"\ndbname = \"x\"\n"},
		{name: "missing db host", content: "[catalog]\nurl = \"http://c\"\n"},
		{name: "bad port", content: minimalConfig + "[server]\nhttp_port = 70000\n"},
		{name: "redis without addr", content: minimalConfig + "[redis]\nenabled = true\naddr = \"\"\n"},
		{name: "broken toml", content: "[database\nhost="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
