package config

import (
	"log/slog"
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

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "hr", cfg.Database.DBName)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, CacheableEntities, cfg.Cache.Entities)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=hr sslmode=disable", cfg.Database.DSN())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
[server]
port = "9090"
read_timeout = "5s"

[database]
host = "db.internal"
dbname = "hr_test"

[cache]
enabled = true
ttl = "10m"
entities = ["regions", "departments"]

[log]
level = "debug"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_HOST", "db.override")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout.Duration)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "hr_test", cfg.Database.DBName)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL.Duration)
	assert.True(t, cfg.Cache.Caches("departments"))
	assert.False(t, cfg.Cache.Caches("countries"))
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CACHE_ENTITIES", "tasks, regions")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"tasks", "regions"}, cfg.Cache.Entities)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL.Duration)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Cache.Caches("tasks"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad int", env: map[string]string{"REDIS_DB": "x"}},
		{name: "bad bool", env: map[string]string{"CACHE_ENABLED": "maybe"}},
		{name: "bad ttl", env: map[string]string{"CACHE_TTL": "soon"}},
		{name: "unknown entity", env: map[string]string{"CACHE_ENTITIES": "employees"}},
		{name: "zero ttl", env: map[string]string{"CACHE_ENABLED": "true", "CACHE_TTL": "0s"}},
		{name: "bad file", file: "[server\nport ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			if tt.file != "" {
				t.Setenv("CONFIG_FILE", writeConfig(t, tt.file))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLogConfig_SlogLevel_Unknown(t *testing.T) {
	c := LogConfig{Level: "loud"}
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
}
