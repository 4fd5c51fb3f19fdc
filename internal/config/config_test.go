package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.Scheduling.Timezone)
	assert.Equal(t, 15, cfg.Scheduling.SlotStepMinutes)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db.internal"
password = "from-file"

[redis]
enabled = true
ttl_seconds = 60

[scheduling]
slot_step_minutes = 30
timezone = "Europe/Lisbon"
default_closing_time = "19:30"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 60, int(cfg.Redis.TTL().Seconds()))

	defaults, err := cfg.Scheduling.Defaults()
	require.NoError(t, err)
	assert.Equal(t, 30, defaults.SlotStepMinutes)
	assert.Equal(t, "Europe/Lisbon", defaults.Timezone)
	assert.Equal(t, types.MustTimeString("19:30"), defaults.ClosingTime)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken toml", body: "[server\nhttp_port = 1"},
		{name: "bad port", body: "[server]\nhttp_port = 70000"},
		{name: "zero step", body: "[scheduling]\nslot_step_minutes = 0"},
		{name: "unknown timezone", body: "[scheduling]\ntimezone = \"Mars/Olympus\""},
		{name: "bad closing time", body: "[scheduling]\ndefault_closing_time = \"25:00\""},
		{name: "redis without ttl", body: "[redis]\nenabled = true\nttl_seconds = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.URL())
}
