package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalcar-backend/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
storage:
  type: "memory"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
log:
  level: "info"
  format: "text"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, config.StorageTypeMemory, cfg.Storage.Type)
	// Defaults filled during validation.
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 24, cfg.Scheduler.PendingTTLHours)
	assert.NotEmpty(t, cfg.Scheduler.ExpirePendingRentals)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "ShortJWTSecret",
			content: `
server:
  port: 8080
jwt:
  secret: "short"
`,
		},
		{
			name: "BadPort",
			content: `
server:
  port: 99999
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "UnknownStorage",
			content: `
server:
  port: 8080
storage:
  type: "cassandra"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "PostgresWithoutHost",
			content: `
server:
  port: 8080
storage:
  type: "postgres"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 5432
	cfg.Database.User = "svc"
	cfg.Database.Password = "pw"
	cfg.Database.Database = "rentals"
	cfg.Database.SSLMode = "disable"

	assert.Equal(t, "postgres://svc:pw@db.local:5432/rentals?sslmode=disable", cfg.GetDatabaseConnectionString())
}
