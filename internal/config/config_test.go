package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 8080
read_timeout = "15s"
write_timeout = "15s"
idle_timeout = "60s"
shutdown_timeout = "10s"

[database]
host = "localhost"
port = 5432
user = "carspa"
password = "secret"
name = "carspa_bookings"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = "5m"

[auth]
jwt_secret = "test-secret"
token_ttl = "24h"

[admin]
email = "admin@e6carspa.com"
password = "Admin@123"

[logs]
file = "stdout"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-platform"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL.Duration)
	assert.Equal(t, "admin@e6carspa.com", cfg.Admin.Email)
	assert.Contains(t, cfg.Database.DSN(), "dbname=carspa_bookings")
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_PASSWORD", "env-admin-pass")

	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-admin-pass", cfg.Admin.Password)
}

func TestLoad_MissingAdmin(t *testing.T) {
	cfg := `
[server]
http_port = 8080

[auth]
jwt_secret = "s"
token_ttl = "1h"
`
	_, err := Load(writeTestConfig(t, cfg))
	assert.Error(t, err)
}
