package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[server]
http_port = 9090

[lobeca_api]
url = "https://api.lobeca.test"

[wizard]
selection_delay_ms = 150
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://api.lobeca.test", cfg.LobecaAPI.URL)
	assert.Equal(t, 150*time.Millisecond, cfg.Wizard.SelectionDelay())
	assert.Equal(t, 2, cfg.LobecaAPI.ReadRetries)
	assert.Equal(t, "America/Sao_Paulo", cfg.Wizard.TimeZone)
	assert.Equal(t, "lobeca_session", cfg.Session.CookieName)
	assert.Equal(t, 5, cfg.OTP.VerifyPerMinute)
	assert.Equal(t, 5, cfg.OTP.VerifyBurst)
}

func TestLoad_EnvFileOverridesSecrets(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[lobeca_api]
url = "https://api.lobeca.test"
`)
	writeFile(t, dir, ".env", "DB_PASSWORD=s3cret\nLOBECA_API_URL=https://staging.lobeca.test\n")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("LOBECA_API_URL", "")
	require.NoError(t, os.Unsetenv("DB_PASSWORD"))
	require.NoError(t, os.Unsetenv("LOBECA_API_URL"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "https://staging.lobeca.test", cfg.LobecaAPI.URL)
}

func TestLoad_Validation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[wizard]
time_zone = "Mars/Olympus"
`)
	t.Setenv("LOBECA_API_URL", "https://api.lobeca.test")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "lobeca", Password: "pw", DBName: "web", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=lobeca password=pw dbname=web sslmode=disable", d.DSN())
}
