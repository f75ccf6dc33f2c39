//go:build unit
// +build unit

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
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rest-app.yaml", `
port: "9090"
logger:
  log_level: debug
  log_type: console
  log_format: json
database:
  type: sqlite
  dsn: ":memory:"
  slow_query_threshold: 500ms
jwt:
  secret: test-secret
  algorithm: HS256
  expiration_minutes: 5
  refresh_expiration_minutes: 60
  require_auth: false
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.Logger.LogFormat)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, 500*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5, cfg.JWT.ExpirationMinutes)
	assert.False(t, cfg.JWT.RequireAuth)
	// untouched sections keep their defaults
	assert.Equal(t, []string{"http://localhost:8000", "http://127.0.0.1:8001"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, DefaultMaxIdleConns, cfg.Database.MaxIdleConns)
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rest-app.yaml", `
database:
  type: mysql
jwt:
  secret: from-file
`)

	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "rms_test")
	t.Setenv("SLOW_QUERY_THRESHOLD", "2.5")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRATION_MINUTES", "1")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, "rms_test", cfg.Database.Name)
	assert.Equal(t, 2500*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 1, cfg.JWT.ExpirationMinutes)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowOrigins)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := InitializeRestConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	invalid := writeFile(t, dir, "invalid.yaml", "port: [")
	_, err = InitializeRestConfig(invalid)
	require.Error(t, err)

	noSecret := writeFile(t, dir, "nosecret.yaml", "database:\n  type: sqlite\n")
	t.Setenv("JWT_SECRET", "")
	_, err = InitializeRestConfig(noSecret)
	require.Error(t, err)

	badInt := writeFile(t, dir, "badint.yaml", "database:\n  type: sqlite\njwt:\n  secret: s\n")
	t.Setenv("MYSQL_PORT", "not-a-number")
	_, err = InitializeRestConfig(badInt)
	require.Error(t, err)
}

func TestInitializeDatabaseSettings_IgnoresJWT(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rest-app.yaml", "database:\n  type: sqlite\n  dsn: \":memory:\"\n")
	t.Setenv("JWT_SECRET", "")

	settings, err := InitializeDatabaseSettings(path)
	require.NoError(t, err)
	assert.Equal(t, SqliteDbType, settings.Type)
	assert.Equal(t, ":memory:", settings.DSN)

	_, err = InitializeRestConfig(path)
	require.Error(t, err)

	badType := writeFile(t, t.TempDir(), "bad.yaml", "database:\n  type: oracle\n")
	_, err = InitializeDatabaseSettings(badType)
	require.Error(t, err)
}

func TestLoadEnvFiles_Layering(t *testing.T) {
	dir := t.TempDir()
	common := writeFile(t, dir, ".env.common", "RMS_TEST_A=common\nRMS_TEST_B=common\nRMS_TEST_C=common\n")
	specific := writeFile(t, dir, ".env.dev", "RMS_TEST_B=dev\n")

	t.Setenv("RMS_TEST_C", "process")
	t.Cleanup(func() {
		_ = os.Unsetenv("RMS_TEST_A")
		_ = os.Unsetenv("RMS_TEST_B")
	})

	err := LoadEnvFiles(common, specific, filepath.Join(dir, ".env.missing"))
	require.NoError(t, err)

	assert.Equal(t, "common", os.Getenv("RMS_TEST_A"))
	assert.Equal(t, "dev", os.Getenv("RMS_TEST_B"))
	assert.Equal(t, "process", os.Getenv("RMS_TEST_C"))
}

func TestEnvFiles(t *testing.T) {
	assert.Equal(t, []string{".env.common", ".env.dev"}, EnvFiles(""))
	assert.Equal(t, []string{".env.common", ".env.prod"}, EnvFiles("prod"))
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("2.0")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	d, err = parseDuration("150ms")
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, d)

	_, err = parseDuration("soon")
	require.Error(t, err)
}
