package confs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DEBUG", "DB_DRIVER", "DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"SQLITE_PATH", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "REDIS_URL", "KAFKA_BROKERS",
		"ENFORCE_LOGIN_ROLE", "ACTIVITY_FLUSH_SECONDS", "RESET_TOKEN_TTL_MINUTES", "DEFAULT_LOCALE",
		"CORS_ALLOWED_ORIGINS", "REALTY_CONFIG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3536", cfg.Port)
	assert.Equal(t, "0.0.0.0:3536", cfg.HTTPAddress())
	assert.Equal(t, "realty.db", cfg.SQLitePath)
	assert.True(t, cfg.EnforceLoginRole)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 30*time.Second, cfg.ActivityFlushInterval)
	assert.Equal(t, "fa", cfg.DefaultLocale)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_RequiresSecretAndDatabase(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	_, err = Load()
	require.Error(t, err, "postgres without DB_URL must fail")

	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/realty")
	_, err = Load()
	require.NoError(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092")

	path := filepath.Join(t.TempDir(), "realty.yaml")
	body := `
server:
  port: "9000"
database:
  driver: sqlite
  sqlite_path: /tmp/realty-test.db
auth:
  enforce_login_role: false
  jwt_ttl_minutes: 15
activity:
  flush_seconds: 5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("REALTY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/realty-test.db", cfg.SQLitePath)
	assert.False(t, cfg.EnforceLoginRole)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 5*time.Second, cfg.ActivityFlushInterval)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
}
