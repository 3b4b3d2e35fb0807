package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "REDIS_ADDR", "TELEGRAM_BOT_TOKEN", "SMTP_PASSWORD", "PORT", PathEnv} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
database:
  url: postgres://localhost/impactio?sslmode=disable
auth:
  jwt_secret: s3cret
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/", cfg.Server.LoginPath)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Display.FilterTTL)
	assert.Equal(t, "1/2/2006", cfg.Display.DateLayout)
	assert.Equal(t, "UTC", cfg.Display.TimeZone)
	assert.False(t, cfg.Email.Enabled())
	assert.False(t, cfg.Telegram.Enabled())

	df := cfg.DateFormat()
	assert.Equal(t, "10/19/2026", df.Format(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)))
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
  login_path: /signin
database:
  url: postgres://db/impactio
  query_timeout: 3s
auth:
  jwt_secret: s3cret
  token_ttl: 1h
display:
  date_layout: "2006-01-02"
  filter_ttl: 30m
telegram:
  bot_token: "123:abc"
  chat_id: -100200
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/signin", cfg.Server.LoginPath)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.Display.FilterTTL)
	assert.Equal(t, "2006-01-02", cfg.Display.DateLayout)
	assert.True(t, cfg.Telegram.Enabled())
	assert.Equal(t, int64(-100200), cfg.Telegram.ChatID)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
database:
  url: postgres://file/impactio
auth:
  jwt_secret: from-file
`)
	t.Setenv("DATABASE_URL", "postgres://env/impactio")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/impactio", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 7000, cfg.Server.Port)

	t.Setenv(PathEnv, path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "auth:\n  jwt_secret: x\n"))
	assert.ErrorContains(t, err, "database.url")

	_, err = Load(writeConfig(t, "database:\n  url: pg://x\n"))
	assert.ErrorContains(t, err, "jwt_secret")

	_, err = Load(writeConfig(t, "database: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "database:\n  url: pg://x\nauth:\n  jwt_secret: x\ndisplay:\n  time_zone: Mars/Olympus\n"))
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	_, err = Load(writeConfig(t, "database:\n  url: pg://x\nauth:\n  jwt_secret: x\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/impactio")
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/impactio", cfg.Database.DSN)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
