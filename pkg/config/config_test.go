package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	assert.Equal(t, "access-secret", cfg.AccessTokenSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.PostgresDSN(), "dbname=testdb")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenExpiry)
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_EXPIRY", "ten days")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_SameSecrets(t *testing.T) {
	cfg := &Config{AccessTokenSecret: "same", RefreshTokenSecret: "same"}
	assert.Error(t, cfg.Validate())
}
