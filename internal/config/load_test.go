package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSecret is long enough to satisfy the min=32 constraint.
const validSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Setenv("COOKIETER_DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("COOKIETER_AUTH_JWT_SECRET", validSecret)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 30, cfg.Server.RequestTimeoutSeconds)
	assert.Equal(t, "Cookieter", cfg.Database.Name)
	assert.Equal(t, 365, cfg.Auth.TokenLifetimeDays)
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COOKIETER_SERVER_PORT", "8080")
	t.Setenv("COOKIETER_SERVER_LOG_LEVEL", "debug")
	t.Setenv("COOKIETER_SERVER_ENVIRONMENT", "production")
	t.Setenv("COOKIETER_AUTH_TOKEN_LIFETIME_DAYS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeDays)
}

func TestLoad_MissingDatabaseURI(t *testing.T) {
	t.Setenv("COOKIETER_DATABASE_URI", "")
	t.Setenv("COOKIETER_AUTH_JWT_SECRET", validSecret)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid configuration"))
}

func TestLoad_ShortJWTSecretRejected(t *testing.T) {
	t.Setenv("COOKIETER_DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("COOKIETER_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidLogLevelRejected(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COOKIETER_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}
