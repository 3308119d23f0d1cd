package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/accelhub")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/accelhub")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
}

func TestLoadExtraOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/accelhub")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CLIENT_URL", "https://app.accelhub.dev")
	t.Setenv("ALLOWED_ORIGINS", "https://staging.accelhub.dev, https://admin.accelhub.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.AllowedOrigins, "https://app.accelhub.dev")
	assert.Contains(t, cfg.AllowedOrigins, "https://staging.accelhub.dev")
	assert.Contains(t, cfg.AllowedOrigins, "https://admin.accelhub.dev")
}

func TestIsProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/accelhub")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
}
