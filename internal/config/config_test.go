package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-employee-server/internal/config"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "APP_NAME", "DB_PATH", "ENV", "SESSION_SECRET", "SESSION_LIFETIME",
		"COOKIE_SECURE", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "DEV", c.GetEnv())
	require.Equal(t, "./data/employees.db", c.GetDatabasePath())
	require.Equal(t, 24*time.Hour, c.GetSessionLifetime())
	require.False(t, c.GetCookieSecure())
	require.Equal(t, "admin", c.GetAdminUsername())
	require.Equal(t, "admin123", c.GetAdminPassword())
	require.Empty(t, c.GetAdminPasswordHash())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:8080"))
}

func TestNew_SessionSecretIsStableForOneConfig(t *testing.T) {
	clearEnv(t)

	c, err := config.New()
	require.NoError(t, err)
	first := c.GetSessionSecret()
	require.Len(t, first, 32) // 16 random bytes, hex encoded
	require.Equal(t, first, c.GetSessionSecret())

	// mutating the returned slice must not leak into the config
	first[0] ^= 0xff
	require.NotEqual(t, first, c.GetSessionSecret())

	other, err := config.New()
	require.NoError(t, err)
	require.NotEqual(t, c.GetSessionSecret(), other.GetSessionSecret())
}

func TestNew_SessionSecretFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), c.GetSessionSecret())
}

func TestNew_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("SESSION_LIFETIME", "90m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, 90*time.Minute, c.GetSessionLifetime())
	require.True(t, c.GetCookieSecure())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("http://b.test"))
	require.False(t, c.GetAllowedOrigins().IsAllowedOrigin("http://localhost:8080"))
}

func TestNew_InvalidValues(t *testing.T) {
	t.Run("lifetime", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_LIFETIME", "tomorrow")
		_, err := config.New()
		require.Error(t, err)
		require.Contains(t, err.Error(), "SESSION_LIFETIME")
	})

	t.Run("negative lifetime", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_LIFETIME", "-1h")
		_, err := config.New()
		require.Error(t, err)
	})

	t.Run("cookie secure", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("COOKIE_SECURE", "maybe")
		_, err := config.New()
		require.Error(t, err)
		require.Contains(t, err.Error(), "COOKIE_SECURE")
	})
}
