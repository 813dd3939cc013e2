package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-auth-api/internal/config"
	"github.com/stretchr/testify/require"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	require.Equal(t, 168*time.Hour, cfg.RefreshTokenExpiry)
	require.True(t, cfg.IsDev())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "PROD")
	t.Setenv("JWT_ACCESS_EXPIRATION", "5m")
	t.Setenv("JWT_REFRESH_EXPIRATION", "24h")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Addr())
	require.False(t, cfg.IsDev())
	require.Equal(t, 5*time.Minute, cfg.AccessTokenExpiry)
	require.Equal(t, 24*time.Hour, cfg.RefreshTokenExpiry)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestValidate_SecretsMustDiffer(t *testing.T) {
	cfg := &config.Config{
		AccessTokenSecret:  "same",
		RefreshTokenSecret: "same",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "must differ")
}
