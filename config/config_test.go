package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "unnativ", cfg.JWT.Issuer)
	assert.Equal(t, "https://api.razorpay.com", cfg.Razorpay.BaseURL)
	assert.Equal(t, "INR", cfg.Razorpay.Currency)
	assert.Equal(t, 15*time.Second, cfg.Razorpay.Timeout)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc")
	t.Setenv("RAZORPAY_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "override-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, "rzp_test_abc", cfg.Razorpay.KeyID)
	assert.Equal(t, 3*time.Second, cfg.Razorpay.Timeout)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
