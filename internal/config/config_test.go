package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"REDIS_URL": "redis://localhost:6379/0",
		"APP_ENV":   "",
		"PORT":      "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, 720*time.Hour, cfg.CartTTL)
	require.Equal(t, 800*time.Millisecond, cfg.ShippingQuoteDelay)
	require.Equal(t, 60, cfg.RateLimitMax)
	require.Equal(t, int64(1<<16), cfg.BodyLimitBytes)
	require.True(t, cfg.SecurityHeaders)
}

func TestLoadRequiresRedisURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{"REDIS_URL": ""})
	require.Error(t, err)
}

func TestLoadParsesOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"REDIS_URL":            "redis://localhost:6379/0",
		"PORT":                 "9090",
		"CART_TTL":             "48h",
		"SHIPPING_QUOTE_DELAY": "250ms",
		"CORS_ALLOWED_ORIGINS": "https://loja.example, https://admin.example",
		"RATE_LIMIT_MAX":       "5",
		"SECURITY_HEADERS":     "false",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, 48*time.Hour, cfg.CartTTL)
	require.Equal(t, 250*time.Millisecond, cfg.ShippingQuoteDelay)
	require.Equal(t, []string{"https://loja.example", "https://admin.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 5, cfg.RateLimitMax)
	require.False(t, cfg.SecurityHeaders)
}

func TestLoadFallsBackOnBadDuration(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"REDIS_URL": "redis://localhost:6379/0",
		"CART_TTL":  "not-a-duration",
	})
	require.NoError(t, err)
	require.Equal(t, 720*time.Hour, cfg.CartTTL)
}
