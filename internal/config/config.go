package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application settings loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	RedisURL           string
	CORSAllowedOrigins []string

	LogFormat string
	LogLevel  string

	CartTTL            time.Duration
	ShippingQuoteDelay time.Duration
	IdempotencyTTL     time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int
	BodyLimitBytes  int64

	SecurityHeaders       bool
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool

	TracingEnabled   bool
	TracingEndpoint  string
	TracingSampling  float64
	MetricsNamespace string
	MetricsBuckets   string
}

// Load reads settings from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		RedisURL:           k.String("REDIS_URL"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),

		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),

		CartTTL:            parseDuration(k.String("CART_TTL"), "720h"),
		ShippingQuoteDelay: parseDuration(k.String("SHIPPING_QUOTE_DELAY"), "800ms"),
		IdempotencyTTL:     parseDuration(k.String("IDEMPOTENCY_TTL"), "24h"),

		RateLimitWindow: parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
		RateLimitMax:    int(k.Int64("RATE_LIMIT_MAX")),
		BodyLimitBytes:  k.Int64("BODY_LIMIT_BYTES"),

		SecurityHeaders:       parseBoolDefault(k.String("SECURITY_HEADERS"), true),
		EnableHSTS:            parseBool(k.String("ENABLE_HSTS")),
		HSTSMaxAge:            int(k.Int64("HSTS_MAX_AGE")),
		HSTSIncludeSubdomains: parseBool(k.String("HSTS_INCLUDE_SUBDOMAINS")),

		TracingEnabled:   parseBool(k.String("TRACING_ENABLED")),
		TracingEndpoint:  k.String("TRACING_ENDPOINT"),
		TracingSampling:  k.Float64("TRACING_SAMPLING_RATIO"),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "loja"),
		MetricsBuckets:   k.String("METRICS_BUCKETS_MS"),
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 60
	}
	if cfg.BodyLimitBytes <= 0 {
		cfg.BodyLimitBytes = 1 << 16
	}
	if cfg.TracingSampling <= 0 {
		cfg.TracingSampling = 1
	}

	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server binds to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseBoolDefault(value string, fallback bool) bool {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return parseBool(value)
}

// LoadForTests overrides environment variables for the duration of a Load call.
func LoadForTests(vars map[string]string) (*Config, error) {
	original := make(map[string]string, len(vars))
	for key := range vars {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, vars[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
