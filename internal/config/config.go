package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
	PrivateBucket          string
	PublicBucket           string

	// Database
	DatabaseURL string

	// Stripe
	StripeSecretKey            string
	StripeWebhookSecret        string
	StripeConnectWebhookSecret string
	Currency                   string
	AccountCountry             string
	PlatformFeePercent         int64

	// Client application
	AppURL      string
	AppDeepLink string

	// Photos
	SignedURLTTL    time.Duration
	PreviewMaxWidth int
	WatermarkText   string

	// Server
	Port               string
	Environment        string
	BaseURL            string
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env is fine; the process environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:            strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		PrivateBucket:          getEnv("SUPABASE_PRIVATE_BUCKET", "photos"),
		PublicBucket:           getEnv("SUPABASE_PUBLIC_BUCKET", "photos_public"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		StripeSecretKey:            getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:        getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripeConnectWebhookSecret: getEnv("STRIPE_CONNECT_WEBHOOK_SECRET", ""),
		Currency:                   strings.ToLower(getEnv("STRIPE_CURRENCY", "brl")),
		AccountCountry:             strings.ToUpper(getEnv("STRIPE_ACCOUNT_COUNTRY", "BR")),

		AppURL:      strings.TrimRight(getEnv("APP_URL", "http://localhost:8081"), "/"),
		AppDeepLink: getEnv("APP_DEEP_LINK", "clackbum://"),

		WatermarkText: getEnv("WATERMARK_TEXT", "CLACKBUM"),

		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	var err error
	if cfg.PlatformFeePercent, err = getEnvInt64("PLATFORM_FEE_PERCENT", 15); err != nil {
		return nil, err
	}
	ttl, err := getEnvInt64("SIGNED_URL_TTL_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.SignedURLTTL = time.Duration(ttl) * time.Second
	width, err := getEnvInt64("PREVIEW_MAX_WIDTH", 1200)
	if err != nil {
		return nil, err
	}
	cfg.PreviewMaxWidth = int(width)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceRoleKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	if c.StripeConnectWebhookSecret == "" {
		return fmt.Errorf("STRIPE_CONNECT_WEBHOOK_SECRET is required")
	}
	if c.PlatformFeePercent < 0 || c.PlatformFeePercent > 100 {
		return fmt.Errorf("PLATFORM_FEE_PERCENT must be between 0 and 100, got %d", c.PlatformFeePercent)
	}
	if c.SignedURLTTL <= 0 {
		return fmt.Errorf("SIGNED_URL_TTL_SECONDS must be positive")
	}
	if c.PreviewMaxWidth <= 0 {
		return fmt.Errorf("PREVIEW_MAX_WIDTH must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
