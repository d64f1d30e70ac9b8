package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// developmentTokenSecret signs tokens minted by the CLI when no secret is
// configured in development.
const developmentTokenSecret = "development-only-identity-secret"

type Config struct {
	Env         string
	Port        int
	LogLevel    string
	DatabaseUrl string

	// Database pool
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Identity provider token verification
	IdentityTokenSecret string
	IdentityIssuer      string
	IdentityAudience    string
	IdentityLeeway      time.Duration

	// Identity subjects granted super admin on sign-in
	AdminUIDs []string

	// Push-to-top request throttling, per caller
	PushRatePerMinute float64
	PushRateBurst     int

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		IdentityTokenSecret: getEnv("IDENTITY_TOKEN_SECRET", ""),
		IdentityIssuer:      getEnv("IDENTITY_ISSUER", ""),
		IdentityAudience:    getEnv("IDENTITY_AUDIENCE", ""),
		IdentityLeeway:      getEnvDuration("IDENTITY_LEEWAY", 30*time.Second),

		PushRatePerMinute: getEnvFloat("PUSH_RATE_PER_MINUTE", 10),
		PushRateBurst:     getEnvInt("PUSH_RATE_BURST", 3),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// Parse admin subjects from comma-separated environment variable.
	// Subjects are opaque and case-sensitive.
	if raw := getEnv("ADMIN_UIDS", ""); raw != "" {
		for _, uid := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(uid); trimmed != "" {
				cfg.AdminUIDs = append(cfg.AdminUIDs, trimmed)
			}
		}
	}

	// Required
	cfg.DatabaseUrl = os.Getenv("DATABASE_URL")
	if cfg.DatabaseUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.IdentityTokenSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("IDENTITY_TOKEN_SECRET is required when ENV is %q", cfg.Env)
		}
		cfg.IdentityTokenSecret = developmentTokenSecret
	}

	if cfg.PushRatePerMinute <= 0 {
		return nil, fmt.Errorf("PUSH_RATE_PER_MINUTE must be positive, got: %v", cfg.PushRatePerMinute)
	}
	if cfg.PushRateBurst < 1 {
		return nil, fmt.Errorf("PUSH_RATE_BURST must be at least 1, got: %d", cfg.PushRateBurst)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
