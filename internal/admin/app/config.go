package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer    string // Required: expected issuer claim on inbound tokens
	JWTSecret string // Optional: HS256 shared secret (dev and tests)
	JWTPubKey string // Optional: path to RS256 public key PEM (production)

	BaseURL      string // Dashboard origin used to build invite links (default: http://localhost:3000)
	DatabaseFile string // Path to SQLite database file (default: ./admin.db)

	SMTPHost     string // SMTP relay host; empty disables email delivery
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string // From header (default: Buffalo Solar Admin <admin@buffalosolar.com>)
	SMTPInsecure bool   // Disable TLS, for local capture servers only

	BreakGlassEmails []string // Extra always-super-admin emails, comma separated

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired invitation sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    os.Getenv("ADMIN_ISSUER"),
		JWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		JWTPubKey: os.Getenv("ADMIN_JWT_PUBLIC_KEY_FILE"),

		BaseURL:      getEnvOrDefault("ADMIN_BASE_URL", "http://localhost:3000"),
		DatabaseFile: getEnvOrDefault("ADMIN_DATABASE_FILE", "admin.db"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom: getEnvOrDefault(
			"SMTP_FROM",
			"Buffalo Solar Admin <admin@buffalosolar.com>",
		),
		SMTPInsecure: getEnvBoolOrDefault("SMTP_INSECURE", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// Extra break-glass emails on top of the compiled-in set
	if extra := os.Getenv("ADMIN_BREAK_GLASS_EMAILS"); extra != "" {
		for _, email := range strings.Split(extra, ",") {
			if email = strings.TrimSpace(email); email != "" {
				cfg.BreakGlassEmails = append(cfg.BreakGlassEmails, email)
			}
		}
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "buffalosolar-sso"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
