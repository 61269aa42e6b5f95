package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	Issuer      string        // Optional: issuer claim for session tokens (default: masterticket)
	JWTSecret   string        // Optional: HS256 secret, at least 32 bytes. Generated per process when empty
	SessionTTL  time.Duration // Optional: lifetime of a sign-in (default: 7 days)
	CORSOrigins []string      // Optional: comma separated browser origins allowed to call the API

	SendGridAPIKey string // Optional: enables invitation emails
	SendGridFrom   string // Optional: sender address for invitation emails
	AppURL         string // Optional: base URL used in invitation join links

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./masterticket.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	SessionRetention     time.Duration // How long expired or revoked sessions are kept (default: 24h)

	RateLimits httpx.RateLimits
}

// LoadConfig reads the environment, after merging an optional .env file from
// the working directory. Variables already set win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:      getEnvOrDefault("MT_JWT_ISSUER", "masterticket"),
		JWTSecret:   os.Getenv("MT_JWT_SECRET"),
		SessionTTL:  getEnvDurationOrDefault("MT_SESSION_TTL", jwtx.DefaultSessionTTL),
		CORSOrigins: splitList(os.Getenv("MT_CORS_ORIGINS")),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:   getEnvOrDefault("SENDGRID_FROM", "no-reply@masterticket.local"),
		AppURL:         os.Getenv("MT_APP_URL"),

		DatabaseFile:         getEnvOrDefault("MT_DATABASE_FILE", "masterticket.db"),
		PepperFile:           getEnvOrDefault("MT_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
		SessionRetention:     getEnvDurationOrDefault("MT_SESSION_RETENTION", 24*time.Hour),

		RateLimits: httpx.RateLimitsFromEnv(),
	}
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
