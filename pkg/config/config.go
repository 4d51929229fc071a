package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAccessExpiry     time.Duration
	FirebaseCredentials string
	// TokenRetention is how long an unused push token survives before the
	// sweeper evicts it.
	TokenRetention time.Duration
	SweepInterval  time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	retentionDays := 90
	if d := os.Getenv("TOKEN_RETENTION_DAYS"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			retentionDays = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=hongddo port=5432 sslmode=disable"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:     accessExpiry,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		TokenRetention:      time.Duration(retentionDays) * 24 * time.Hour,
		SweepInterval:       24 * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
