// Package config loads service configuration from the environment so main
// stays lean. A .env file is honored in development; real deployments set
// the variables directly.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr          string
	DatabaseURL   string
	RedisURL      string
	KafkaBrokers  []string
	KafkaTopic    string
	JWTSigningKey string

	ProcessorBaseURL string
	ProcessorAPIKey  string
	GatewayTimeout   time.Duration

	// VerificationReturnURL is where hosted identity verification sessions
	// send the seller back to.
	VerificationReturnURL string

	// RequirementsCacheTTL bounds how stale the cached upstream requirement
	// listing may be.
	RequirementsCacheTTL time.Duration
}

// FromEnv builds a Config from environment variables, falling back to
// development defaults.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:                  envOr("VERIPAY_ADDR", ":8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisURL:              os.Getenv("REDIS_URL"),
		KafkaTopic:            envOr("KAFKA_NOTIFY_TOPIC", "veripay.notifications"),
		JWTSigningKey:         envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		ProcessorBaseURL:      envOr("PROCESSOR_BASE_URL", "https://api.processor.example.com"),
		ProcessorAPIKey:       os.Getenv("PROCESSOR_API_KEY"),
		GatewayTimeout:        durationOr("PROCESSOR_TIMEOUT", 30*time.Second),
		VerificationReturnURL: envOr("VERIFICATION_RETURN_URL", "http://localhost:8080/compliance/verify-identity"),
		RequirementsCacheTTL:  durationOr("REQUIREMENTS_CACHE_TTL", 30*time.Second),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
