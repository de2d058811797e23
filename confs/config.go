package confs

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 24 * time.Hour

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	Environment string
}

// LoadConfig loads environment variables from a .env file if present
// and resolves the server configuration.
//
// JWT_SECRET policy: production refuses to start without one; any other
// environment gets a random ephemeral secret and a warning that tokens
// will not survive a restart.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    parseDuration(os.Getenv("JWT_EXPIRES_IN"), defaultTokenTTL),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		log.Println("warning: JWT_SECRET not set, generated an ephemeral secret; existing tokens will not survive a restart")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("warning: invalid JWT_EXPIRES_IN %q, using %s", value, fallback)
		return fallback
	}
	return d
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
