// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	SessionSecret string

	// Optional OIDC single sign-on; enabled when all three are set.
	OIDCIssuerURL    string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads configuration from a .env file (if present) and the
// environment. An empty DATABASE_URL selects the in-memory store.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:             getEnv("ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SessionSecret:    getEnv("SESSION_SECRET", ""),
		OIDCIssuerURL:    getEnv("OIDC_ISSUER_URL", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", ""),
	}

	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

// SSOEnabled reports whether the OIDC login flow is configured.
func (c Config) SSOEnabled() bool {
	return c.OIDCIssuerURL != "" && c.OIDCClientID != "" && c.OIDCClientSecret != ""
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
