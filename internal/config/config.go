package config

import (
	"fmt"
	"os"
	"strings"
)

// Config collects every environment setting consumed by the process. It is
// loaded once in main and passed down explicitly.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	Port           string
	Domain         string
	Env            string
	AllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("PORT"),
		Domain:      os.Getenv("DOMAIN"),
		Env:         os.Getenv("APP_ENV"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}

	cfg.AllowedOrigins = append(cfg.AllowedOrigins, defaultOrigins...)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
