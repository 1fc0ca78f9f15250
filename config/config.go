package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	CookieSecure bool
	CORSOrigins  []string
}

// Load reads .env if present, then the process environment, applying
// defaults for everything except the signing secret.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "5000"),
		MongoURI:     getenv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DBName:       getenv("DB_NAME", "jobdb"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CookieSecure: getenv("COOKIE_SECURE", "true") != "false",
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
