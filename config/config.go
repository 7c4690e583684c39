package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	GinMode     string
}

func Load() *Config {
	return &Config{
		Addr:        ":" + getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "timetracker.db"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		GinMode:     getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
