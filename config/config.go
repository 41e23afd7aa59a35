package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	Env      string
	LogLevel string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		DBPath:   GetEnv("DB_PATH", "./data/shelftrack.db"),
		Env:      GetEnv("ENV", "development"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
