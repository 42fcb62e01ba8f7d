package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DataPath     string
	LogFile      string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DataPath = getEnv("DATA_PATH", "data/bmsprints.db")
	cfg.LogFile = getEnv("LOG_FILE", "")
	cfg.ReadTimeout = getEnvInt("READ_TIMEOUT", 10)
	cfg.WriteTimeout = getEnvInt("WRITE_TIMEOUT", 10)
	cfg.IdleTimeout = getEnvInt("IDLE_TIMEOUT", 60)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}
