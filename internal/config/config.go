package config

import (
	"os"
	"strconv"
)

type Config struct {
	OutDir    string
	Rows      int64
	BatchSize int
	LogLevel  string
}

func Load() *Config {
	return &Config{
		OutDir:    getEnv("FIXGEN_OUT_DIR", "."),
		Rows:      getEnvInt64("FIXGEN_ROWS", 90000),
		BatchSize: getEnvInt("FIXGEN_BATCH_SIZE", 1000),
		LogLevel:  getEnv("FIXGEN_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	return int(getEnvInt64(key, int64(defaultValue)))
}
