package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL  string
	RedisAddr   string
	RedisDB     int
	HTTPTimeout time.Duration
}

func Load() *Config {
	return &Config{
		APIBaseURL:  getEnv("BARBER_API_BASE_URL", "http://localhost:8080/api"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
