// Файл: config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type StubConfig struct {
	Port      string
	JWTSecret string
}

type Config struct {
	API  APIConfig
	Stub StubConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
			RequestTimeout: getDuration("API_REQUEST_TIMEOUT", 20*time.Second),
		},
		Stub: StubConfig{
			Port:      getEnv("STUB_PORT", "8080"),
			JWTSecret: getEnv("STUB_JWT_SECRET", "9A4D2AD385B2BAA8DC78F558B548F"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
