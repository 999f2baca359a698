package config

import (
	"os"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	IdentityURL    string
	IdentityAPIKey string
	GinMode        string
	Port           string
}

func Load() *Config {
	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "eva"),
		DBPassword:     getEnv("DB_PASSWORD", "evapassword"),
		DBName:         getEnv("DB_NAME", "eva_app"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		IdentityURL:    getEnv("IDENTITY_URL", "http://localhost:9999"),
		IdentityAPIKey: getEnv("IDENTITY_API_KEY", ""),
		GinMode:        getEnv("GIN_MODE", "debug"),
		Port:           getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
