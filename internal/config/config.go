// Package config carga la configuración desde env vars (con .env opcional
// para dev vía godotenv). Sin DB_DSN el servicio corre con repos en memoria;
// sin AUTH_MODE corre en modo dev (header X-Debug-User-ID).
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBDSN string

	// AuthMode: "" (dev), "jwt" (secreto compartido) o "identity" (verificación remota).
	AuthMode        string
	JWTSecret       string
	IdentityBaseURL string
	IdentityAPIKey  string
	IdentityTimeout time.Duration

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	// .env es opcional; si no existe seguimos con el entorno tal cual.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBDSN:           os.Getenv("DB_DSN"),
		AuthMode:        os.Getenv("AUTH_MODE"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		IdentityBaseURL: os.Getenv("IDENTITY_BASE_URL"),
		IdentityAPIKey:  os.Getenv("IDENTITY_API_KEY"),
		IdentityTimeout: 5 * time.Second,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
