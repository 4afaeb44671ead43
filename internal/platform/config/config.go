// Package config loads process-wide configuration once at startup.
// Components receive their settings through constructors instead of
// reading environment variables ad hoc.
package config

import (
	"os"
	"time"
)

// EnvKeyJWTSecret is the environment variable holding the token signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Config holds every setting the server needs. It is built once in main
// and treated as immutable afterwards.
type Config struct {
	Addr string // HTTP listen address (e.g. ":8080")

	// Database settings, combined into a DSN by platform/db.
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	// JWTSecret signs and verifies session tokens.
	JWTSecret string

	// TokenTTL is the lifetime of an issued session token.
	TokenTTL time.Duration

	// Redis settings. Empty RedisHost means the cache is disabled.
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// Load builds a Config from environment variables so main stays lean.
func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:          addr,
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		JWTSecret:     os.Getenv(EnvKeyJWTSecret),
		TokenTTL:      time.Hour,
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}
