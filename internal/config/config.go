// Package config loads application configuration from environment variables.
// Everything is read once at startup and treated as immutable afterwards;
// components receive the values they need through constructors instead of
// reading ambient state.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings.  Required database variables are
// enforced by must(); everything else has a development-friendly default.
type Config struct {
	Env        string  // application environment (e.g. "dev", "prod")
	Port       string  // HTTP port to listen on
	DBUser     string  // database username
	DBPass     string  // database password (optional)
	DBHost     string  // database host address
	DBPort     string  // database port number
	DBName     string  // database name
	TaxRate    float64 // fraction of the subtotal charged as tax
	AMQPURL    string  // RabbitMQ connection URL
	MailAPIKey string  // HTTP mail API key; empty disables sending
	MailFrom   string  // From address for confirmation mail
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       getenv("APP_PORT", "8080"),
		DBUser:     must("DB_USER"),
		DBPass:     os.Getenv("DB_PASS"),
		DBHost:     must("DB_HOST"),
		DBPort:     must("DB_PORT"),
		DBName:     must("DB_NAME"),
		TaxRate:    envFloat("TAX_RATE", 0.06),
		AMQPURL:    getenv("RABBITMQ_URL", getenv("AMQP_URL", "")),
		MailAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:   os.Getenv("FROM_EMAIL"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
