package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	BaseURL  string
	DBDriver string
	DBSource string

	JWTSecret string

	StripeSecretKey      string
	StripePublishableKey string

	UploadsDir string

	// Analytics retention: once the event log exceeds EventCap, the oldest
	// events are pruned down to EventTrimTo.
	EventCap    int64
	EventTrimTo int64

	CORSOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:                 getEnv("PORT", "3002"),
		BaseURL:              getEnv("BASE_URL", "http://localhost:3002"),
		DBDriver:             getEnv("DB_DRIVER", "postgres"),
		DBSource:             getEnv("DB_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		UploadsDir:           getEnv("UPLOADS_DIR", "./uploads"),
		EventCap:             getEnvInt64("ANALYTICS_EVENT_CAP", 100000),
		EventTrimTo:          getEnvInt64("ANALYTICS_EVENT_TRIM_TO", 80000),
		CORSOrigins:          []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
