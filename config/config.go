package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
)

var (
	// APIBaseURL is the FocoShop REST API the gateway fronts.
	APIBaseURL string
	Port       string
	AppEnv     string
)

// Load reads environment configuration, falling back to local defaults.
func Load() {
	APIBaseURL = strings.TrimRight(getEnv("STORE_API_URL", "http://localhost:8000"), "/")
	Port = getEnv("PORT", "8081")
	AppEnv = getEnv("APP_ENV", "development")

	if os.Getenv("STORE_API_URL") == "" {
		log.Println("⚠️ STORE_API_URL not set, using local default:", APIBaseURL)
	}
	log.Println("✅ Config loaded (upstream:", APIBaseURL+")")
}

// AllowedOrigins returns the storefront origins permitted by CORS.
func AllowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{"http://localhost:4200", "http://localhost:3000"}
}

// WithTimeout returns a context with a 10s timeout for upstream/Redis calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
