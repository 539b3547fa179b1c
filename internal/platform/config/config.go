package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string

	// Store API (upstream backend)
	StoreAPIBaseURL      string
	StoreAPITimeout      time.Duration
	StoreAPIClientID     string
	StoreAPIClientSecret string
	StoreAPITokenURL     string

	SubscriptionCacheTTL time.Duration
	RedisURL             string
	RateLimit            string
	CORSAllowedOrigins   []string
	PosthogAPIKey        string

	LowStockThreshold   int
	PlaceholderImageURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("STORE_API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("STORE_API_TIMEOUT", "15s")
	viper.SetDefault("STORE_API_CLIENT_ID", "")
	viper.SetDefault("STORE_API_CLIENT_SECRET", "")
	viper.SetDefault("STORE_API_TOKEN_URL", "")
	viper.SetDefault("SUBSCRIPTION_CACHE_TTL", "5m")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("PLACEHOLDER_IMAGE_URL", "/images/placeholder-product.png")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Activity log will be kept in memory.")
	}
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.StoreAPIBaseURL = strings.TrimRight(viper.GetString("STORE_API_BASE_URL"), "/")
	cfg.StoreAPITimeout = parseDuration("STORE_API_TIMEOUT", 15*time.Second)
	cfg.StoreAPIClientID = viper.GetString("STORE_API_CLIENT_ID")
	cfg.StoreAPIClientSecret = viper.GetString("STORE_API_CLIENT_SECRET")
	cfg.StoreAPITokenURL = viper.GetString("STORE_API_TOKEN_URL")
	if cfg.StoreAPIClientID == "" || cfg.StoreAPITokenURL == "" {
		log.Println("Warning: STORE_API_CLIENT_ID or STORE_API_TOKEN_URL not set. Store API calls will be unauthenticated.")
	}

	cfg.SubscriptionCacheTTL = parseDuration("SUBSCRIPTION_CACHE_TTL", 5*time.Minute)
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.LowStockThreshold = viper.GetInt("LOW_STOCK_THRESHOLD")
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 5
		log.Printf("Warning: Invalid LOW_STOCK_THRESHOLD. Defaulting to %d.\n", cfg.LowStockThreshold)
	}
	cfg.PlaceholderImageURL = viper.GetString("PLACEHOLDER_IMAGE_URL")

	return cfg, nil
}

// parseDuration reads a duration key (e.g. "15s", "5m"), falling back on invalid input.
func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
