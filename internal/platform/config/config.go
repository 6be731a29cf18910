package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Seamless wallet provider settings
	SeamlessSecretKey    string
	SeamlessOperatorCode string
	IdempotencyClaimTTL  time.Duration

	WebhookRateLimit   string
	AdminRateLimit     string
	CORSAllowedOrigins []string
	MetricsPort        string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "wallet-ledger-admin")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEAMLESS_SECRET_KEY", "")
	viper.SetDefault("SEAMLESS_OPERATOR_CODE", "")
	viper.SetDefault("IDEMPOTENCY_CLAIM_TTL", "30s")
	viper.SetDefault("RATE_LIMIT_WEBHOOK", "6000-M")
	viper.SetDefault("RATE_LIMIT_ADMIN", "600-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("METRICS_PORT", "9090")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.StorageDriver = strings.ToLower(viper.GetString("STORAGE_DRIVER"))
	if cfg.StorageDriver != StoragePostgres && cfg.StorageDriver != StorageMemory {
		log.Printf("Warning: unknown STORAGE_DRIVER %q. Defaulting to %s.\n", cfg.StorageDriver, StoragePostgres)
		cfg.StorageDriver = StoragePostgres
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StorageDriver == StoragePostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SeamlessSecretKey = viper.GetString("SEAMLESS_SECRET_KEY")
	if cfg.SeamlessSecretKey == "" {
		log.Println("Warning: SEAMLESS_SECRET_KEY not set. Every provider signature will be rejected.")
	}
	cfg.SeamlessOperatorCode = viper.GetString("SEAMLESS_OPERATOR_CODE")

	claimTTLStr := viper.GetString("IDEMPOTENCY_CLAIM_TTL")
	claimTTL, err := time.ParseDuration(claimTTLStr)
	if err != nil || claimTTL <= 0 {
		claimTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for IDEMPOTENCY_CLAIM_TTL ('%s'). Defaulting to %s.\n", claimTTLStr, claimTTL.String())
	}
	cfg.IdempotencyClaimTTL = claimTTL

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Rate limits and idempotency claims stay in process.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.WebhookRateLimit = viper.GetString("RATE_LIMIT_WEBHOOK")
	cfg.AdminRateLimit = viper.GetString("RATE_LIMIT_ADMIN")
	cfg.MetricsPort = viper.GetString("METRICS_PORT")
	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
