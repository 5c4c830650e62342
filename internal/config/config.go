package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http
	App  App `validate:"required"`

	Cors CORS `validate:"required"`

	Backend Backend `validate:"required"`
	Esewa   Esewa   `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`
	Redis    Redis

	Cache Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type App struct {
	// PublicURL is the origin the gateway redirects back to.
	PublicURL    string `validate:"required,url"`
	DashboardURL string `validate:"required,url"`
}

type Backend struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	// ServiceToken authenticates calls made outside a user request.
	ServiceToken string `validate:"required"`

	VerifyAttempts     int           `validate:"gte=1"`
	VerifyInitialDelay time.Duration `validate:"gte=0"`
}

type Esewa struct {
	Environment   string `validate:"required,oneof=sandbox production"`
	SandboxURL    string `validate:"required,url"`
	ProductionURL string `validate:"required,url"`
}

type Kafka struct {
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Redis is optional. Without an address the in-flight guard is kept in
// process memory.
type Redis struct {
	Addr     string        `validate:"omitempty,hostname_port"`
	Password string
	DB       int           `validate:"gte=0"`
	LockTTL  time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		App: App{
			PublicURL:    env("PUBLIC_URL", "http://localhost:8080"),
			DashboardURL: env("DASHBOARD_URL", "http://localhost:3000/fees"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Backend: Backend{
			BaseURL: env("BACKEND_URL", "http://localhost:5000/api"),
			Timeout: envDuration("BACKEND_TIMEOUT", 10*time.Second),

			ServiceToken: env("BACKEND_SERVICE_TOKEN", ""),

			VerifyAttempts:     envInt("BACKEND_VERIFY_ATTEMPTS", 3),
			VerifyInitialDelay: envDuration("BACKEND_VERIFY_INITIAL_DELAY", 200*time.Millisecond),
		},

		Esewa: Esewa{
			Environment:   env("ESEWA_ENV", "sandbox"),
			SandboxURL:    env("ESEWA_SANDBOX_URL", "https://rc-epay.esewa.com.np/api/epay/main/v2/form"),
			ProductionURL: env("ESEWA_PRODUCTION_URL", "https://epay.esewa.com.np/api/epay/main/v2/form"),
		},

		Kafka: Kafka{
			Topic:   env("KAFKA_TOPIC", "fee-payments"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "payments"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
			LockTTL:  envDuration("REDIS_LOCK_TTL", time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GatewayURL returns the form endpoint for the configured environment.
func (e Esewa) GatewayURL() string {
	if e.Environment == "production" {
		return e.ProductionURL
	}
	return e.SandboxURL
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
