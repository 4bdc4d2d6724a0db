package config

import (
	"fmt"
	"time"

	"github.com/dwikikusuma/shopfront/pkg/money"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort        int           `envconfig:"GRPC_PORT" default:"8081"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:5500,http://localhost:5500,http://localhost:8080"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"your-secret-key"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	Currency string `envconfig:"CURRENCY" default:"USD"`
	// CurrencyScale of 0 means the currency's ISO minor unit.
	CurrencyScale int32 `envconfig:"CURRENCY_SCALE"`
	SeedCatalog   bool  `envconfig:"SEED_CATALOG" default:"true"`

	DefaultShippingAddress string `envconfig:"DEFAULT_SHIPPING_ADDRESS" default:"123 Main St, City, State, ZIP"`
	DefaultPaymentMethod   string `envconfig:"DEFAULT_PAYMENT_METHOD" default:"credit_card"`
	QuoteConcurrency       int    `envconfig:"QUOTE_CONCURRENCY" default:"10"`

	KafkaBrokers   []string      `envconfig:"KAFKA_BROKERS"`
	OrdersTopic    string        `envconfig:"ORDERS_TOPIC" default:"orders.placed"`
	PublishTimeout time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"3s"`
}

// Load reads an optional .env file and then the process environment. Values
// already present in the environment win over the file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing file is fine, the environment alone is a valid source
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.CurrencyScale == 0 {
		cfg.CurrencyScale = money.MinorUnits(cfg.Currency)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.CurrencyScale < 0 || c.CurrencyScale > 8 {
		return fmt.Errorf("CURRENCY_SCALE must be within 0..8, got %d", c.CurrencyScale)
	}
	if c.Currency == "" {
		return fmt.Errorf("CURRENCY must not be empty")
	}
	if c.PublishTimeout <= 0 {
		return fmt.Errorf("PUBLISH_TIMEOUT must be positive, got %s", c.PublishTimeout)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.HTTPPort <= 0 || c.GRPCPort <= 0 {
		return fmt.Errorf("ports must be positive, got http=%d grpc=%d", c.HTTPPort, c.GRPCPort)
	}
	return nil
}

func (c Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

func (c Config) GRPCAddr() string { return fmt.Sprintf(":%d", c.GRPCPort) }
