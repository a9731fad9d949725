package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	platformstrings "onboarding/pkg/platform/strings"
)

// PublisherMode selects where signup events go.
type PublisherMode string

const (
	PublisherMemory PublisherMode = "memory"
	PublisherOutbox PublisherMode = "outbox"
	PublisherKafka  PublisherMode = "kafka"
)

// RiskSource selects where the risk model is read from.
type RiskSource string

const (
	RiskStatic RiskSource = "static"
	RiskRedis  RiskSource = "redis"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Server captures process level configuration.
type Server struct {
	Addr            string        `env:"ONBOARDING_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Publisher       PublisherMode `env:"PUBLISHER_MODE" envDefault:"memory"`
	RiskSource      RiskSource    `env:"RISK_SOURCE" envDefault:"static"`
	AdminTokenHash  string        `env:"ADMIN_TOKEN_HASH"`
	// Entries kept by the memory publisher when no relay drains it.
	MemoryOutboxCapacity int `env:"MEMORY_OUTBOX_CAPACITY" envDefault:"1000"`

	Link     LinkConfig     `envPrefix:"LINK_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Postgres PostgresConfig `envPrefix:"POSTGRES_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Relay    RelayConfig    `envPrefix:"RELAY_"`
}

// LinkConfig configures verification link signing.
type LinkConfig struct {
	SigningKey string `env:"SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	Issuer     string `env:"ISSUER" envDefault:"onboarding"`
	BaseURL    string `env:"BASE_URL" envDefault:"http://localhost:8080/customers/verify"`
}

// RedisConfig configures the Redis client. An empty URL leaves Redis unconfigured.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	RiskModelKey string        `env:"RISK_MODEL_KEY" envDefault:"risk:model:current"`
}

// PostgresConfig configures the outbox database.
type PostgresConfig struct {
	DSN          string        `env:"DSN"`
	MaxOpenConns int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLife  time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// KafkaConfig configures the event broker.
type KafkaConfig struct {
	Brokers    []string `env:"BROKERS" envSeparator:","`
	Topic      string   `env:"TOPIC" envDefault:"customer-signups"`
	Partitions int32    `env:"PARTITIONS" envDefault:"3"`
	Replicas   int16    `env:"REPLICAS" envDefault:"1"`
}

// RelayConfig configures the outbox relay worker.
type RelayConfig struct {
	Interval   time.Duration `env:"INTERVAL" envDefault:"1s"`
	BatchSize  int           `env:"BATCH_SIZE" envDefault:"100"`
	Attempts   uint          `env:"ATTEMPTS" envDefault:"3"`
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"100ms"`
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is loaded first when present.
func FromEnv() (Server, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return Server{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Kafka.Brokers = platformstrings.DedupeAndTrim(cfg.Kafka.Brokers)
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks that the selected modes have what they need.
func (s Server) Validate() error {
	switch s.Publisher {
	case PublisherMemory:
	case PublisherOutbox:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("%w: POSTGRES_DSN is required for publisher mode %q", ErrInvalidConfig, s.Publisher)
		}
		if len(s.Kafka.Brokers) == 0 {
			return fmt.Errorf("%w: KAFKA_BROKERS is required for the outbox relay", ErrInvalidConfig)
		}
	case PublisherKafka:
		if len(s.Kafka.Brokers) == 0 {
			return fmt.Errorf("%w: KAFKA_BROKERS is required for publisher mode %q", ErrInvalidConfig, s.Publisher)
		}
	default:
		return fmt.Errorf("%w: unknown publisher mode %q", ErrInvalidConfig, s.Publisher)
	}

	switch s.RiskSource {
	case RiskStatic:
	case RiskRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("%w: REDIS_URL is required for risk source %q", ErrInvalidConfig, s.RiskSource)
		}
	default:
		return fmt.Errorf("%w: unknown risk source %q", ErrInvalidConfig, s.RiskSource)
	}

	if strings.TrimSpace(s.Link.SigningKey) == "" {
		return fmt.Errorf("%w: LINK_SIGNING_KEY must not be empty", ErrInvalidConfig)
	}
	return nil
}
