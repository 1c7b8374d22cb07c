package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,     default=8080"`
	Env         string `env:"ENV,      default=development"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	TokenSecret string `env:"ACCESS_TOKEN_SECRET"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Payment PaymentConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=escoffierDb"`
}

type RedisConfig struct {
	// Addr may be empty: Redis is only a readiness-probe dependency and the
	// service runs without it.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type PaymentConfig struct {
	SecretKey string `env:"PAYMENT_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
