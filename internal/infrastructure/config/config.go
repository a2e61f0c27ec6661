package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTLMinutes is the bearer token lifetime. There is no revocation
	// list, so tokens stay short-lived.
	TokenTTLMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI         string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database    string `env:"MONGO_DB,  default=employee_api"`
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE, default=10"`
	MinPoolSize uint64 `env:"MONGO_MIN_POOL_SIZE, default=1"`
}

type RedisConfig struct {
	Addr                  string `env:"REDIS_ADDR, default=localhost:6379"`
	DB                    int    `env:"REDIS_DB,   default=0"`
	ReportCacheTTLSeconds int    `env:"REPORT_CACHE_TTL_SECONDS, default=300"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
