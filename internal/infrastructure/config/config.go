package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret is shared with the auth service so session hydration can
	// validate tokens locally.
	JWTSecret string `env:"JWT_SECRET"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Auth  AuthConfig
	Mail  MailConfig
	Mongo MongoConfig
	Redis RedisConfig
	Rate  RateConfig
}

type AuthConfig struct {
	BaseURL string        `env:"AUTH_API_URL, default=http://localhost:9000"`
	Timeout time.Duration `env:"AUTH_API_TIMEOUT, default=10s"`
}

type MailConfig struct {
	BaseURL string        `env:"MAIL_API_URL, default=https://api.mail.example"`
	APIKey  string        `env:"MAIL_API_KEY"`
	From    string        `env:"MAIL_FROM, default=noreply@manara.example"`
	To      string        `env:"MAIL_TO,   default=hello@manara.example"`
	Timeout time.Duration `env:"MAIL_TIMEOUT, default=15s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=manara_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RateConfig struct {
	Limit  int64         `env:"RATE_LIMIT,  default=5"`
	Window time.Duration `env:"RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
