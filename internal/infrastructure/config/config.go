package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string `env:"PORT,           default=8080"`
	Env            string `env:"ENV,            default=development"`
	LogLevel       string `env:"LOG_LEVEL,      default=info"`
	JWTSecret      string `env:"JWT_SECRET"`
	TokenTTLMin    int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
	PasswordHasher string `env:"PASSWORD_HASHER, default=sha256"`

	NotifyWorkers   int `env:"NOTIFY_WORKERS,    default=4"`
	NotifyQueueSize int `env:"NOTIFY_QUEUE_SIZE, default=256"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=order_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_SERVER, default=smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT,   default=587"`
	Username string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	From     string `env:"EMAIL_FROM"`
}

// AdminConfig drives the optional admin bootstrap at startup. Nothing is
// seeded unless Password is set.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
