// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// Config holds the server settings
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMaxRetries  int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	RedisUseTLS      bool          `env:"REDIS_TLS" envDefault:"false"`
	RedisIdleTimeout time.Duration `env:"REDIS_IDLE_TIMEOUT" envDefault:"5m"`
	RedisPingTimeout time.Duration `env:"REDIS_PING_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// envPrefix namespaces every variable
const envPrefix = "MECHBAY_"

// Load reads an optional .env file and then the MECHBAY_ environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.RedisAddr == "" {
		vb.RequiredField("REDIS_ADDR")
	}
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("SHUTDOWN_TIMEOUT", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds the process logger
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
