package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"bank-marketing-service/internal/core/domain"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ModelConfig struct {
	Locator           string
	TargetDir         string
	ForceResolve      bool
	DecisionThreshold float64
	FetchTimeout      time.Duration
	FetchMaxAttempts  int
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("MODEL_URI", "")
	v.SetDefault("MODEL_DIR", "model")
	v.SetDefault("MODEL_FORCE_RESOLVE", false)
	v.SetDefault("DECISION_THRESHOLD", 0.5)
	v.SetDefault("FETCH_TIMEOUT", "60s")
	v.SetDefault("FETCH_MAX_ATTEMPTS", 3)
	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "bank_marketing")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	fetchTimeout, err := time.ParseDuration(v.GetString("FETCH_TIMEOUT"))
	if err != nil {
		fetchTimeout = 60 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Model: ModelConfig{
			Locator:           v.GetString("MODEL_URI"),
			TargetDir:         v.GetString("MODEL_DIR"),
			ForceResolve:      v.GetBool("MODEL_FORCE_RESOLVE"),
			DecisionThreshold: v.GetFloat64("DECISION_THRESHOLD"),
			FetchTimeout:      fetchTimeout,
			FetchMaxAttempts:  v.GetInt("FETCH_MAX_ATTEMPTS"),
		},
		Database: DatabaseConfig{
			Enabled:  v.GetBool("DATABASE_ENABLED"),
			Host:     v.GetString("DATABASE_HOST"),
			Port:     v.GetInt("DATABASE_PORT"),
			User:     v.GetString("DATABASE_USER"),
			Password: v.GetString("DATABASE_PASSWORD"),
			Name:     v.GetString("DATABASE_NAME"),
			SSLMode:  v.GetString("DATABASE_SSLMODE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	// Fail fast: a process without a locator can never become ready.
	if cfg.Model.Locator == "" {
		return nil, domain.ErrMissingModelLocator
	}
	if cfg.Model.DecisionThreshold < 0 || cfg.Model.DecisionThreshold > 1 {
		return nil, domain.ErrInvalidThreshold
	}

	return cfg, nil
}
