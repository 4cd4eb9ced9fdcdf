package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Currency       string `yaml:"currency"`
	ShippingAmount int64  `yaml:"shipping_amount"`

	QuoteConcurrency int `yaml:"quote_concurrency"`
}

// Load collects configuration from the environment with defaults. When
// CONFIG_FILE points at a YAML file, its values are applied first and the
// environment overrides them.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:           "dev",
		LogLevel:         "info",
		HTTPPort:         8080,
		ShutdownTimeout:  10 * time.Second,
		Currency:         "BRL",
		ShippingAmount:   0,
		QuoteConcurrency: 10,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.AppEnv = getenv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.HTTPPort = atoienv("HTTP_PORT", cfg.HTTPPort)
	cfg.ShutdownTimeout = durenvs("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.Currency = getenv("CURRENCY", cfg.Currency)
	cfg.ShippingAmount = int64(atoienv("SHIPPING_AMOUNT", int(cfg.ShippingAmount)))
	cfg.QuoteConcurrency = atoienv("QUOTE_CONCURRENCY", cfg.QuoteConcurrency)

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return time.Duration(sec) * time.Second
}
