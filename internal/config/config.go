// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Config holds everything the server and CLI need to run. Flag
// overrides are applied after Load and before Validate.
type Config struct {
	FigmaToken string `validate:"required"`

	Transport string `validate:"oneof=stdio sse"`
	Port      int    `validate:"gt=0,lte=65535"`

	CacheBackend  string `validate:"oneof=off memory redis"`
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string `validate:"omitempty,oneof=debug info warn error"`
}

// envNames maps struct fields to the variables users actually set, so
// validation errors point at the right knob.
var envNames = map[string]string{
	"FigmaToken":   "FIGMA_API_KEY",
	"Transport":    "FIGCTX_TRANSPORT",
	"Port":         "PORT",
	"CacheBackend": "CACHE_BACKEND",
	"LogLevel":     "LOG_LEVEL",
}

// Load reads configuration from the environment. A missing .env file
// is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		FigmaToken:    os.Getenv("FIGMA_API_KEY"),
		Transport:     getenv("FIGCTX_TRANSPORT", "stdio"),
		Port:          getenvInt("PORT", 3333),
		CacheBackend:  getenv("CACHE_BACKEND", "off"),
		CacheTTL:      getenvDuration("CACHE_TTL", 5*time.Minute),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		name := envNames[e.Field()]
		if name == "" {
			name = e.Field()
		}
		switch e.Tag() {
		case "required":
			return fmt.Errorf("config: %s is required", name)
		case "oneof":
			return fmt.Errorf("config: %s must be one of: %s", name, e.Param())
		default:
			return fmt.Errorf("config: %s is invalid", name)
		}
	}
	return fmt.Errorf("config: %w", err)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
