package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"figctx"
	"figctx/internal/adapters/memory"
	"figctx/internal/adapters/redis"
	"figctx/internal/config"
	"figctx/internal/logging"
	"figctx/internal/metrics"
	"figctx/pkg/figma"
)

// applyFlags lets command-line flags override environment config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("figma-api-key") {
		cfg.FigmaToken, _ = cmd.Flags().GetString("figma-api-key")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
}

// newLogger builds the application logger from config.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// buildService assembles the Figma client, the configured cache, and
// the service. The returned closer releases cache connections and may
// be nil.
func buildService(cfg *config.Config, logger *slog.Logger) (*figctx.Service, func() error, error) {
	clientOpts := []figma.Option{
		figma.WithLogger(logger),
		figma.WithHTTPClient(&http.Client{
			Timeout:   30 * time.Second,
			Transport: metrics.InstrumentTransport(nil),
		}),
	}

	var closer func() error
	switch cfg.CacheBackend {
	case "memory":
		clientOpts = append(clientOpts, figma.WithCache(memory.New(memory.WithTTL(cfg.CacheTTL))))
	case "redis":
		cache := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redis.WithTTL(cfg.CacheTTL),
			redis.WithLogger(logger),
		)
		clientOpts = append(clientOpts, figma.WithCache(cache))
		closer = cache.Close
	case "off":
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	client := figma.NewClient(cfg.FigmaToken, clientOpts...)
	svc := figctx.New(client, figctx.WithLogger(logger))
	return svc, closer, nil
}
