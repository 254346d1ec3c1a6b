package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"figctx/internal/adapters/mcp"
	"figctx/internal/config"
	"figctx/internal/metrics"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts figctx as an MCP server so AI agents can pull Figma designs
into their context.

Supported transports:
- stdio (default): JSON-RPC over standard input/output. Ideal for local process integration.
- sse: Server-Sent Events over HTTP, with /metrics and /healthz alongside. Ideal for remote agents.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		applyFlags(cmd, cfg)
		if cmd.Flags().Changed("transport") {
			cfg.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("cache") {
			cfg.CacheBackend, _ = cmd.Flags().GetString("cache")
		}

		if err := cfg.Validate(); err != nil {
			log.Fatalf("Error: %v", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		slog.SetDefault(logger)

		svc, closer, err := buildService(cfg, logger)
		if err != nil {
			log.Fatalf("Error initializing figctx: %v", err)
		}
		if closer != nil {
			defer closer()
		}

		srv := mcp.NewServer(svc, mcp.WithLogger(logger))

		switch cfg.Transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on stdout
			log.SetOutput(os.Stderr)
			logger.Info("starting MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			metrics.Register()
			logger.Info("starting MCP server (SSE)", "port", cfg.Port)

			// Cancel on interrupt so in-flight requests drain
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.Port); err != nil {
				if err != http.ErrServerClosed {
					logger.Error("MCP server execution failed", "error", err)
					os.Exit(1)
				}
			}
			logger.Info("MCP server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "", "Transport protocol: 'stdio' or 'sse' (overrides FIGCTX_TRANSPORT)")
	serveCmd.Flags().Int("port", 0, "Port to listen on, SSE only (overrides PORT)")
	serveCmd.Flags().String("cache", "", "Response cache backend: 'off', 'memory' or 'redis' (overrides CACHE_BACKEND)")
}
