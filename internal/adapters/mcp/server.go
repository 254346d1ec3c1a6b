// Package mcp exposes the figctx service as a Model Context Protocol
// server over stdio or SSE.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figctx"
	"figctx/internal/logging"
	"figctx/internal/metrics"
)

const instructions = `Use get_figma_data to read the layout, colors, and
typography of a Figma file or node as compact YAML. When the design
contains icons, photos, or other assets you need as files, follow up
with download_figma_images.`

// Service is the slice of figctx the tools need.
type Service interface {
	DesignYAML(ctx context.Context, fileKey, nodeID string, depth int) (string, error)
	DownloadImages(ctx context.Context, fileKey, dir string, reqs []figctx.ImageRequest, opts figctx.DownloadOptions) ([]string, error)
}

// Server wraps the figctx Service and exposes it as an MCP server.
type Server struct {
	svc       Service
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates an MCP server for the given service.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer("figctx", strings.TrimSpace(figctx.Version),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	s.registerTools()

	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, alongside
// Prometheus metrics and a health check. It blocks until ctx is
// canceled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	r.Handle("/message", corsMiddleware(sseServer.MessageHandler()))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	getDataTool := mcp.NewTool("get_figma_data",
		mcp.WithDescription("Fetch a Figma file or specific nodes and return a simplified YAML view of the layout: node tree, colors, typography, auto-layout, and a shared style table."),
		mcp.WithString("fileKey",
			mcp.Required(),
			mcp.Description("The file key, from figma.com/(file|design)/<fileKey>/..."),
		),
		mcp.WithString("nodeId",
			mcp.Description("Node to fetch, e.g. 1:2 (the node-id URL param, 1-2, also works). Comma-separate multiple ids. Omit for the whole file."),
		),
		mcp.WithNumber("depth",
			mcp.Description("How many levels deep to traverse. Omit for the full tree."),
		),
	)
	s.mcpServer.AddTool(getDataTool, s.instrument("get_figma_data", s.handleGetData))

	downloadTool := mcp.NewTool("download_figma_images",
		mcp.WithDescription("Export nodes as SVG or PNG files (or fetch their image fills) and save them to a local directory."),
		mcp.WithString("fileKey",
			mcp.Required(),
			mcp.Description("The file key the nodes belong to."),
		),
		mcp.WithArray("nodes",
			mcp.Required(),
			mcp.Description("Nodes to export. Each entry needs nodeId and fileName; image fills also set imageRef."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nodeId": map[string]any{
						"type":        "string",
						"description": "Node id, e.g. 1:2.",
					},
					"imageRef": map[string]any{
						"type":        "string",
						"description": "Set when the node has an image fill; downloads the fill instead of rendering the node.",
					},
					"fileName": map[string]any{
						"type":        "string",
						"description": "File name to save under, ending in .svg or .png.",
					},
				},
				"required": []string{"nodeId", "fileName"},
			}),
		),
		mcp.WithString("localPath",
			mcp.Required(),
			mcp.Description("Absolute directory to save into. Created if missing."),
		),
		mcp.WithNumber("pngScale",
			mcp.Description("Export scale for PNG renders. Defaults to 2."),
		),
	)
	s.mcpServer.AddTool(downloadTool, s.instrument("download_figma_images", s.handleDownloadImages))
}

// instrument wraps a tool handler with call counters, latency, and a
// debug log line.
func (s *Server) instrument(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, request)

		status := "ok"
		if err != nil || (result != nil && result.IsError) {
			status = "error"
		}
		metrics.ToolCalls.WithLabelValues(name, status).Inc()
		metrics.ToolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		s.logger.Debug("tool call", "tool", name, "status", status, "took", time.Since(start))

		return result, err
	}
}

func (s *Server) handleGetData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getDataArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.FileKey == "" {
		return mcp.NewToolResultError("fileKey is required"), nil
	}

	s.logger.Info("fetching design", "file", args.FileKey, "node", args.NodeID, "depth", args.Depth)

	out, err := s.svc.DesignYAML(ctx, args.FileKey, args.NodeID, args.Depth)
	if err != nil {
		s.logger.Error("get_figma_data failed", "file", args.FileKey, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleDownloadImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args downloadArgs
	if err := decodeArgs(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.FileKey == "" {
		return mcp.NewToolResultError("fileKey is required"), nil
	}
	if args.LocalPath == "" {
		return mcp.NewToolResultError("localPath is required"), nil
	}
	if len(args.Nodes) == 0 {
		return mcp.NewToolResultError("nodes must not be empty"), nil
	}

	reqs := make([]figctx.ImageRequest, 0, len(args.Nodes))
	for _, n := range args.Nodes {
		if n.NodeID == "" || n.FileName == "" {
			return mcp.NewToolResultError("every node needs nodeId and fileName"), nil
		}
		reqs = append(reqs, figctx.ImageRequest{
			NodeID:   n.NodeID,
			ImageRef: n.ImageRef,
			FileName: n.FileName,
		})
	}

	s.logger.Info("downloading images", "file", args.FileKey, "count", len(reqs), "dir", args.LocalPath)

	paths, err := s.svc.DownloadImages(ctx, args.FileKey, args.LocalPath, reqs, figctx.DownloadOptions{
		PNGScale: args.PNGScale,
	})
	if err != nil {
		s.logger.Error("download_figma_images failed", "file", args.FileKey, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Downloaded %d images:\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return mcp.NewToolResultText(b.String()), nil
}
