package figctx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"figctx/internal/logging"
	"figctx/pkg/figma"
	"figctx/pkg/simplify"
)

// Service is the high-level entry point for the figctx library. It
// ties the Figma client to the simplification engine and the image
// download pipeline; the MCP server and the CLI are both built on it.
type Service struct {
	client      *figma.Client
	httpc       *http.Client
	logger      *slog.Logger
	concurrency int
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithDownloadClient replaces the HTTP client used to fetch rendered
// assets. Render downloads bypass the API client because the URLs are
// presigned S3 links.
func WithDownloadClient(httpc *http.Client) Option {
	return func(s *Service) {
		s.httpc = httpc
	}
}

// WithConcurrency caps how many images download in parallel.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// New creates a Service on top of an initialized Figma client.
func New(client *figma.Client, opts ...Option) *Service {
	svc := &Service{
		client:      client,
		httpc:       &http.Client{Timeout: 60 * time.Second},
		logger:      logging.NewNop(),
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// Design fetches a file and simplifies it. A non-empty nodeID restricts
// the fetch to those subtrees (comma-separated ids are accepted, in
// either "1:2" or "1-2" form). depth > 0 limits traversal; 0 walks the
// whole tree.
func (s *Service) Design(ctx context.Context, fileKey, nodeID string, depth int) (*simplify.Design, error) {
	var (
		design *simplify.Design
		err    error
	)

	if nodeID != "" {
		resp, ferr := s.client.Nodes(ctx, fileKey, splitNodeIDs(nodeID), depth)
		if ferr != nil {
			return nil, ferr
		}
		design, err = simplify.ParseNodes(resp, depth)
	} else {
		resp, ferr := s.client.File(ctx, fileKey, depth)
		if ferr != nil {
			return nil, ferr
		}
		design, err = simplify.ParseFile(resp, depth)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("design simplified",
		"file", fileKey,
		"roots", len(design.Nodes),
		"styles", len(design.GlobalVars.Styles))

	return design, nil
}

// DesignYAML fetches and simplifies a design and serializes it as YAML,
// the form handed to model contexts.
func (s *Service) DesignYAML(ctx context.Context, fileKey, nodeID string, depth int) (string, error) {
	design, err := s.Design(ctx, fileKey, nodeID, depth)
	if err != nil {
		return "", err
	}

	doc, err := design.Document()
	if err != nil {
		return "", err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(out), nil
}

// splitNodeIDs parses a comma-separated id list, accepting the "1-2"
// form Figma URLs use.
func splitNodeIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ids = append(ids, strings.ReplaceAll(p, "-", ":"))
	}
	return ids
}
