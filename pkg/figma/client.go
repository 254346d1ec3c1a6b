package figma

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.figma.com"

// Cache stores raw upstream responses under opaque keys. Lookups that
// fail must report a miss so the upstream call can proceed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Client talks to the Figma REST API using a personal access token.
type Client struct {
	token      string
	baseURL    string
	httpc      *http.Client
	cache      Cache
	logger     *slog.Logger
	cacheScope string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithCache enables read-through caching of document responses.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Figma API client.
func NewClient(token string, opts ...Option) *Client {
	sum := sha256.Sum256([]byte(token))
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpc:      &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		cacheScope: hex.EncodeToString(sum[:8]) + ":",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// File fetches a whole file document. depth > 0 limits how many levels
// of the tree the API returns.
func (c *Client) File(ctx context.Context, key string, depth int) (*FileResponse, error) {
	q := url.Values{}
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}

	var out FileResponse
	if err := c.get(ctx, "/v1/files/"+key, q, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Nodes fetches the subtrees rooted at the given node ids.
func (c *Client) Nodes(ctx context.Context, key string, ids []string, depth int) (*NodesResponse, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}

	var out NodesResponse
	if err := c.get(ctx, "/v1/files/"+key+"/nodes", q, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Renders asks the API to rasterize the given nodes and returns a map
// of node id to image URL. Render URLs are short-lived presigned links,
// so they are never cached. Nodes the renderer failed on map to "".
func (c *Client) Renders(ctx context.Context, key string, ids []string, format string, scale float64) (map[string]string, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("format", format)
	if scale > 0 {
		q.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	}

	var out renderResponse
	if err := c.get(ctx, "/v1/images/"+key, q, false, &out); err != nil {
		return nil, err
	}
	if out.Err != "" {
		return nil, fmt.Errorf("render failed: %s", out.Err)
	}
	return out.Images, nil
}

// ImageFills returns the file's image fill URLs keyed by image ref.
// Like render URLs these expire, so they are never cached.
func (c *Client) ImageFills(ctx context.Context, key string) (map[string]string, error) {
	var out imageFillsResponse
	if err := c.get(ctx, "/v1/files/"+key+"/images", nil, false, &out); err != nil {
		return nil, err
	}
	return out.Meta.Images, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
// Cacheable responses are served from and written to the cache, keyed
// by a token digest plus the full request path; entries are never
// shared across tokens.
func (c *Client) get(ctx context.Context, path string, query url.Values, cacheable bool, out any) error {
	endpoint := path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	cacheKey := c.cacheScope + endpoint

	if cacheable && c.cache != nil {
		if data, ok := c.cache.Get(ctx, cacheKey); ok {
			c.logger.Debug("serving cached response", "path", path)
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode cached response: %w", err)
			}
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("figma request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("figma request", "path", path, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if cacheable && c.cache != nil {
		c.cache.Set(ctx, cacheKey, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
