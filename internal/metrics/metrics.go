// Package metrics exposes the Prometheus collectors shared across the
// server: tool handler counters, Figma round-trip counters, and cache
// lookup counters.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ToolCalls counts MCP tool invocations by tool name and outcome
	// ("ok" or "error").
	ToolCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "figctx",
		Name:      "tool_calls_total",
		Help:      "MCP tool invocations by tool and status.",
	}, []string{"tool", "status"})

	// ToolDuration observes tool handler latency.
	ToolDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "figctx",
		Name:      "tool_duration_seconds",
		Help:      "MCP tool handler latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tool"})

	// UpstreamRequests counts Figma API round trips.
	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "figctx",
		Subsystem: "figma",
		Name:      "requests_total",
		Help:      "Figma API requests by status code and method.",
	}, []string{"code", "method"})

	// CacheEvents counts cache lookups by result ("hit" or "miss").
	CacheEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "figctx",
		Subsystem: "cache",
		Name:      "events_total",
		Help:      "Cache lookups by result.",
	}, []string{"result"})
)

var registerOnce sync.Once

// Register installs the collectors on the default registry. Calling it
// more than once is safe.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ToolCalls, ToolDuration, UpstreamRequests, CacheEvents)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// InstrumentTransport wraps a round tripper so Figma API calls land in
// UpstreamRequests. A nil next uses http.DefaultTransport.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(UpstreamRequests, next)
}

// CacheHit records a cache hit.
func CacheHit() { CacheEvents.WithLabelValues("hit").Inc() }

// CacheMiss records a cache miss.
func CacheMiss() { CacheEvents.WithLabelValues("miss").Inc() }
