package metrics

import "github.com/prometheus/client_golang/prometheus"

// Tool and backend Prometheus metrics.
var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vecmcp",
			Name:      "tool_calls_total",
			Help:      "Total number of MCP tool invocations",
		},
		[]string{"tool", "outcome"}, // outcome: "success" or the condition kind
	)

	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vecmcp",
			Name:      "tool_call_duration_seconds",
			Help:      "MCP tool invocation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"tool"},
	)

	ResponseChars = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vecmcp",
			Name:      "response_chars",
			Help:      "Rendered tool response size in characters",
			Buckets:   []float64{250, 1000, 5000, 10000, 25000, 50000},
		},
		[]string{"tool", "format"},
	)

	ResultsTruncatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vecmcp",
			Name:      "results_truncated_total",
			Help:      "Search responses that dropped results to fit the character limit",
		},
	)

	BackendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vecmcp",
			Name:      "backend_requests_total",
			Help:      "Total LiteLLM backend requests",
		},
		[]string{"endpoint", "status"}, // status: HTTP code or "transport_error"
	)

	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vecmcp",
			Name:      "backend_request_duration_seconds",
			Help:      "LiteLLM backend request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vecmcp",
			Name:      "catalog_cache_total",
			Help:      "Catalog cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registered bool

// Register registers tool and backend metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolCallDuration)
	prometheus.MustRegister(ResponseChars)
	prometheus.MustRegister(ResultsTruncatedTotal)
	prometheus.MustRegister(BackendRequestsTotal)
	prometheus.MustRegister(BackendRequestDuration)
	prometheus.MustRegister(CatalogCacheTotal)
	registered = true
}
