package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cyberhub_http_requests_total", Help: "HTTP requests by route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cyberhub_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	AuthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cyberhub_auth_events_total", Help: "Login, register and logout outcomes"},
		[]string{"action", "outcome"},
	)
	ContentMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cyberhub_content_mutations_total", Help: "Successful content writes by kind"},
		[]string{"kind", "op"},
	)
)

// Register adds the collectors to the default registry. Call it once from main.
func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, AuthEvents, ContentMutations)
}
