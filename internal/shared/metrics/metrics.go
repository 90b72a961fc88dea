package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Plan fetch results
const (
	PlanFetchSuccess  = "success"
	PlanFetchCacheHit = "cache_hit"
	PlanFetchFailure  = "failure"
	PlanFetchEmpty    = "empty"
)

// Metrics holds the assistant collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	chatRequests  *prometheus.CounterVec
	intents       *prometheus.CounterVec
	planFetches   *prometheus.CounterVec
	planFetchTime prometheus.Histogram
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "assistant"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat requests by response status.",
		}, []string{"status"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_total",
			Help:      "Classified intents.",
		}, []string{"intent"}),
		planFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_fetch_total",
			Help:      "Remote plan lookups by result.",
		}, []string{"result"}),
		planFetchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_fetch_duration_seconds",
			Help:      "Remote plan source latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		}),
	}

	m.registry.MustRegister(
		m.chatRequests,
		m.intents,
		m.planFetches,
		m.planFetchTime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveChatRequest(status string) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(intent).Inc()
}

func (m *Metrics) ObservePlanFetch(result string, seconds float64) {
	if m == nil {
		return
	}
	m.planFetches.WithLabelValues(result).Inc()
	if seconds > 0 {
		m.planFetchTime.Observe(seconds)
	}
}

// Handler exposes the registry in Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
