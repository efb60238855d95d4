// Package metrics holds the Prometheus collectors of the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brkit"

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	DocumentChecks   *prometheus.CounterVec
	FormValidations  *prometheus.CounterVec
	FieldRejections  *prometheus.CounterVec
	RateLimited      prometheus.Counter
	RequestDurations *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process
// collectors, on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DocumentChecks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_checks_total",
			Help:      "Identifier checks by kind and result (valid or rejection reason).",
		}, []string{"kind", "result"}),
		FormValidations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_validations_total",
			Help:      "Form validation requests by outcome.",
		}, []string{"outcome"}),
		FieldRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_rejections_total",
			Help:      "Rejected form fields by field name.",
		}, []string{"field"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_rejections_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		RequestDurations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Document counts one identifier check. result is "valid" or a reason code.
func (m *Metrics) Document(kind, result string) {
	if m == nil {
		return
	}
	m.DocumentChecks.WithLabelValues(kind, result).Inc()
}

// Form counts one POST /v1/validate outcome and its rejected fields.
func (m *Metrics) Form(outcome string, rejected ...string) {
	if m == nil {
		return
	}
	m.FormValidations.WithLabelValues(outcome).Inc()
	for _, field := range rejected {
		m.FieldRejections.WithLabelValues(field).Inc()
	}
}

// Throttled counts one request rejected by the rate limiter.
func (m *Metrics) Throttled() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// Request observes a finished request.
func (m *Metrics) Request(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDurations.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}
