// Package metrics exposes prometheus counters for signup submissions and
// HTTP requests on a private registry.
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

const namespace = "donatehub"

const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	submissions     *prometheus.CounterVec
	fieldErrors     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "volunteering_submissions_total",
			Help:      "Volunteering signup submissions by category and outcome",
		}, []string{"category", "outcome"}),

		fieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "volunteering_field_errors_total",
			Help:      "Field validation errors returned to the signup dialog",
		}, []string{"field"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Submission(category int, outcome string) {
	m.submissions.WithLabelValues(strconv.Itoa(category), outcome).Inc()
}

// Rejected records an invalid submission and one error per offending field.
func (m *Metrics) Rejected(category int, fields []string) {
	m.Submission(category, OutcomeInvalid)
	for _, field := range fields {
		m.fieldErrors.WithLabelValues(field).Inc()
	}
}

func (m *Metrics) ObserveRequest(method string, status int, took time.Duration) {
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(took.Seconds())
}
