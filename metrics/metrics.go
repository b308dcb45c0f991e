package metrics

import (
	"net/http"

	"github.com/kova98/redditthings/things"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Decode outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics records how responses fared in the decoder. Each instance owns its
// registry so tests do not collide with the default one.
type Metrics struct {
	registry     *prometheus.Registry
	decodes      *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	pageSize     *prometheus.HistogramVec
	fetchSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redditthings_decodes_total",
			Help: "Responses decoded, by schema and outcome.",
		}, []string{"schema", "outcome"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redditthings_decode_errors_total",
			Help: "Decode failures, by schema and innermost error kind.",
		}, []string{"schema", "kind"}),
		pageSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "redditthings_listing_children",
			Help:    "Children per decoded listing page.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}, []string{"schema"}),
		fetchSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "redditthings_fetch_seconds",
			Help:    "Time spent fetching a listing page.",
			Buckets: prometheus.DefBuckets,
		}, []string{"schema"}),
	}

	m.registry.MustRegister(m.decodes, m.decodeErrors, m.pageSize, m.fetchSeconds)
	return m
}

// ObserveDecode records the outcome of one decode call.
func (m *Metrics) ObserveDecode(schema string, err error) {
	if err == nil {
		m.decodes.WithLabelValues(schema, OutcomeOK).Inc()
		return
	}

	m.decodes.WithLabelValues(schema, OutcomeError).Inc()
	m.decodeErrors.WithLabelValues(schema, ErrorKind(err)).Inc()
}

func (m *Metrics) ObservePage(schema string, children int) {
	m.pageSize.WithLabelValues(schema).Observe(float64(children))
}

func (m *Metrics) ObserveFetch(schema string, seconds float64) {
	m.fetchSeconds.WithLabelValues(schema).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ErrorKind labels err by the kind of its innermost *things.DecodeError, or
// "other" when err did not come from the decoder.
func ErrorKind(err error) string {
	if cause := things.Cause(err); cause != nil {
		return string(cause.Kind)
	}
	return "other"
}
