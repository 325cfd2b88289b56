// Package metrics métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
)

var _ ports.MetricsRecorder = (*Recorder)(nil)

// Recorder implementa ports.MetricsRecorder y las métricas HTTP sobre un registro propio.
type Recorder struct {
	registry *prometheus.Registry

	created           *prometheus.CounterVec
	resolved          *prometheus.CounterVec
	suggestions       *prometheus.CounterVec
	suggestionLatency prometheus.Histogram
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

// New crea y registra las métricas. Incluye los collectors de proceso y runtime de Go.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "litigios_occurrences_created_total",
				Help: "Ocorrências registradas por loja.",
			},
			[]string{"store"},
		),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "litigios_occurrences_resolved_total",
				Help: "Decisiones del CD por resultado.",
			},
			[]string{"decision"},
		),
		suggestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "litigios_suggestions_total",
				Help: "Llamadas al servicio de IA por resultado (ok, fallback).",
			},
			[]string{"outcome"},
		),
		suggestionLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "litigios_suggestion_latency_seconds",
				Help:    "Latencia del servicio de IA en segundos.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "litigios_http_requests_total",
				Help: "Peticiones HTTP por método, ruta y status.",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "litigios_http_request_duration_seconds",
				Help:    "Latencia HTTP en segundos.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.created, r.resolved, r.suggestions, r.suggestionLatency, r.httpRequests, r.httpLatency,
	)
	return r
}

func (r *Recorder) OccurrenceCreated(store string) {
	r.created.WithLabelValues(store).Inc()
}

func (r *Recorder) OccurrenceResolved(decision string) {
	r.resolved.WithLabelValues(decision).Inc()
}

func (r *Recorder) SuggestionCompleted(outcome string, elapsed time.Duration) {
	r.suggestions.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		r.suggestionLatency.Observe(elapsed.Seconds())
	}
}

// ObserveHTTP registra una petición. route es el patrón de la ruta, no el path con ids.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone el registro en formato de texto de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer acceso al registro (tests).
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
