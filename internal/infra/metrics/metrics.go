// Package metrics exports lookup metrics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"exam_results_bot/internal/domain/result"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "results"

// Prometheus records lookup metrics on its own registry.
type Prometheus struct {
	registry       *prometheus.Registry
	lookups        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	outcomes       *prometheus.CounterVec
	sourceUp       *prometheus.GaugeVec
}

// NewPrometheus creates the collectors and registers them with Go runtime and
// process collectors on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Phone lookups by final status.",
		}, []string{"status"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time to resolve and aggregate one lookup.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subject_outcomes_total",
			Help:      "Resolved subject outcomes by subject and kind.",
		}, []string{"subject", "outcome"}),
		sourceUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "source_up",
			Help:      "1 if the subject source was readable at the last probe.",
		}, []string{"subject"}),
	}
	p.registry.MustRegister(
		p.lookups,
		p.lookupDuration,
		p.outcomes,
		p.sourceUp,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveLookup(status string, elapsed time.Duration) {
	p.lookups.WithLabelValues(status).Inc()
	p.lookupDuration.Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveSubject(subjectID string, kind result.OutcomeKind) {
	p.outcomes.WithLabelValues(subjectID, string(kind)).Inc()
}

func (p *Prometheus) SetSourceUp(subjectID string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	p.sourceUp.WithLabelValues(subjectID).Set(v)
}

// Registry exposes the registry for tests and custom handlers.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
