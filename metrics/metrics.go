// Package metrics exposes Prometheus collectors for the spectral embedder.
//
// Each Collector owns a private registry, so several embedders (or tests) can
// coexist without duplicate-registration panics on the default registry.
// All methods are safe on a nil *Collector and then do nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lvspectra"

// Fit outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector holds all embedder metrics.
type Collector struct {
	FitsTotal      *prometheus.CounterVec
	FitLatency     prometheus.Histogram
	GraphsEmbedded prometheus.Counter
	GraphsPadded   prometheus.Counter
	SolverFailures prometheus.Counter
	GraphLatency   prometheus.Histogram
	registry       *prometheus.Registry
}

// New creates a Collector registered on a fresh registry. An empty namespace
// falls back to DefaultNamespace.
func New(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		FitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fits_total",
			Help:      "Total Fit calls by outcome",
		}, []string{"outcome"}),
		FitLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_duration_seconds",
			Help:      "Wall time of whole Fit calls",
			Buckets:   prometheus.DefBuckets,
		}),
		GraphsEmbedded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_embedded_total",
			Help:      "Graphs whose spectral feature was computed",
		}),
		GraphsPadded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_padded_total",
			Help:      "Graphs with at most as many nodes as dimensions (zero-padded)",
		}),
		SolverFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_failures_total",
			Help:      "Eigenvalue computations that failed",
		}),
		GraphLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_duration_seconds",
			Help:      "Per-graph spectral feature latency",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}),
		registry: registry,
	}
}

// Registry returns the private registry backing c.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveFit records one Fit call.
func (c *Collector) ObserveFit(err error, d time.Duration) {
	if c == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	c.FitsTotal.WithLabelValues(outcome).Inc()
	c.FitLatency.Observe(d.Seconds())
}

// ObserveGraph records one successful per-graph computation.
func (c *Collector) ObserveGraph(padded bool, d time.Duration) {
	if c == nil {
		return
	}
	c.GraphsEmbedded.Inc()
	if padded {
		c.GraphsPadded.Inc()
	}
	c.GraphLatency.Observe(d.Seconds())
}

// ObserveSolverFailure records one failed eigenvalue computation.
func (c *Collector) ObserveSolverFailure() {
	if c == nil {
		return
	}
	c.SolverFailures.Inc()
}
