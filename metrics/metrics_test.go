package metrics_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvspectra/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counts(t *testing.T) {
	c := metrics.New("")
	c.ObserveFit(nil, time.Millisecond)
	c.ObserveFit(errors.New("boom"), time.Millisecond)
	c.ObserveGraph(true, time.Microsecond)
	c.ObserveGraph(false, time.Microsecond)
	c.ObserveSolverFailure()

	require.Equal(t, 1.0, testutil.ToFloat64(c.FitsTotal.WithLabelValues(metrics.OutcomeSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.FitsTotal.WithLabelValues(metrics.OutcomeFailure)))
	require.Equal(t, 2.0, testutil.ToFloat64(c.GraphsEmbedded))
	require.Equal(t, 1.0, testutil.ToFloat64(c.GraphsPadded))
	require.Equal(t, 1.0, testutil.ToFloat64(c.SolverFailures))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := metrics.New("x"), metrics.New("x")
	a.ObserveSolverFailure()
	require.Equal(t, 0.0, testutil.ToFloat64(b.SolverFailures))
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New("lvspectra")
	c.ObserveGraph(false, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "lvspectra_graphs_embedded_total 1"))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *metrics.Collector
	require.NotPanics(t, func() {
		c.ObserveFit(nil, 0)
		c.ObserveGraph(true, 0)
		c.ObserveSolverFailure()
	})
	require.Nil(t, c.Registry())
}
