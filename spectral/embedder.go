// SPDX-License-Identifier: MIT
// Package: spectral
//
// File: embedder.go
// Role: Batch embedder: one spectral feature row per graph, in input order.
// Behavior highlights:
//   - The whole collection is validated before any eigenvalue work.
//   - All-or-nothing: a failing Fit leaves the previously fitted table (if any)
//     untouched; a successful Fit swaps the new table in atomically.
//   - workers > 1 fans graphs out over an errgroup; rows are written by index,
//     so output order never depends on scheduling.
//   - Context cancellation is honored between graphs.
// Concurrency:
//   - Fit calls are serialized; GetEmbedding, State and Dimensions take a read
//     lock and may run while a Fit is in flight.

package spectral

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/metrics"
)

// State is the embedder lifecycle.
type State uint8

const (
	Uninitialized State = iota
	Fitting
	Fitted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Fitting:
		return "fitting"
	case Fitted:
		return "fitted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Embedder maps a collection of graphs to an m×d embedding table.
type Embedder struct {
	dimensions    int
	seed          uint64
	breadthFactor int
	workers       int
	solver        eigen.Solver
	logger        *slog.Logger
	metrics       *metrics.Collector

	fitMu sync.Mutex // serializes Fit

	mu    sync.RWMutex
	state State
	table *mat.Dense
}

// New builds an Embedder. Without options it embeds into DefaultDimensions
// using a Lanczos solver seeded with DefaultSeed.
func New(opts ...Option) (*Embedder, error) {
	e := &Embedder{
		dimensions:    DefaultDimensions,
		seed:          DefaultSeed,
		breadthFactor: DefaultSearchBreadthFactor,
		workers:       DefaultWorkers,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.solver == nil {
		e.solver = eigen.NewLanczos(e.seed)
	}

	return e, nil
}

// Dimensions returns d.
func (e *Embedder) Dimensions() int { return e.dimensions }

// State returns the current lifecycle state.
func (e *Embedder) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Fitted reports whether a table is available to GetEmbedding.
func (e *Embedder) Fitted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table != nil
}

// Fit computes one row per graph and replaces the stored table on success.
//
// Errors:
//   - ErrEmptyCollection, ErrNilGraph, ErrInvalidGraphSize, core.ErrNonCanonicalIDs
//     from validation (no graph is processed).
//   - ErrSolverFailure from the first failing graph.
//   - ctx.Err() if cancelled between graphs.
func (e *Embedder) Fit(ctx context.Context, graphs []*core.Graph) (err error) {
	e.fitMu.Lock()
	defer e.fitMu.Unlock()

	runID := uuid.NewString()
	log := e.logger.With("run_id", runID)
	started := time.Now()

	e.mu.Lock()
	prev := e.state
	e.state = Fitting
	e.mu.Unlock()

	defer func() {
		e.metrics.ObserveFit(err, time.Since(started))
		if err != nil {
			e.mu.Lock()
			e.state = prev
			e.mu.Unlock()
			log.Warn("spectral: fit failed", "error", err)
		}
	}()

	if err = validateCollection(graphs); err != nil {
		return err
	}
	log.Info("spectral: fit started",
		"graphs", len(graphs), "dimensions", e.dimensions, "workers", e.workers)

	rows := make([]Vector, len(graphs))
	x := NewExtractor(e.solver, e.breadthFactor)
	if e.workers == 1 {
		for i, g := range graphs {
			if err = ctx.Err(); err != nil {
				return fmt.Errorf("Fit: %w", err)
			}
			if rows[i], err = e.embedOne(log, x, i, g); err != nil {
				return err
			}
		}
	} else {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(e.workers)
		for i, g := range graphs {
			eg.Go(func() error {
				if cerr := gctx.Err(); cerr != nil {
					return fmt.Errorf("Fit: %w", cerr)
				}
				v, gerr := e.embedOne(log, x, i, g)
				rows[i] = v
				return gerr
			})
		}
		if err = eg.Wait(); err != nil {
			return err
		}
		// errgroup cancels gctx only on failure; a parent cancel during the
		// last batch must still fail the fit.
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("Fit: %w", err)
		}
	}

	table := mat.NewDense(len(rows), e.dimensions, nil)
	for i, r := range rows {
		table.SetRow(i, r)
	}

	e.mu.Lock()
	e.table = table
	e.state = Fitted
	e.mu.Unlock()

	log.Info("spectral: fit finished", "graphs", len(graphs), "elapsed", time.Since(started))
	return nil
}

func (e *Embedder) embedOne(log *slog.Logger, x *Extractor, i int, g *core.Graph) (Vector, error) {
	t0 := time.Now()
	n := g.VertexCount()
	v, err := x.ComputeFeature(g, e.dimensions)
	if err != nil {
		if errors.Is(err, ErrSolverFailure) {
			e.metrics.ObserveSolverFailure()
		}
		return nil, fmt.Errorf("Fit: graph %d: %w", i, err)
	}
	padded := Padded(n, e.dimensions)
	e.metrics.ObserveGraph(padded, time.Since(t0))
	log.Debug("spectral: graph embedded", "graph", i, "nodes", n, "padded", padded)

	return v, nil
}

// validateCollection rejects the input before any graph is processed.
func validateCollection(graphs []*core.Graph) error {
	if len(graphs) == 0 {
		return ErrEmptyCollection
	}
	for i, g := range graphs {
		if g == nil {
			return fmt.Errorf("Fit: graph %d: %w", i, ErrNilGraph)
		}
		if n := g.VertexCount(); n < 2 {
			return fmt.Errorf("Fit: graph %d: n=%d: %w", i, n, ErrInvalidGraphSize)
		}
		if _, err := g.CanonicalOrder(); err != nil {
			return fmt.Errorf("Fit: graph %d: %w", i, err)
		}
	}

	return nil
}

// GetEmbedding returns a copy of the last successfully fitted m×d table.
// Row i belongs to the i-th graph passed to Fit.
func (e *Embedder) GetEmbedding() (*mat.Dense, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.table == nil {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(e.table), nil
}
