// SPDX-License-Identifier: MIT
// Package: spectral
//
// File: options.go
// Role: Functional options for New. Each option validates its argument and
//       returns ErrInvalidOption instead of panicking, so configuration loaded
//       from files surfaces as an error.

package spectral

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/metrics"
)

const (
	// DefaultDimensions is the feature length when WithDimensions is not given.
	DefaultDimensions = 32

	// DefaultSeed seeds the default Lanczos solver.
	DefaultSeed uint64 = 42

	// DefaultSearchBreadthFactor multiplies d to obtain the solver search breadth.
	DefaultSearchBreadthFactor = 10

	// DefaultWorkers keeps Fit sequential.
	DefaultWorkers = 1
)

// Option configures an Embedder.
type Option func(*Embedder) error

// WithDimensions sets the feature length d ≥ 1.
func WithDimensions(d int) Option {
	return func(e *Embedder) error {
		if d < 1 {
			return fmt.Errorf("WithDimensions(%d): %w", d, ErrInvalidOption)
		}
		e.dimensions = d
		return nil
	}
}

// WithSeed seeds the default Lanczos solver. Ignored when WithSolver is used.
func WithSeed(seed uint64) Option {
	return func(e *Embedder) error {
		e.seed = seed
		return nil
	}
}

// WithSolver replaces the default Lanczos solver.
// The solver must be safe for concurrent use when workers > 1.
func WithSolver(s eigen.Solver) Option {
	return func(e *Embedder) error {
		if s == nil {
			return fmt.Errorf("WithSolver(nil): %w", ErrInvalidOption)
		}
		e.solver = s
		return nil
	}
}

// WithSearchBreadthFactor sets k in searchBreadth = k·d.
func WithSearchBreadthFactor(k int) Option {
	return func(e *Embedder) error {
		if k < 1 {
			return fmt.Errorf("WithSearchBreadthFactor(%d): %w", k, ErrInvalidOption)
		}
		e.breadthFactor = k
		return nil
	}
}

// WithWorkers bounds the number of graphs processed concurrently by Fit.
func WithWorkers(w int) Option {
	return func(e *Embedder) error {
		if w < 1 {
			return fmt.Errorf("WithWorkers(%d): %w", w, ErrInvalidOption)
		}
		e.workers = w
		return nil
	}
}

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Embedder) error {
		if l == nil {
			return fmt.Errorf("WithLogger(nil): %w", ErrInvalidOption)
		}
		e.logger = l
		return nil
	}
}

// WithMetrics attaches a Prometheus collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Embedder) error {
		if c == nil {
			return fmt.Errorf("WithMetrics(nil): %w", ErrInvalidOption)
		}
		e.metrics = c
		return nil
	}
}
