// SPDX-License-Identifier: MIT
// Package: lvspectra/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = decimalID ("0","1","2",...), the canonical spectral order
//   • rng      = nil (pure/deterministic unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import (
	"math/rand/v2"
	"strconv"
)

// DefaultEdgeWeight is the constant weight used on weighted graphs when no
// custom weight function is set.
const DefaultEdgeWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
