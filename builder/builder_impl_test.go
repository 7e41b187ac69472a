// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, canonical IDs and determinism.
package builder_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvspectra/builder"
	"github.com/katalvlaran/lvspectra/core"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{name: "Empty(3)", ctor: builder.Empty(3), wantV: 3, wantE: 0},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					require.True(t, g.HasEdge(strconv.Itoa(i), strconv.Itoa(i+1)))
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("4", "0"))
			},
		},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				deg, err := g.Degree("0")
				require.NoError(t, err)
				require.Equal(t, 5.0, deg)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("4", "1"))
				deg, err := g.Degree("2")
				require.NoError(t, err)
				require.Equal(t, 3.0, deg)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("0", "3"))
				require.False(t, g.HasEdge("2", "3"))
			},
		},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			order, err := g.CanonicalOrder()
			require.NoError(t, err)
			require.Len(t, order, tc.wantV)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Empty":        builder.Empty(0),
		"Path":         builder.Path(1),
		"Cycle":        builder.Cycle(2),
		"Complete":     builder.Complete(0),
		"Star":         builder.Star(1),
		"Wheel":        builder.Wheel(3),
		"Grid":         builder.Grid(0, 3),
		"RandomSparse": builder.RandomSparse(0, 0.5),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, ctor)
			require.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_DeterministicForSeed(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, e := range a.Edges() {
		require.True(t, b.HasEdge(e.From, e.To))
	}
}

func TestBuildGraph_WeightedUsesWeightFn(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithRand(rand.New(rand.NewPCG(1, 2))),
			builder.WithWeightFn(builder.UniformWeightFn(2, 3)),
		},
		builder.Path(5),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, 2.0)
		require.Less(t, e.Weight, 3.0)
	}

	d, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Path(3))
	require.NoError(t, err)
	for _, e := range d.Edges() {
		require.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithIDScheme_NonCanonical(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(func(i int) string { return "v" + strconv.Itoa(i) }),
	}, builder.Path(3))
	require.NoError(t, err)
	_, err = g.CanonicalOrder()
	require.ErrorIs(t, err, core.ErrNonCanonicalIDs)
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.UniformWeightFn(3, 2) })
}
