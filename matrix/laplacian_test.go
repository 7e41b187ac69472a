package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvspectra/builder"
	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func canonical(t *testing.T, g *core.Graph) []string {
	t.Helper()
	order, err := g.CanonicalOrder()
	require.NoError(t, err)
	return order
}

func TestNormalizedLaplacian_Path3(t *testing.T) {
	g := builder.MustBuild(builder.Path(3))
	l, err := matrix.NormalizedLaplacian(g, canonical(t, g))
	require.NoError(t, err)

	s := 1 / math.Sqrt(2)
	want := mat.NewDense(3, 3, []float64{
		1, -s, 0,
		-s, 1, -s,
		0, -s, 1,
	})
	require.True(t, mat.EqualApprox(want, l, 1e-12))
	require.Equal(t, 7, l.NNZ())
}

func TestNormalizedLaplacian_IsolatedVertexRowIsZero(t *testing.T) {
	g := builder.MustBuild(builder.Path(2))
	require.NoError(t, g.AddVertex("2"))

	l, err := matrix.NormalizedLaplacian(g, canonical(t, g))
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		require.Zero(t, l.At(2, j))
		require.Zero(t, l.At(j, 2))
	}
	require.Equal(t, []float64{1, 1, 0}, l.Diagonal())
}

func TestNormalizedLaplacian_WeightedAndLoop(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("0", "1", 4)
	_, _ = g.AddEdge("1", "1", 2)

	l, err := matrix.NormalizedLaplacian(g, canonical(t, g))
	require.NoError(t, err)
	// d0 = 4, d1 = 6: L00 = 1, L11 = 1 - 2/6, L01 = -4/sqrt(24)
	require.InDelta(t, 1.0, l.At(0, 0), 1e-12)
	require.InDelta(t, 1-2.0/6, l.At(1, 1), 1e-12)
	require.InDelta(t, -4/math.Sqrt(24), l.At(0, 1), 1e-12)
	require.InDelta(t, l.At(0, 1), l.At(1, 0), 1e-15)
}

func TestNormalizedLaplacian_OrderErrors(t *testing.T) {
	g := builder.MustBuild(builder.Path(3))

	_, err := matrix.NormalizedLaplacian(nil, nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.NormalizedLaplacian(g, []string{"0", "1", "x"})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	_, err = matrix.NormalizedLaplacian(g, []string{"0", "1", "1"})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	_, err = matrix.NormalizedLaplacian(g, []string{"0", "1"})
	require.ErrorIs(t, err, matrix.ErrOrderMismatch)
}

func TestNormalizedLaplacian_PermutedOrder(t *testing.T) {
	g := builder.MustBuild(builder.Star(4))
	l, err := matrix.NormalizedLaplacian(g, []string{"3", "2", "1", "0"})
	require.NoError(t, err)
	// hub "0" is now row 3
	require.InDelta(t, -1/math.Sqrt(3), l.At(3, 0), 1e-12)
	require.Zero(t, l.At(0, 1))
}

func TestAdjacency_UnweightedUsesOnes(t *testing.T) {
	g := builder.MustBuild(builder.Complete(4))
	a, err := matrix.Adjacency(g, canonical(t, g))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 1.0
			if i == j {
				want = 0
			}
			require.Equal(t, want, a.At(i, j))
		}
	}
}
