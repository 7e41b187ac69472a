package spectral_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvspectra/builder"
	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/matrix"
	"github.com/katalvlaran/lvspectra/spectral"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-8

func extractor() *spectral.Extractor {
	return spectral.NewExtractor(eigen.NewLanczos(spectral.DefaultSeed), spectral.DefaultSearchBreadthFactor)
}

func TestComputeFeature_SmallGraphIsPadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    *core.Graph
		d    int
		want []float64
	}{
		// Laplacian spectrum of P3 is {0, 1, 2}.
		{"path3 d=4", builder.MustBuild(builder.Path(3)), 4, []float64{0, 1, 2, 0}},
		// C4: {0, 1, 1, 2}; n == d still pads, with no trailing zeros.
		{"cycle4 d=4", builder.MustBuild(builder.Cycle(4)), 4, []float64{0, 1, 1, 2}},
		// K2: {0, 2}.
		{"complete2 d=3", builder.MustBuild(builder.Complete(2)), 3, []float64{0, 2, 0}},
		// No edges: L is all zeros.
		{"edgeless d=4", builder.MustBuild(builder.Empty(3)), 4, []float64{0, 0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractor().ComputeFeature(tc.g, tc.d)
			require.NoError(t, err)
			require.Len(t, got, tc.d)
			require.InDeltaSlice(t, tc.want, []float64(got), eps)
			require.Equal(t, 0.0, got[0])
		})
	}
}

func TestComputeFeature_LargeGraphMatchesDenseTop(t *testing.T) {
	g := builder.MustBuild(builder.Wheel(10))
	order, err := g.CanonicalOrder()
	require.NoError(t, err)
	lap, err := matrix.NormalizedLaplacian(g, order)
	require.NoError(t, err)

	want, err := eigen.Dense{}.TopEigenvalues(lap, 4, 0)
	require.NoError(t, err)

	got, err := extractor().ComputeFeature(g, 4)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, []float64(got), eps)
	require.NotEqual(t, 0.0, got[0], "large branch carries no padding")
}

func TestComputeFeature_AscendingOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)

	got, err := extractor().ComputeFeature(g, 6)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, got[i-1], got[i])
	}
}

func TestComputeFeature_Errors(t *testing.T) {
	t.Parallel()

	x := extractor()
	_, err := x.ComputeFeature(nil, 4)
	require.ErrorIs(t, err, spectral.ErrNilGraph)

	_, err = x.ComputeFeature(builder.MustBuild(builder.Path(3)), 0)
	require.ErrorIs(t, err, spectral.ErrInvalidDimension)

	_, err = x.ComputeFeature(builder.MustBuild(builder.Empty(1)), 4)
	require.ErrorIs(t, err, spectral.ErrInvalidGraphSize)

	_, err = x.ComputeFeature(core.NewGraph(), 4)
	require.ErrorIs(t, err, spectral.ErrInvalidGraphSize)

	named := core.NewGraph()
	_, err = named.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = x.ComputeFeature(named, 4)
	require.ErrorIs(t, err, core.ErrNonCanonicalIDs)
}

func TestComputeFeature_SolverErrorsAreWrapped(t *testing.T) {
	boom := eigen.SolverFunc(func(mat.Symmetric, int, int) ([]float64, error) {
		return nil, eigen.ErrNoConvergence
	})
	_, err := spectral.NewExtractor(boom, 0).ComputeFeature(builder.MustBuild(builder.Path(5)), 2)
	require.ErrorIs(t, err, spectral.ErrSolverFailure)
	require.ErrorIs(t, err, eigen.ErrNoConvergence)

	short := eigen.SolverFunc(func(mat.Symmetric, int, int) ([]float64, error) {
		return []float64{1}, nil
	})
	_, err = spectral.NewExtractor(short, 0).ComputeFeature(builder.MustBuild(builder.Path(5)), 2)
	require.ErrorIs(t, err, spectral.ErrSolverFailure)
}

func TestComputeFeature_RequestShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, d               int
		wantCount, wantBrd int
	}{
		{3, 4, 2, 40},
		{4, 4, 3, 40},
		{10, 4, 4, 40},
		{50, 8, 8, 80},
	}
	for _, tc := range tests {
		var count, breadth int
		spy := eigen.SolverFunc(func(m mat.Symmetric, c, b int) ([]float64, error) {
			count, breadth = c, b
			if m.SymmetricDim() != tc.n {
				return nil, errors.New("wrong matrix order")
			}
			return make([]float64, c), nil
		})
		_, err := spectral.NewExtractor(spy, 10).ComputeFeature(builder.MustBuild(builder.Path(tc.n)), tc.d)
		require.NoError(t, err)
		require.Equal(t, tc.wantCount, count)
		require.Equal(t, tc.wantBrd, breadth)
	}
}

func TestPadded(t *testing.T) {
	require.True(t, spectral.Padded(3, 4))
	require.True(t, spectral.Padded(4, 4))
	require.False(t, spectral.Padded(5, 4))
}
