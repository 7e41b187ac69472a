package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvspectra/core"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		weight  float64
		wantErr error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 2, core.ErrBadWeight},
		{"negative weight", []core.GraphOption{core.WithWeighted()}, "A", "B", -1, core.ErrBadWeight},
		{"loop disabled", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"loop enabled", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 2.5, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, g.HasEdge(tc.to, tc.from))
		})
	}
}

func TestAddEdge_RejectsParallelEdgeInEitherOrientation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "0", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Equal(t, 1, g.EdgeCount())
}

func TestEdges_SortedBySequence(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e2", edges[1].ID)
	require.Equal(t, "e11", edges[10].ID)
}

func TestDegree_WeightsAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge("0", "1", 2)
	_, _ = g.AddEdge("0", "2", 0.5)
	_, _ = g.AddEdge("0", "0", 1)

	deg, err := g.Degree("0")
	require.NoError(t, err)
	require.InDelta(t, 4.5, deg, 1e-12)

	u := core.NewGraph()
	_, _ = u.AddEdge("0", "1", 0)
	deg, err = u.Degree("1")
	require.NoError(t, err)
	require.Equal(t, 1.0, deg)
	w, err := u.EdgeWeight("1", "0")
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	_, err = u.Degree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)
	_, _ = g.AddEdge("1", "2", 0)
	require.NoError(t, g.RemoveVertex("1"))
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, []string{"0", "2"}, g.Vertices())
	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	require.Empty(t, nbrs)
	require.ErrorIs(t, g.RemoveVertex("1"), core.ErrVertexNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, _ := g.AddEdge("0", "1", 0)
	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge("1", "0"))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestCanonicalOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)
	_, _ = g.AddEdge("1", "2", 0)
	order, err := g.CanonicalOrder()
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, order)

	bad := core.NewGraph()
	_, _ = bad.AddEdge("A", "B", 0)
	_, err = bad.CanonicalOrder()
	require.ErrorIs(t, err, core.ErrNonCanonicalIDs)

	gap := core.NewGraph()
	_ = gap.AddVertex("0")
	_ = gap.AddVertex("2")
	_, err = gap.CanonicalOrder()
	require.ErrorIs(t, err, core.ErrNonCanonicalIDs)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("0", "1", 3)
	c := g.Clone()
	_, _ = c.AddEdge("1", "2", 1)

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	require.True(t, c.Weighted())
	w, err := c.EdgeWeight("0", "1")
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.AddEdge(string(rune('A'+w)), "hub"+string(rune('a'+i%26))+string(rune('a'+i/26)), 0)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, workers*50, g.EdgeCount())
}
