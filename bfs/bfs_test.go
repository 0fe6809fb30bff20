package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/bfs"
	"github.com/katalvlaran/packcolor/core"
)

// path builds 0-1-...-(n-1).
func path(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1))
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 1}, res.Depth)
	require.Equal(t, 2, res.Eccentricity())

	p, err := res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, p)
}

func TestBFS_DisconnectedAndMaxDepth(t *testing.T) {
	g := path(t, 5)
	_, err := g.AddEdge("x", "y")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)

	_, err = res.PathTo("x")
	require.Error(t, err)
}

func TestBFS_HooksAndFilter(t *testing.T) {
	g := path(t, 4)
	var enq []string
	stop := errors.New("stop")

	_, err := bfs.BFS(g, "0",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "2" {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"0", "1", "2"}, enq)

	res, err := bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "2" }))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, res.Order)
}

func TestBFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path(t, 3), "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLevels(t *testing.T) {
	g := path(t, 12)
	require.NoError(t, g.AddVertex("lonely"))

	ids, adj, err := bfs.Dense(g)
	require.NoError(t, err)
	require.Equal(t, "10", ids[10], "dense order follows natural order")
	require.Equal(t, []int{9, 11}, adj[10])

	dist := make([]int, len(ids))
	require.NoError(t, bfs.Levels(context.Background(), adj, 0, 0, dist, nil))
	require.Equal(t, 11, dist[11])
	require.Equal(t, -1, dist[12])

	require.NoError(t, bfs.Levels(context.Background(), adj, 5, 2, dist, make([]int, 0, 4)))
	require.Equal(t, []int{-1, -1, -1, 2, 1, 0, 1, 2, -1, -1, -1, -1, -1}, dist)

	require.ErrorIs(t, bfs.Levels(context.Background(), adj, 99, 0, dist, nil), bfs.ErrSourceOutOfRange)
	require.ErrorIs(t, bfs.Levels(context.Background(), adj, 0, 0, dist[:3], nil), bfs.ErrOptionViolation)
}
