package graph_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkforge/mibga/graph"
)

func triangle() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 3)

	return g
}

func TestAddEdge_NegativeWeightRejected(t *testing.T) {
	g := graph.NewGraph()
	err := g.AddEdge(0, 1, -1)
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
	assert.False(t, g.HasNode(0))
}

func TestAddEdge_UndirectedMirroring(t *testing.T) {
	g := triangle()
	assert.Equal(t, 1.0, g.EdgeWeight(0, 1))
	assert.Equal(t, 1.0, g.EdgeWeight(1, 0))
}

func TestEdgeWeight_MissingIsInf(t *testing.T) {
	g := triangle()
	assert.True(t, math.IsInf(g.EdgeWeight(0, 99), 1))
	assert.True(t, math.IsInf(g.EdgeWeight(99, 0), 1))
}

func TestNeighbors_SortedAndEmpty(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(5, 1, 1)
	_ = g.AddEdge(5, 3, 1)
	_ = g.AddEdge(5, 2, 1)
	assert.Equal(t, []graph.Node{1, 2, 3}, g.Neighbors(5))
	assert.Nil(t, g.Neighbors(42))
}

func TestNodeCount(t *testing.T) {
	g := triangle()
	assert.Equal(t, 3, g.NodeCount())
}

func TestShortestPathLength_Triangle(t *testing.T) {
	g := triangle()
	// 0->1->2 costs 2, cheaper than the direct 0->2 edge (3).
	assert.Equal(t, 2.0, graph.ShortestPathLength(g, 0, 2))
}

func TestShortestPathLength_SameNode(t *testing.T) {
	g := triangle()
	assert.Equal(t, 0.0, graph.ShortestPathLength(g, 0, 0))
}

func TestShortestPathLength_Unreachable(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)
	assert.True(t, math.IsInf(graph.ShortestPathLength(g, 0, 3), 1))
}

func TestLoadEdgeList_SkipsMalformedLines(t *testing.T) {
	src := "0 1 1.5\nbad line here\n1 2\n# comment\n\n2 3 -4\n"
	g, skipped, err := graph.LoadEdgeList(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped) // "bad line here" and the negative weight
	assert.Equal(t, 1.5, g.EdgeWeight(0, 1))
	assert.Equal(t, 1.0, g.EdgeWeight(1, 2)) // default weight
	assert.True(t, math.IsInf(g.EdgeWeight(2, 3), 1))
}
