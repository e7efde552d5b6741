package diversity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkforge/mibga/diversity"
	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
)

func gridLikeGraph() *graph.Graph {
	g := graph.NewGraph()
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 5}, {5, 3}, {1, 5}} {
		_ = g.AddEdge(graph.Node(e[0]), graph.Node(e[1]), 1)
	}

	return g
}

func evaluated(g *graph.Graph, ids ...int64) *pathsolution.PathSolution {
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = graph.Node(id)
	}
	p := pathsolution.New(nodes)
	p.Evaluate(g)

	return p
}

func TestDissimilarity_IdenticalPathsIsZero(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	b := evaluated(g, 0, 1, 2, 3)
	assert.Equal(t, 0.0, diversity.Dissimilarity(a, b, g))
}

func TestDissimilarity_DisjointEdgesIsOne(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	b := evaluated(g, 0, 4, 5, 3)
	assert.Equal(t, 1.0, diversity.Dissimilarity(a, b, g))
}

func TestDissimilarity_PartialOverlap(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	b := evaluated(g, 0, 1, 5, 3)
	d := diversity.Dissimilarity(a, b, g)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestSetDiversity_SingletonIsMaximal(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	assert.Equal(t, 1.0, diversity.SetDiversity([]*pathsolution.PathSolution{a}, g))
}

func TestSetDiversity_IsMinimumPairwise(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	b := evaluated(g, 0, 1, 2, 3) // identical to a: dissimilarity 0
	c := evaluated(g, 0, 4, 5, 3) // disjoint from a: dissimilarity 1
	div := diversity.SetDiversity([]*pathsolution.PathSolution{a, b, c}, g)
	assert.Equal(t, 0.0, div)
}

func TestFindKMDNSP_RejectsNonPositiveK(t *testing.T) {
	g := gridLikeGraph()
	_, err := diversity.FindKMDNSP(nil, 0, 3.0, 0.1, g)
	assert.ErrorIs(t, err, diversity.ErrKTooSmall)
}

func TestFindKMDNSP_ReturnsAllWhenFewerThanK(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	result, err := diversity.FindKMDNSP([]*pathsolution.PathSolution{a}, 3, 3.0, 0.1, g)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestFindKMDNSP_FiltersOutOfTolerancePaths(t *testing.T) {
	g := gridLikeGraph()
	// shortest length 3, epsilon 0 -> only length-3 paths admitted.
	short := evaluated(g, 0, 1, 2, 3) // length 3
	long := evaluated(g, 0, 4, 5, 3)  // length 3, also admitted
	tooLong := evaluated(g, 0, 1, 5, 3)
	tooLong.Length = 10 // force out of tolerance directly
	tooLong.CalculateFitness()

	result, err := diversity.FindKMDNSP([]*pathsolution.PathSolution{short, long, tooLong}, 2, 3.0, 0.0, g)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	for _, p := range result {
		assert.LessOrEqual(t, p.Length, 3.0)
	}
}

func TestFindKMDNSP_SelectsMostDiversePair(t *testing.T) {
	g := gridLikeGraph()
	a := evaluated(g, 0, 1, 2, 3)
	dup := evaluated(g, 0, 1, 2, 3) // same edges as a
	diverse := evaluated(g, 0, 4, 5, 3)

	result, err := diversity.FindKMDNSP([]*pathsolution.PathSolution{a, dup, diverse}, 2, 3.0, 0.0, g)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1.0, diversity.SetDiversity(result, g))
}
