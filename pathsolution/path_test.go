package pathsolution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
)

func nodes(xs ...int64) []graph.Node {
	out := make([]graph.Node, len(xs))
	for i, x := range xs {
		out[i] = graph.Node(x)
	}

	return out
}

func triangleGraph() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 3)

	return g
}

// An interior loop gets cut back to its first occurrence.
func TestMend_CutsInteriorLoopToFirstOccurrence(t *testing.T) {
	g := graph.NewGraph()
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {1, 4}, {4, 5}} {
		_ = g.AddEdge(graph.Node(e[0]), graph.Node(e[1]), 1)
	}

	p := pathsolution.New(nodes(0, 1, 2, 3, 1, 4, 5))
	p.Mend()

	assert.Equal(t, nodes(0, 1, 4, 5), p.Nodes)
}

func TestMend_Idempotent(t *testing.T) {
	p := pathsolution.New(nodes(0, 1, 2, 3, 1, 4, 5))
	p.Mend()
	first := append([]graph.Node{}, p.Nodes...)
	p.Mend()
	assert.Equal(t, first, p.Nodes)
}

func TestMend_NoRepeats_IsNoOp(t *testing.T) {
	p := pathsolution.New(nodes(0, 1, 2, 3))
	p.Mend()
	assert.Equal(t, nodes(0, 1, 2, 3), p.Nodes)
}

func TestMend_PreservesEndpointsWhenUnique(t *testing.T) {
	// S=0 and T=5 each appear exactly once; mending must not disturb them.
	p := pathsolution.New(nodes(0, 1, 2, 1, 3, 4, 5))
	p.Mend()
	assert.Equal(t, graph.Node(0), p.Nodes[0])
	assert.Equal(t, graph.Node(5), p.Nodes[len(p.Nodes)-1])
}

func TestCalculateLength_Correctness(t *testing.T) {
	g := triangleGraph()
	p := pathsolution.New(nodes(0, 1, 2))
	p.CalculateLength(g)
	assert.Equal(t, 2.0, p.Length)

	direct := pathsolution.New(nodes(0, 2))
	direct.CalculateLength(g)
	assert.Equal(t, 3.0, direct.Length)
}

func TestCalculateLength_MissingEdgeIsInf(t *testing.T) {
	g := triangleGraph()
	p := pathsolution.New(nodes(0, 99))
	p.CalculateLength(g)
	assert.True(t, math.IsInf(p.Length, 1))
	assert.False(t, p.IsValid())
}

func TestCalculateLength_EmptyOrSingleton(t *testing.T) {
	g := triangleGraph()
	empty := pathsolution.New(nil)
	empty.CalculateLength(g)
	assert.True(t, math.IsInf(empty.Length, 1))

	single := pathsolution.New(nodes(0))
	single.CalculateLength(g)
	assert.True(t, math.IsInf(single.Length, 1))
}

func TestFitnessMonotonicity(t *testing.T) {
	g := triangleGraph()
	short := pathsolution.New(nodes(0, 1, 2))
	short.Evaluate(g)
	long := pathsolution.New(nodes(0, 2))
	long.Evaluate(g)

	assert.Less(t, short.Length, long.Length)
	assert.Greater(t, short.Fitness, long.Fitness)
}

func TestFitness_InvalidIsZero(t *testing.T) {
	g := triangleGraph()
	p := pathsolution.New(nodes(0, 99))
	p.Evaluate(g)
	assert.Equal(t, 0.0, p.Fitness)
}

func TestHash_EqualityMatchesSequence(t *testing.T) {
	a := pathsolution.New(nodes(0, 1, 2))
	b := pathsolution.New(nodes(0, 1, 2))
	c := pathsolution.New(nodes(0, 2, 1))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestHash_NoAccidentalCollisionAcrossLengths(t *testing.T) {
	// "1" vs "1","2" vs "12" must not collide via naive concatenation.
	a := pathsolution.New(nodes(1, 2))
	b := pathsolution.New(nodes(12))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestClone_IsIndependent(t *testing.T) {
	p := pathsolution.New(nodes(0, 1, 2))
	c := p.Clone()
	c.Nodes[0] = 99
	assert.Equal(t, graph.Node(0), p.Nodes[0])
}
