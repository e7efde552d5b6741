package island_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/island"
	"github.com/arkforge/mibga/pathsolution"
)

func pathOn(g *graph.Graph, ids ...int64) *pathsolution.PathSolution {
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = graph.Node(id)
	}
	p := pathsolution.New(nodes)
	p.Evaluate(g)

	return p
}

func meshGraph() *graph.Graph {
	g := graph.NewGraph()
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 6}, {6, 7}, {7, 5}} {
		_ = g.AddEdge(graph.Node(e[0]), graph.Node(e[1]), 1)
	}

	return g
}

func TestGenerateOffspring_EmptyPoolsProduceNone(t *testing.T) {
	g := meshGraph()
	rng := rand.New(rand.NewSource(1))

	isl := island.New(nil, []*pathsolution.PathSolution{pathOn(g, 0, 1)})
	assert.Nil(t, isl.GenerateOffspring(0.05, rng, g))

	isl2 := island.New([]*pathsolution.PathSolution{pathOn(g, 0, 1)}, nil)
	assert.Nil(t, isl2.GenerateOffspring(0.05, rng, g))
}

func TestGenerateOffspring_TwoChildrenPerCentralMember(t *testing.T) {
	g := meshGraph()
	rng := rand.New(rand.NewSource(2))

	sp := []*pathsolution.PathSolution{pathOn(g, 0, 1, 2, 3, 4, 5)}
	cp := []*pathsolution.PathSolution{pathOn(g, 0, 6, 7, 5), pathOn(g, 0, 1, 2, 3, 4, 5)}

	isl := island.New(sp, cp)
	offspring := isl.GenerateOffspring(0.05, rng, g)
	assert.Len(t, offspring, 2*len(cp))
}

func TestGenerateOffspring_MutationProbOneAlwaysMutates(t *testing.T) {
	g := meshGraph()
	rng := rand.New(rand.NewSource(4))

	sp := []*pathsolution.PathSolution{pathOn(g, 0, 1, 2, 3, 4, 5)}
	cp := []*pathsolution.PathSolution{pathOn(g, 0, 6, 7, 5)}

	isl := island.New(sp, cp)
	offspring := isl.GenerateOffspring(1.0, rng, g)
	assert.Len(t, offspring, 2)
	for _, o := range offspring {
		assert.NotNil(t, o)
	}
}

func TestGenerateOffspring_ZeroFitnessPoolUsesUniformWeights(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	rng := rand.New(rand.NewSource(6))

	zero := pathsolution.New([]graph.Node{99}) // length +Inf, fitness 0
	zero.Evaluate(g)
	sp := []*pathsolution.PathSolution{zero}
	cp := []*pathsolution.PathSolution{pathOn(g, 0, 1)}

	isl := island.New(sp, cp)
	offspring := isl.GenerateOffspring(0.0, rng, g)
	assert.Len(t, offspring, 2)
}
