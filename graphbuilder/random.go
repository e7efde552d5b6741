package graphbuilder

import (
	"errors"
	"math/rand"

	"github.com/arkforge/mibga/graph"
)

// ErrInvalidProbability indicates p was outside [0, 1].
var ErrInvalidProbability = errors.New("graphbuilder: probability must be within [0, 1]")

// RandomSparse builds an Erdos-Renyi-style graph over n nodes (0..n-1):
// every unordered pair is connected independently with probability p, with
// weight drawn from weightFn. Node iteration is in ascending (i, j) order so
// the sequence of rng draws is deterministic for a fixed rng and n.
func RandomSparse(n int, p float64, weightFn WeightFunc, rng *rand.Rand) (*graph.Graph, error) {
	if n < minGridDim {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if weightFn == nil {
		weightFn = UnitWeight
	}

	g := graph.NewGraph()
	if n == 1 {
		g.AddNode(0)
		return g, nil
	}

	for i := 0; i < n; i++ {
		g.AddNode(graph.Node(i))
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(graph.Node(i), graph.Node(j), weightFn(rng)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
