package operators

import (
	"math/rand"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
	"github.com/arkforge/mibga/randomwalk"
)

// Crossover performs LFPC crossover on parents a and b: it splices a
// randomly chosen prefix of a to a randomly chosen suffix of b through a
// freshly walked bridge, and symmetrically for the second child. Parents are
// never modified.
//
// If the forward bridge fails to connect, crossover aborts entirely and
// returns (a, b) unchanged. If only the reverse bridge fails, the second
// child falls back to b unchanged while the first child is still returned.
func Crossover(a, b *pathsolution.PathSolution, g graph.GraphService, rng *rand.Rand) (*pathsolution.PathSolution, *pathsolution.PathSolution) {
	if len(a.Nodes) < 2 || len(b.Nodes) < 2 {
		return a, b
	}

	idxA := rng.Intn(len(a.Nodes) - 1)   // [0, len(a)-2]
	idxB := 1 + rng.Intn(len(b.Nodes)-1) // [1, len(b)-1]
	nodeA := a.Nodes[idxA]
	nodeB := b.Nodes[idxB]

	bridge, err := randomwalk.CreateRandomPath(nodeA, nodeB, g, rng)
	if err != nil {
		return a, b
	}

	child1 := stitch(a.Nodes[:idxA], bridge.Nodes, b.Nodes[idxB+1:])

	child2 := b
	if bridgeBack, err := randomwalk.CreateRandomPath(nodeB, nodeA, g, rng); err == nil {
		child2 = stitch(b.Nodes[:idxB], bridgeBack.Nodes, a.Nodes[idxA+1:])
	}

	return child1, child2
}

// Mutation performs LFPC mutation: it replaces the node at a randomly chosen
// interior index of a with a random neighbor of its predecessor, then
// bridges that mutated node to a randomly chosen node of b.
//
// Mutation falls back to Crossover when a is too short to mutate, when the
// chosen predecessor has no neighbors, or when the mutated bridge fails to
// connect — in every fallback case the roles of a and b are preserved.
func Mutation(a, b *pathsolution.PathSolution, g graph.GraphService, rng *rand.Rand) (*pathsolution.PathSolution, *pathsolution.PathSolution) {
	if len(a.Nodes) < 3 {
		return Crossover(a, b, g, rng)
	}

	idxA := 1 + rng.Intn(len(a.Nodes)-2) // [1, len(a)-2], guarantees a predecessor
	idxB := 0
	if len(b.Nodes) >= 2 {
		idxB = 1 + rng.Intn(len(b.Nodes)-1)
	}

	precedingNode := a.Nodes[idxA-1]
	nodeB := b.Nodes[idxB]

	neighbors := g.Neighbors(precedingNode)
	if len(neighbors) == 0 {
		return Crossover(a, b, g, rng)
	}
	nodeC := neighbors[rng.Intn(len(neighbors))]

	bridge, err := randomwalk.CreateRandomPath(nodeC, nodeB, g, rng)
	if err != nil {
		return Crossover(a, b, g, rng)
	}

	child1 := stitch(a.Nodes[:idxA], bridge.Nodes, b.Nodes[idxB+1:])

	child2, _ := Crossover(b, a, g, rng)

	return child1, child2
}

// stitch concatenates three node slices into a single new PathSolution and
// mends the result; none of the input slices are mutated.
func stitch(prefix, bridge, suffix []graph.Node) *pathsolution.PathSolution {
	joined := make([]graph.Node, 0, len(prefix)+len(bridge)+len(suffix))
	joined = append(joined, prefix...)
	joined = append(joined, bridge...)
	joined = append(joined, suffix...)

	child := pathsolution.New(joined)
	child.Mend()

	return child
}
