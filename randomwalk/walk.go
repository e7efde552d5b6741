package randomwalk

import (
	"errors"
	"math/rand"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
)

// ErrNoPath is returned when the walk exhausts its step budget or reaches a
// dead end before arriving at the target.
var ErrNoPath = errors.New("randomwalk: no path found within step budget")

// CreateRandomPath performs an unbiased random walk from u toward v over g,
// backtrack-avoiding where an alternative exists, and returns a mended
// PathSolution on success.
//
// The walk takes at most 2*g.NodeCount() steps before giving up; this bound
// keeps failure cheap on disconnected or sparsely connected instances while
// still finding most reachable targets.
func CreateRandomPath(u, v graph.Node, g graph.GraphService, rng *rand.Rand) (*pathsolution.PathSolution, error) {
	current := u
	path := []graph.Node{u}
	maxSteps := g.NodeCount() * 2

	reached := false

	for steps := 0; steps < maxSteps; steps++ {
		if current == v {
			reached = true
			break
		}

		neighbors := g.Neighbors(current)
		if len(neighbors) == 0 {
			break
		}

		if len(path) >= 2 && len(neighbors) > 1 {
			prev := path[len(path)-2]
			neighbors = excludeNode(neighbors, prev)
		}

		current = neighbors[rng.Intn(len(neighbors))]
		path = append(path, current)
	}

	if !reached {
		return nil, ErrNoPath
	}

	sol := pathsolution.New(path)
	sol.Mend()

	return sol, nil
}

// excludeNode returns a copy of ns with prev removed, leaving ns untouched —
// the caller's neighbor slice belongs to the graph and must not be mutated.
func excludeNode(ns []graph.Node, prev graph.Node) []graph.Node {
	idx := -1
	for i, n := range ns {
		if n == prev {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ns
	}

	out := make([]graph.Node, 0, len(ns)-1)
	out = append(out, ns[:idx]...)
	out = append(out, ns[idx+1:]...)

	return out
}
