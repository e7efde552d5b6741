package island

import (
	"math/rand"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/operators"
	"github.com/arkforge/mibga/pathsolution"
)

// Island holds a superior pool and a central pool of PathSolution
// references. Paths are value-like and may be shared across islands after
// migration; an Island never assumes exclusive ownership of its members.
type Island struct {
	PSp []*pathsolution.PathSolution
	PCp []*pathsolution.PathSolution
}

// New constructs an Island from the given superior and central pools.
func New(superior, central []*pathsolution.PathSolution) *Island {
	return &Island{PSp: superior, PCp: central}
}

// GenerateOffspring mates every member of PCp once against a
// fitness-weighted draw from PSp, applying Mutation with probability
// mutationProb and Crossover otherwise. Both children of every mating are
// appended to the result. An Island with an empty PSp or PCp produces no
// offspring, matching the convention that such an island cannot mate.
func (isl *Island) GenerateOffspring(mutationProb float64, rng *rand.Rand, g graph.GraphService) []*pathsolution.PathSolution {
	if len(isl.PSp) == 0 || len(isl.PCp) == 0 {
		return nil
	}

	weights := spWeights(isl.PSp)
	offspring := make([]*pathsolution.PathSolution, 0, 2*len(isl.PCp))

	for _, parentB := range isl.PCp {
		parentA := isl.PSp[weightedChoice(weights, rng)]

		var c1, c2 *pathsolution.PathSolution
		if rng.Float64() < mutationProb {
			c1, c2 = operators.Mutation(parentA, parentB, g, rng)
		} else {
			c1, c2 = operators.Crossover(parentA, parentB, g, rng)
		}

		offspring = append(offspring, c1, c2)
	}

	return offspring
}

// spWeights returns a probability distribution proportional to fitness; it
// falls back to a uniform distribution when total fitness is zero, since a
// proportional split is undefined in that case.
func spWeights(pool []*pathsolution.PathSolution) []float64 {
	var total float64
	for _, p := range pool {
		total += p.Fitness
	}

	weights := make([]float64, len(pool))
	if total > 0 {
		for i, p := range pool {
			weights[i] = p.Fitness / total
		}
	} else {
		uniform := 1.0 / float64(len(pool))
		for i := range weights {
			weights[i] = uniform
		}
	}

	return weights
}

// weightedChoice draws an index from weights (which must sum to ~1) via a
// cumulative-sum scan. Sampling is with replacement, matching the mating
// scheme where the same superior parent may be drawn repeatedly in one
// generation.
func weightedChoice(weights []float64, rng *rand.Rand) int {
	r := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return len(weights) - 1 // floating-point rounding guard
}
