package mibga

import (
	"math/rand"
	"sort"

	"github.com/arkforge/mibga/island"
	"github.com/arkforge/mibga/pathsolution"
)

// formIslands implements Island Formation: it sorts the population by
// fitness descending, carves a superior pool from the top E fraction, and
// repeatedly chunks the (full-copy) central pool into randomly sized
// islands until the central pool is exhausted. A final undersized remainder
// spills into the last formed island rather than becoming its own island.
func formIslands(population []*pathsolution.PathSolution, cfg Config, rng *rand.Rand) []*island.Island {
	sorted := append([]*pathsolution.PathSolution{}, population...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })

	cutoff := int(float64(len(sorted)) * cfg.SelectionThreshold)
	superiorPool := append([]*pathsolution.PathSolution{}, sorted[:cutoff]...)
	centralPool := append([]*pathsolution.PathSolution{}, sorted...)

	var islands []*island.Island

	for len(centralPool) > 0 {
		size := cfg.MinIslandSize
		if cfg.MaxIslandSize > cfg.MinIslandSize {
			size += rng.Intn(cfg.MaxIslandSize - cfg.MinIslandSize + 1)
		}

		spCount := maxInt(1, int(float64(size)*cfg.SelectionThreshold))
		cpCount := size - spCount

		if len(centralPool) < size {
			if len(islands) > 0 {
				last := islands[len(islands)-1]
				last.PCp = append(last.PCp, centralPool...)
				last.PSp = append(last.PSp, superiorPool...)
			}
			break
		}

		islandSp := make([]*pathsolution.PathSolution, 0, spCount)
		for i := 0; i < spCount; i++ {
			if len(superiorPool) > 0 {
				idx := rng.Intn(len(superiorPool))
				islandSp = append(islandSp, superiorPool[idx])
				superiorPool = append(superiorPool[:idx], superiorPool[idx+1:]...)
			} else if len(centralPool) > 0 {
				islandSp = append(islandSp, centralPool[0])
			}
		}

		islandCp := make([]*pathsolution.PathSolution, 0, cpCount)
		for i := 0; i < cpCount; i++ {
			if len(centralPool) > 0 {
				idx := rng.Intn(len(centralPool))
				islandCp = append(islandCp, centralPool[idx])
				centralPool = append(centralPool[:idx], centralPool[idx+1:]...)
			}
		}

		islands = append(islands, island.New(islandSp, islandCp))
	}

	return islands
}

// migrate implements Migration (Algorithm 2): a random permutation of
// island indices determines which island's original P_sp each island
// receives. Fewer than two islands is a no-op.
func migrate(islands []*island.Island, rng *rand.Rand) {
	if len(islands) < 2 {
		return
	}

	perm := rng.Perm(len(islands))
	originalSp := make([][]*pathsolution.PathSolution, len(islands))
	for i, isl := range islands {
		originalSp[i] = isl.PSp
	}

	for i, isl := range islands {
		isl.PSp = originalSp[perm[i]]
	}
}

// selectAvgIslandFit implements AvgIslandFit selection per island: admit
// offspring at or above the parent pool's mean fitness, dedupe the combined
// pool by hash, cap it, then split and re-filter the survivors into fresh
// P_sp/P_cp pools with stochastic tail-thinning on P_cp.
func selectAvgIslandFit(islands []*island.Island, offspringByIsland [][]*pathsolution.PathSolution, cfg Config, rng *rand.Rand) []*island.Island {
	for i, isl := range islands {
		offspring := offspringByIsland[i]

		parents := append(append([]*pathsolution.PathSolution{}, isl.PSp...), isl.PCp...)
		avgParentFit := meanFitness(parents)

		validOffspring := make([]*pathsolution.PathSolution, 0, len(offspring))
		for _, o := range offspring {
			if o.Fitness >= avgParentFit {
				validOffspring = append(validOffspring, o)
			}
		}

		combined := append(append([]*pathsolution.PathSolution{}, parents...), validOffspring...)
		pool := dedupByHash(combined)
		sort.Slice(pool, func(a, b int) bool { return pool[a].Fitness > pool[b].Fitness })

		limit := cfg.MaxIslandSize * 2
		if len(pool) > limit {
			pool = pool[:limit]
		}

		if len(pool) == 0 {
			continue
		}

		spCut := maxInt(1, int(float64(len(pool))*cfg.SelectionThreshold))
		newSp := append([]*pathsolution.PathSolution{}, pool[:spCut]...)
		newCp := append([]*pathsolution.PathSolution{}, pool[spCut:]...)

		newSp = filterAtOrAboveMean(newSp)
		newCp = filterAtOrAboveMean(newCp)

		if len(newSp) == 0 {
			newSp = []*pathsolution.PathSolution{pool[0]}
		}

		if len(newCp) > 5 {
			maxRemove := maxInt(1, len(newCp)/5)
			numToRemove := 1 + rng.Intn(maxRemove)
			newCp = newCp[:len(newCp)-numToRemove]
		}

		isl.PSp = newSp
		isl.PCp = newCp
	}

	return islands
}

func meanFitness(pool []*pathsolution.PathSolution) float64 {
	if len(pool) == 0 {
		return 0
	}
	var total float64
	for _, p := range pool {
		total += p.Fitness
	}

	return total / float64(len(pool))
}

func filterAtOrAboveMean(pool []*pathsolution.PathSolution) []*pathsolution.PathSolution {
	if len(pool) == 0 {
		return pool
	}
	avg := meanFitness(pool)

	out := make([]*pathsolution.PathSolution, 0, len(pool))
	for _, p := range pool {
		if p.Fitness >= avg {
			out = append(out, p)
		}
	}

	return out
}

// dedupByHash keeps the first occurrence of each distinct hash, preserving
// pool's original order rather than the randomized order a plain map
// iteration would produce.
func dedupByHash(pool []*pathsolution.PathSolution) []*pathsolution.PathSolution {
	seen := make(map[string]bool, len(pool))
	out := make([]*pathsolution.PathSolution, 0, len(pool))
	for _, p := range pool {
		h := p.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, p)
	}

	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
