package diversity

import (
	"sort"

	"github.com/arkforge/mibga/graph"
	"github.com/arkforge/mibga/pathsolution"
)

// edgeKey identifies one directed consecutive pair within a path; direction
// matters because a path's edge set is derived from an ordered traversal,
// not an unordered set of endpoints.
type edgeKey struct {
	u, v graph.Node
}

func edgeSet(p *pathsolution.PathSolution) map[edgeKey]struct{} {
	set := make(map[edgeKey]struct{}, len(p.Nodes))
	for i := 0; i < len(p.Nodes)-1; i++ {
		set[edgeKey{p.Nodes[i], p.Nodes[i+1]}] = struct{}{}
	}

	return set
}

// Dissimilarity computes the edge-weighted Jaccard dissimilarity between a
// and b: 1 minus the ratio of the weight of their shared edges to the
// weight of their combined edges. Two paths with no edges in either union
// (both degenerate single-node paths) are defined as maximally similar.
func Dissimilarity(a, b *pathsolution.PathSolution, g graph.GraphService) float64 {
	edgesA := edgeSet(a)
	edgesB := edgeSet(b)

	var intersectLen, unionLen float64
	seen := make(map[edgeKey]struct{}, len(edgesA)+len(edgesB))

	for e := range edgesA {
		w := g.EdgeWeight(e.u, e.v)
		unionLen += w
		seen[e] = struct{}{}
		if _, inB := edgesB[e]; inB {
			intersectLen += w
		}
	}
	for e := range edgesB {
		if _, already := seen[e]; already {
			continue
		}
		unionLen += g.EdgeWeight(e.u, e.v)
	}

	if unionLen == 0 {
		return 0.0
	}

	return 1.0 - (intersectLen / unionLen)
}

// SetDiversity is the minimum pairwise Dissimilarity across pathSet. A set
// of fewer than two paths is defined as maximally diverse (1.0): there is no
// pair to constrain it.
func SetDiversity(pathSet []*pathsolution.PathSolution, g graph.GraphService) float64 {
	if len(pathSet) < 2 {
		return 1.0
	}

	minDis := 1.0
	first := true
	for i := 0; i < len(pathSet); i++ {
		for j := i + 1; j < len(pathSet); j++ {
			d := Dissimilarity(pathSet[i], pathSet[j], g)
			if first || d < minDis {
				minDis = d
				first = false
			}
		}
	}

	return minDis
}

// FindKMDNSP filters allPaths to those within (1+epsilon) of shortestLen,
// deduplicates by hash, and returns the K-subset with the greatest
// SetDiversity. If fewer than K unique near-shortest paths exist, all of
// them are returned. When the unique candidate pool reaches searchSpaceCap,
// the search is narrowed to the searchSpaceCap fittest candidates, sorted by
// fitness descending, before exhaustive enumeration, since C(n,K) is
// otherwise intractable; the sort also fixes tie-break order at exactly
// searchSpaceCap candidates, not just above it.
func FindKMDNSP(allPaths []*pathsolution.PathSolution, k int, shortestLen, epsilon float64, g graph.GraphService) ([]*pathsolution.PathSolution, error) {
	if k <= 0 {
		return nil, ErrKTooSmall
	}

	maxAllowed := shortestLen * (1.0 + epsilon)

	seen := make(map[string]bool, len(allPaths))
	candidates := make([]*pathsolution.PathSolution, 0, len(allPaths))
	for _, p := range allPaths {
		if !p.IsValid() || p.Length > maxAllowed {
			continue
		}
		h := p.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		candidates = append(candidates, p)
	}

	if len(candidates) <= k {
		return candidates, nil
	}

	searchSpace := candidates
	if len(candidates) >= searchSpaceCap {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Fitness > candidates[j].Fitness
		})
		searchSpace = candidates[:searchSpaceCap]
	}

	var best []*pathsolution.PathSolution
	maxDiversity := -1.0

	forEachCombination(len(searchSpace), k, func(idx []int) {
		combo := make([]*pathsolution.PathSolution, k)
		for i, ci := range idx {
			combo[i] = searchSpace[ci]
		}

		div := SetDiversity(combo, g)
		if div > maxDiversity {
			maxDiversity = div
			best = combo
		}
	})

	return best, nil
}

// forEachCombination invokes fn once for every k-combination of indices
// drawn from [0, n), in lexicographic order, without allocating the full
// combination list up front.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
