package mibga

import "github.com/arkforge/mibga/pathsolution"

// populationRegistry deduplicates every valid PathSolution discovered across
// a run, keyed by its hash, and doubles as the final candidate pool handed
// to diversity.FindKMDNSP. Insertion order is preserved alongside the map so
// that iterating the registry is deterministic given a deterministic run,
// rather than subject to Go's randomized map iteration order.
type populationRegistry struct {
	byHash map[string]*pathsolution.PathSolution
	order  []string
}

func newPopulationRegistry() *populationRegistry {
	return &populationRegistry{byHash: make(map[string]*pathsolution.PathSolution)}
}

// add registers p if it is not already present, returning true when p was
// new to the registry.
func (r *populationRegistry) add(p *pathsolution.PathSolution) bool {
	h := p.Hash()
	if _, exists := r.byHash[h]; exists {
		return false
	}
	r.byHash[h] = p
	r.order = append(r.order, h)

	return true
}

func (r *populationRegistry) all() []*pathsolution.PathSolution {
	out := make([]*pathsolution.PathSolution, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, r.byHash[h])
	}

	return out
}

func (r *populationRegistry) size() int {
	return len(r.order)
}
