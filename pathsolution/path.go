package pathsolution

import (
	"math"

	"github.com/arkforge/mibga/graph"
)

// Mend enforces the simple-path invariant by a single left-to-right scan:
// for each node in original order, if it was already seen, the accumulated
// path is truncated back to (and including) that node's first occurrence,
// discarding everything emitted since — this removes the loop body in one
// step rather than repeatedly rescanning. If it has not been seen, it is
// appended and recorded.
//
// Mend is idempotent: a second call on an already-simple path is a no-op.
// It also invalidates the memoized hash, since Nodes may have changed.
//
// Complexity: O(n) for a path without repeats; each cut also scans the whole
// first-index map, and nodes discarded by a cut may be appended again later,
// so the worst case is O(n^2).
func (p *PathSolution) Mend() {
	if len(p.Nodes) == 0 {
		return
	}

	firstIndex := make(map[graph.Node]int, len(p.Nodes))
	out := make([]graph.Node, 0, len(p.Nodes))

	for _, n := range p.Nodes {
		if idx, seen := firstIndex[n]; seen {
			// Loop detected: cut back to the first occurrence and drop every
			// index recorded after it, since those nodes no longer appear.
			out = out[:idx+1]
			for k, v := range firstIndex {
				if v > idx {
					delete(firstIndex, k)
				}
			}
			continue
		}
		firstIndex[n] = len(out)
		out = append(out, n)
	}

	p.Nodes = out
	p.invalidateHash()
}

// CalculateLength sums graph.EdgeWeight over consecutive node pairs and
// stores the result in p.Length, which is +Inf whenever the path is invalid.
// It also names the cause: ErrEmptyPath for a zero-length node sequence,
// ErrPathDisconnected when some consecutive pair has no edge in g. A
// single-node sequence also gets +Inf, but with a nil error. Neither
// error changes how the Engine treats p — IsValid still governs admission —
// they exist for callers that want the reason rather than just the Inf.
func (p *PathSolution) CalculateLength(g graph.GraphService) error {
	if len(p.Nodes) == 0 {
		p.Length = math.Inf(1)
		return ErrEmptyPath
	}
	if len(p.Nodes) == 1 {
		p.Length = math.Inf(1)
		return nil
	}

	var total float64
	for i := 0; i < len(p.Nodes)-1; i++ {
		w := g.EdgeWeight(p.Nodes[i], p.Nodes[i+1])
		if isInfinite(w) {
			p.Length = math.Inf(1)
			return ErrPathDisconnected
		}
		total += w
	}
	p.Length = total
	return nil
}

// CalculateFitness sets p.Fitness to 1/Length when Length is finite and
// positive, 0 otherwise. Fitness is used purely for selection weighting; it
// is never compared against a raw length directly.
func (p *PathSolution) CalculateFitness() {
	if p.Length > 0 && !isInfinite(p.Length) {
		p.Fitness = 1.0 / p.Length
	} else {
		p.Fitness = 0
	}
}

// Evaluate is the one-shot convenience that runs CalculateLength then
// CalculateFitness; almost every caller wants both together. It returns
// CalculateLength's error unchanged; most callers ignore it and rely on
// IsValid instead.
func (p *PathSolution) Evaluate(g graph.GraphService) error {
	err := p.CalculateLength(g)
	p.CalculateFitness()
	return err
}

// IsValid reports whether p currently has a finite length — the sole
// criterion the Engine uses to admit or discard a PathSolution.
func (p *PathSolution) IsValid() bool {
	return !isInfinite(p.Length)
}

