package pathsolution

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/arkforge/mibga/graph"
)

// Sentinel errors for the pathsolution package.
var (
	// ErrEmptyPath indicates an operation was attempted on a PathSolution
	// with zero nodes.
	ErrEmptyPath = errors.New("pathsolution: empty path")

	// ErrPathDisconnected is returned by CalculateLength when some
	// consecutive pair of nodes has no edge in the graph; the Engine still
	// treats this as "invalid, discard" per the length == +Inf convention,
	// but callers that want the reason can compare against this sentinel.
	ErrPathDisconnected = errors.New("pathsolution: consecutive nodes are not connected")
)

const hashSeparator = "-"

// PathSolution is an ordered sequence of graph.Node representing a candidate
// S→T walk, together with its derived length, fitness and cached hash.
//
// Invariants after Mend():
//   - No node appears twice in Nodes.
//   - Either Nodes[0] == S and Nodes[len-1] == T, or Length is +Inf (the
//     caller is expected to discard such a solution).
//   - Every consecutive pair is an edge in the owning graph (guaranteed only
//     after Evaluate reports a finite Length).
type PathSolution struct {
	Nodes   []graph.Node
	Length  float64
	Fitness float64

	hash    string
	hashSet bool
}

// New constructs a PathSolution from nodes without evaluating it. Callers
// must call Mend and Evaluate before trusting Length/Fitness/Hash.
func New(nodes []graph.Node) *PathSolution {
	cp := make([]graph.Node, len(nodes))
	copy(cp, nodes)

	return &PathSolution{Nodes: cp}
}

// Clone returns a deep copy of p's node sequence with fresh derived fields;
// callers mutate the clone's Nodes before re-evaluating, never the original.
func (p *PathSolution) Clone() *PathSolution {
	return New(p.Nodes)
}

// Hash returns a deterministic string encoding of Nodes suitable as a map
// key: two PathSolutions with identical node sequences produce identical
// hashes, and differing sequences (including differing lengths) never
// collide: a '-' that follows a digit is always the separator, and any other
// '-' is the sign of a negative node ID.
func (p *PathSolution) Hash() string {
	if p.hashSet {
		return p.hash
	}

	var b strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			b.WriteString(hashSeparator)
		}
		b.WriteString(strconv.FormatInt(int64(n), 10))
	}
	p.hash = b.String()
	p.hashSet = true

	return p.hash
}

// invalidateHash clears the memoized hash after Nodes changes.
func (p *PathSolution) invalidateHash() {
	p.hashSet = false
}

// isInfinite reports whether f represents an unreachable/invalid length.
func isInfinite(f float64) bool {
	return math.IsInf(f, 1)
}
