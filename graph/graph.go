package graph

import (
	"math"
	"sort"
	"sync"
)

// Graph is an in-memory, thread-safe, undirected weighted graph over Node
// identifiers. It is the reference GraphService implementation: adjacency is
// stored as nested maps for O(1) edge lookup and insertion, guarded by a
// single sync.RWMutex (grounded on core.Graph's locking discipline — a single
// lock is sufficient here since, unlike core.Graph, Graph carries no
// directed/multi/loop mode flags to keep consistent under finer-grained
// locks).
type Graph struct {
	mu   sync.RWMutex
	adj  map[Node]map[Node]float64
	size int // number of distinct nodes, maintained incrementally
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[Node]map[Node]float64)}
}

// ensureNode registers n if absent. Caller must hold g.mu for writing.
func (g *Graph) ensureNode(n Node) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[Node]float64)
		g.size++
	}
}

// AddEdge inserts an undirected edge (u, v) with the given weight, creating
// either endpoint if absent. Re-adding an existing edge overwrites its
// weight. Returns ErrNegativeWeight for weight < 0; self-loops (u == v) are
// accepted and simply recorded as a single adjacency entry (RandomWalker and
// PathSolution never need to traverse them since mending discards repeats).
func (g *Graph) AddEdge(u, v Node, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// AddNode registers n as an isolated node if it is not already present. Most
// callers never need this directly since AddEdge registers both endpoints,
// but it lets a builder add a degenerate single-node graph.
func (g *Graph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(n)
}

// HasNode reports whether n exists in the graph.
func (g *Graph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[n]

	return ok
}

// EdgeWeight returns the weight of (u, v), or +Inf if no such edge exists or
// either endpoint is absent.
func (g *Graph) EdgeWeight(u, v Node) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok {
		return math.Inf(1)
	}
	w, ok := nbrs[v]
	if !ok {
		return math.Inf(1)
	}

	return w
}

// Neighbors returns the nodes adjacent to u in ascending order. Returns an
// empty (nil) slice if u has no neighbors or does not exist.
func (g *Graph) Neighbors(u Node) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok || len(nbrs) == 0 {
		return nil
	}

	out := make([]Node, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns the number of distinct nodes registered in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// ShortestPathLength returns the Dijkstra shortest-path distance from s to t
// over g, or +Inf if t is unreachable; it delegates to the package-level
// ShortestPathLength.
func (g *Graph) ShortestPathLength(s, t Node) float64 {
	return ShortestPathLength(g, s, t)
}

// Nodes returns all node IDs in ascending order. Not part of GraphService;
// used by ingestion/diagnostics and tests.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
