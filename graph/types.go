package graph

import "errors"

// Sentinel errors for the graph package. Callers must use errors.Is, never
// string comparison; messages are not part of the contract.
var (
	// ErrNodeNotFound indicates an operation referenced a Node absent from the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	// MIBGA's shortest-path and fitness arithmetic assume non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrMalformedRecord indicates an ingestion record could not be parsed.
	// Ingestion skips the offending record rather than returning this error
	// to the caller; it is exposed for implementations that want strict mode.
	ErrMalformedRecord = errors.New("graph: malformed record")
)

// Node is an opaque integer node identifier. Only equality and use as a map
// key are meaningful; no ordering semantics are implied by callers, though
// Graph.Neighbors returns them in ascending order for determinism.
type Node int64

// GraphService is the contract the MIBGA engine and its subsystems consume.
// Implementations need not be mutable or even backed by Graph; a thin
// wrapper around a remote graph service satisfies this interface equally
// well, as long as it honors the EdgeWeight/Neighbors/ShortestPathLength
// semantics documented on each method below.
type GraphService interface {
	// EdgeWeight returns the weight of the undirected edge (u, v), or
	// math.Inf(1) if no such edge exists.
	EdgeWeight(u, v Node) float64

	// Neighbors returns the nodes adjacent to u. May be empty. Implementations
	// should return a deterministic order so random-walk runs are
	// reproducible for a fixed RNG seed.
	Neighbors(u Node) []Node

	// NodeCount returns the total number of nodes in the graph.
	NodeCount() int

	// ShortestPathLength returns the shortest-path distance from s to t, or
	// math.Inf(1) if t is unreachable from s.
	ShortestPathLength(s, t Node) float64
}
