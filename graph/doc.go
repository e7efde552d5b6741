// Package graph defines the GraphService contract MIBGA consumes, plus an
// in-memory, thread-safe reference implementation.
//
// GraphService is deliberately small: neighbor lookup, edge weight lookup,
// node count, and a single shortest-path-length query. Everything upstream
// of it (the MIBGA engine, random walker, genetic operators) programs
// against the interface, not against Graph, so a real external graph
// service can be substituted without touching algorithmic code.
//
// Graph itself is an undirected, weighted adjacency-list graph over opaque
// integer Node identifiers. Absent edges report a weight of +Inf rather
// than an error; callers that need to distinguish "no edge" from "zero
// weight" should check math.IsInf(w, 1).
//
//	g := graph.NewGraph()
//	g.AddEdge(0, 1, 1.0)
//	g.AddEdge(1, 2, 1.0)
//	l := graph.ShortestPathLength(g, 0, 2) // 2.0
package graph
