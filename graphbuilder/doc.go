// Package graphbuilder constructs synthetic graph.Graph instances for
// testing and benchmarking the engine without an external data source.
//
// Grid builds an orthogonal rows×cols lattice with row-major Node IDs;
// RandomSparse builds an Erdos-Renyi-style random graph over a fixed vertex
// count. Both are deterministic for a fixed RNG and weight function.
package graphbuilder
