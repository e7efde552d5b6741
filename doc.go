// Package mibga's module root holds no code of its own; it groups the
// packages that together implement the Migration-Inspired Biological
// Genetic Algorithm (MIBGA) for K most diverse near-shortest path discovery.
//
// Package layout:
//
//	graph/        — GraphService contract, an in-memory reference Graph, Dijkstra, edgelist ingestion
//	graphbuilder/ — synthetic Grid and RandomSparse graph construction for tests and benchmarks
//	pathsolution/ — PathSolution: walk encoding, loop mending, length/fitness/hash
//	randomwalk/   — unbiased random S→T walk generation
//	operators/    — LFPC crossover and mutation over PathSolution pairs
//	island/       — superior/central subpopulations and weighted offspring generation
//	diversity/    — edge-weighted Jaccard dissimilarity and KMDNSP selection
//	mibga/        — the Engine: population init, island formation, migration, selection, Run
//	mibgacli/     — a command-line front end over an edgelist file
//
// Data flow: graph -> randomwalk -> pathsolution -> operators -> island ->
// mibga -> diversity -> final K paths.
package mibga
