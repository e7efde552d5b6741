// Package diversity computes edge-weighted Jaccard dissimilarity between
// PathSolutions and selects the K most diverse near-shortest paths
// (KMDNSP) from a discovered set.
//
// Dissimilarity treats each path as its set of directed edges; two
// paths that share every edge are maximally similar (dissimilarity 0), and
// two paths with no edges in common are maximally dissimilar (1). Set
// diversity is the minimum pairwise dissimilarity across a candidate
// subset — a set is only as diverse as its closest pair.
package diversity
