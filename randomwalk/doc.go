// Package randomwalk produces a random simple S→T walk over a GraphService,
// the primitive every genetic operator falls back to when it needs to bridge
// two otherwise-unrelated partial paths.
//
// A walk is unbiased subject to a single heuristic: it avoids stepping
// straight back to the node it just came from whenever an alternative
// neighbor exists. It never inspects edge weights, so a successful walk is
// not a shortest path — only a connecting one, left for PathSolution.Mend to
// simplify.
package randomwalk
