// Package pathsolution encodes a candidate S→T walk as PathSolution and
// provides the single-pass loop-repair ("mending") operator that restores
// the simple-path invariant after arbitrary stitching by RandomWalker or the
// genetic operators.
//
// A PathSolution's length and fitness are derived, not stored independently:
// callers must call Evaluate (or CalculateLength/CalculateFitness) after any
// mutation of Nodes before reading Length/Fitness. PathSolution values are
// treated as immutable once evaluated; the engine never mutates a
// PathSolution in place after it enters the population registry.
package pathsolution
