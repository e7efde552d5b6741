// Package operators implements Loop-Free Path-Composer (LFPC) crossover and
// mutation, the two recombination operators the Engine applies to pairs of
// PathSolution parents.
//
// Unlike crossovers that require a common node between parents, LFPC bridges
// an arbitrary node of A to an arbitrary node of B with a fresh random walk,
// so any two S→T paths over the same graph can be recombined regardless of
// overlap. Both operators degrade gracefully: when a bridge walk fails to
// connect, they fall back to returning the parents (or a simpler operator)
// unchanged rather than propagating an error, since a failed bridge is an
// expected, non-exceptional outcome on sparse graphs.
package operators
