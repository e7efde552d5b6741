// Package mibga implements the Migration-Inspired Biological Genetic
// Algorithm (MIBGA): a multi-island genetic search over simple S→T walks
// that, on termination, hands its discovered population to package
// diversity for K-most-diverse near-shortest-path selection.
//
// Run is the sole entry point. It drives population initialization, island
// formation, a migration/mate/select generation loop bounded by
// Config.Timeout, and the final KMDNSP analysis. Every other exported symbol
// exists to make Run's behavior configurable or its result inspectable.
package mibga
