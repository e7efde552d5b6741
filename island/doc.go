// Package island holds the two subpopulations the Engine evolves
// independently between migration rounds — a superior pool P_sp of elite
// parents and a broader central pool P_cp — and generates one offspring
// pair per P_cp member by mating it against a fitness-weighted draw from
// P_sp.
package island
