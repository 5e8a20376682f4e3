// Package equilib assembles and solves aqueous equilibrium systems.
//
// A [System] owns a set of reversible reactions and named conservation
// constraints. From those it derives the species universe, the
// stoichiometric and conservation matrices, and a residual function in
// log10-concentration space with three blocks:
//
//  1. mass action, one row per reaction: -log10(K) + sum of
//     coefficient-weighted log concentrations
//  2. conservation, one row per constraint: target minus the linear
//     total of member species
//  3. charge balance, one row: net ionic charge of the solution
//
// The system is solvable only when the number of species equals the
// number of reactions plus constraints plus one; the mismatch is a
// configuration error reported at construction, while ordinary
// non-convergence of a solve is an expected, recoverable outcome.
//
// # Thread Safety
//
// System instances are NOT thread-safe: a successful solve writes
// concentrations back onto the shared Species values.
package equilib
