// Package bdd implements a reduced, ordered binary decision diagram (ROBDD)
// manager with complemented edges, in the CUDD tradition: every internal node
// is hash-consed so that structurally identical subgraphs are shared, and a
// single "not" bit on each edge lets a function and its complement share one
// node instead of doubling the table.
//
// A *Manager owns the node table, the unique table (structural hash-consing
// of (variable, low, high) triples), and the memoized if-then-else computed
// table for the lifetime of a session. A Function is an immutable, cheaply
// copyable handle into that table; it is only ever produced by a *Manager and
// is safe to compare with ==.
//
// This package realizes the "externally supplied BDD" contract that the
// decomposition engine (package dsd) consumes: dsd never reaches past the
// Function/Manager surface into this package's internals, so any other BDD
// implementation exposing the same methods could stand in for it.
package bdd
