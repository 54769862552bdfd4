// Package dsd computes the disjoint-support decomposition (DSD) graph of a
// completely specified Boolean function given as a BDD: a DAG of LIT, OR,
// XOR, and CPLX nodes whose children always have pairwise disjoint
// variable supports, built by recursively cofactoring the function on its
// top variable and merging the two cofactors' own decompositions back
// together.
//
// The decomposition driver (Manager.Decomp) and the six-case merge engine
// it calls into are a direct port of a classical logic-synthesis
// algorithm; see DESIGN.md at the module root for the grounding of each
// piece. A Manager owns the BDD manager its inputs are built from plus the
// node arena and structural hash-cons table the merge engine shares with
// the decomposition driver's own memoization.
package dsd
