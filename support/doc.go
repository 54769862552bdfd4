// Package support implements ordered variable-index sets: the primitive
// every higher layer of this module uses to describe "which Boolean inputs
// does this function depend on".
//
// A Set is a strictly ascending slice of Var. There are no duplicates; two
// Sets are structurally equal iff their underlying slices are equal
// elementwise. Union, Difference, Intersection, and Overlaps are all linear
// merges over the two ascending slices — the same two-pointer merge shape
// the decomposition engine's common-child scan (package dsd) uses to split
// a merge's two cofactor child lists into common/rest0/rest1.
//
// Complexity: every binary operation is O(len(a)+len(b)) time and produces
// at most O(len(a)+len(b)) new elements; Top is O(1).
package support
