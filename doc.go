// Package dsddecomp is the root of a disjoint-support decomposition (DSD)
// toolkit for Boolean functions represented as binary decision diagrams.
//
// The module is organized into three packages plus one command:
//
//	support/     — ordered variable-index sets shared by every other layer
//	bdd/         — a hash-consed ROBDD manager with complemented edges
//	dsd/         — the decomposition engine: node store, merge engine,
//	               boundary analyzer, and decomposition driver
//	cmd/dsdshow/ — a small CLI that decomposes an expression and prints
//	               the resulting graph
//
// A typical caller never imports this root package directly; it exists to
// host module-level documentation and the go.mod declaration. Build a
// dsd.Manager, construct a bdd.Function through its BDD() accessor, and
// call Decomp:
//
//	mgr := dsd.NewManager()
//	f := mgr.BDD().Var(0).And(mgr.BDD().Var(1))
//	root := mgr.Decomp(f)
//	dsd.Print(os.Stdout, root)
package dsddecomp
