package bdd

import "github.com/katalvlaran/dsd-decomp/support"

// Function is an immutable handle to a node in a Manager's ROBDD, paired
// with a polarity bit. Two Functions compare equal with == iff they denote
// the same node of the same Manager with the same polarity; because the
// manager hash-conses every node, == is also semantic equality of the
// Boolean function as long as both values came from the same Manager.
type Function struct {
	mgr  *Manager
	node uint32
	inv  bool
}

// IsZero reports whether f is the constant-false function.
func (f Function) IsZero() bool {
	return f.node == terminalIndex && f.inv
}

// IsOne reports whether f is the constant-true function.
func (f Function) IsOne() bool {
	return f.node == terminalIndex && !f.inv
}

// IsConst reports whether f is either constant.
func (f Function) IsConst() bool {
	return f.node == terminalIndex
}

// RootInv reports the polarity bit carried by this handle: whether it is
// the complement of its underlying hash-consed node.
func (f Function) RootInv() bool {
	return f.inv
}

// Equal reports whether f and g denote the same function. Both must come
// from the same Manager.
func (f Function) Equal(g Function) bool {
	return f.mgr == g.mgr && f.node == g.node && f.inv == g.inv
}

// RawID returns an opaque, Manager-scoped identifier for f's underlying
// node and polarity: two Functions from the same Manager have equal RawID
// iff Equal reports true. Intended for callers that hash-cons their own
// structures keyed by a bdd.Function, such as package dsd's node store.
func (f Function) RawID() uint64 {
	id := uint64(f.node) << 1
	if f.inv {
		id |= 1
	}

	return id
}

// Not returns the complement of f. It never allocates a new node: the
// complemented-edge representation means negation is a single bit flip.
func (f Function) Not() Function {
	return Function{mgr: f.mgr, node: f.node, inv: !f.inv}
}

// And returns f AND g.
func (f Function) And(g Function) Function {
	f.mgr.own(g)

	return f.mgr.Ite(f, g, f.mgr.Zero())
}

// Or returns f OR g.
func (f Function) Or(g Function) Function {
	f.mgr.own(g)

	return f.mgr.Ite(f, f.mgr.One(), g)
}

// Xor returns f XOR g.
func (f Function) Xor(g Function) Function {
	f.mgr.own(g)

	return f.mgr.Ite(f, g.Not(), g)
}

// RootDecomp returns the top variable of f (the smallest-indexed variable it
// depends on) together with its two Shannon cofactors, f with that variable
// fixed to 0 and to 1.
//
// Precondition: !f.IsConst(). A constant has no top variable.
func (f Function) RootDecomp() (top support.Var, f0, f1 Function) {
	invariant(!f.IsConst(), "bdd: RootDecomp called on a constant function")

	n := f.mgr.nodes[f.node]
	lo := edge{n.low.node, n.low.inv != f.inv}
	hi := edge{n.high.node, n.high.inv != f.inv}

	return n.v, Function{f.mgr, lo.node, lo.inv}, Function{f.mgr, hi.node, hi.inv}
}

// Restrict returns f restricted to the cube described by pat: every
// variable pat fixes to a constant is substituted with that constant in f.
// pat must be a cube (a conjunction of literals, i.e. a BDD whose every
// internal node's low child is the zero terminal or whose high child is the
// zero terminal) as produced by OnePath or ZeroPath.
func (f Function) Restrict(pat Function) Function {
	f.mgr.own(pat)

	return f.mgr.restrict(f, pat)
}

func (m *Manager) restrict(f, pat Function) Function {
	if pat.IsOne() || f.IsConst() {
		return f
	}

	pv, p0, p1 := pat.RootDecomp()

	var active Function
	var fixedHigh bool
	if p1.IsZero() {
		active, fixedHigh = p0, false
	} else {
		active, fixedHigh = p1, true
	}

	fv := m.nodes[f.node].v
	switch {
	case fv == pv:
		_, f0, f1 := f.RootDecomp()
		if fixedHigh {
			return m.restrict(f1, active)
		}

		return m.restrict(f0, active)
	case fv < pv:
		_, f0, f1 := f.RootDecomp()

		return m.Ite(m.Var(fv), m.restrict(f1, pat), m.restrict(f0, pat))
	default: // fv > pv: f does not depend on pv, skip it in the cube
		return m.restrict(f, active)
	}
}

// OnePath returns a cube describing one satisfying assignment of f.
//
// Precondition: !f.IsZero().
func (f Function) OnePath() Function {
	invariant(!f.IsZero(), "bdd: OnePath called on the zero function")

	if f.IsOne() {
		return f
	}

	top, f0, f1 := f.RootDecomp()
	m := f.mgr
	if !f1.IsZero() {
		return m.Var(top).And(f1.OnePath())
	}

	return m.Var(top).Not().And(f0.OnePath())
}

// ZeroPath returns a cube describing one assignment that makes f false.
//
// Precondition: !f.IsOne().
func (f Function) ZeroPath() Function {
	invariant(!f.IsOne(), "bdd: ZeroPath called on the one function")

	if f.IsZero() {
		return f.mgr.One()
	}

	top, f0, f1 := f.RootDecomp()
	m := f.mgr
	if !f0.IsOne() {
		return m.Var(top).Not().And(f0.ZeroPath())
	}

	return m.Var(top).And(f1.ZeroPath())
}

// Support returns the set of variables f depends on.
func (f Function) Support() support.Set {
	if cached, ok := f.mgr.supportCache[f.node]; ok {
		return cached
	}
	if f.IsConst() {
		return support.Set{}
	}

	n := f.mgr.nodes[f.node]
	lo := Function{f.mgr, n.low.node, n.low.inv}
	hi := Function{f.mgr, n.high.node, n.high.inv}

	s := support.New(n.v).Union(lo.Support()).Union(hi.Support())
	f.mgr.supportCache[f.node] = s

	return s
}
