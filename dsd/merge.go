package dsd

import (
	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
)

// merge combines the two cofactors of a function with respect to its top
// variable into the DG edge for the whole function: r0 is the cofactor for
// top=0, r1 for top=1.
func (m *Manager) merge(top support.Var, r0, r1 Edge) Edge {
	if m.logger != nil {
		m.logger.Debug("dsd: merge", "var", top)
	}

	switch {
	case r0.IsZero() && r1.IsOne():
		return m.makeLit(top)
	case r0.IsZero():
		return m.makeLitAnd(top, false, r1)
	case r1.IsZero() && r0.IsOne():
		return m.makeLit(top).Not()
	case r1.IsZero():
		return m.makeLitAnd(top, true, r0)
	case r0.IsOne():
		return m.makeLitOr(top, true, r1)
	case r1.IsOne():
		return m.makeLitOr(top, false, r0)
	case checkComplement(r0, r1):
		return m.makeLitXor(top, false, r0)
	}

	inv0, inv1 := r0.inv, r1.inv
	node0, node1 := r0.node, r1.node

	common, rest0, rest1 := scanChildren(node0, node1)

	if len(common) >= 1 && inv0 == inv1 && node0.kind == Or && node1.kind == Or {
		return m.case1Or(top, common, rest0, rest1).Xor(inv0)
	}
	if len(common) >= 1 && node0.kind == Xor && node1.kind == Xor {
		return m.case1Xor(top, common, rest0, rest1, inv0, inv1)
	}

	if node0.kind == Or {
		if pos, ok := findChild(node0, r1, inv0); ok {
			return m.case2Or(top, true, node0, inv0, pos)
		}
	}
	if node1.kind == Or {
		if pos, ok := findChild(node1, r0, inv1); ok {
			return m.case2Or(top, false, node1, inv1, pos)
		}
	}

	if node0.kind == Xor {
		if pos, ok := findChildNode(node0, node1); ok {
			return m.case2Xor(top, true, node0, inv0, pos, inv1)
		}
	}
	if node1.kind == Xor {
		if pos, ok := findChildNode(node1, node0); ok {
			return m.case2Xor(top, false, node1, inv1, pos, inv0)
		}
	}

	f0 := m.globalFunc(r0)
	f1 := m.globalFunc(r1)
	lit := m.BDD().Var(top)
	f := m.BDD().Ite(lit, f1, f0)

	if node0.kind == Cplx && node1.kind == Cplx && len(rest0) == 1 && len(rest1) == 1 {
		if m.cplxPatternsAgree(f0, rest0[0], f1, rest1[0]) {
			return m.case1Cplx(f, top, rest0[0], rest1[0], common)
		}
		if m.cplxPatternsAgree(f0, rest0[0].Not(), f1, rest1[0]) {
			return m.case1Cplx(f, top, rest0[0].Not(), rest1[0], common)
		}
	}

	if node0.kind == Cplx && node1.kind == Cplx && len(rest0) == 0 && len(rest1) == 0 {
		for i, c := range common {
			if m.cplxCrossPatternsAgree(f0, c, f1) {
				return m.case1Cplx2(f, top, common, i)
			}
		}
	}

	if !f0.Support().Overlaps(f1.Support()) {
		return m.makeCplx(f, []Edge{m.makeLit(top), r0, r1})
	}

	if node0.kind == Cplx {
		if cedge, ok := disjointChild(node0, f1.Support()); ok {
			switch {
			case f0.Restrict(m.pat0(cedge)).Equal(f1):
				return m.case2Cplx(f, top, cedge, true, true, node0)
			case f0.Restrict(m.pat1(cedge)).Equal(f1):
				return m.case2Cplx(f, top, cedge, false, false, node0)
			}
		}
	}
	if node1.kind == Cplx {
		if cedge, ok := disjointChild(node1, f0.Support()); ok {
			switch {
			case f1.Restrict(m.pat0(cedge)).Equal(f0):
				return m.case2Cplx(f, top, cedge, false, true, node1)
			case f1.Restrict(m.pat1(cedge)).Equal(f0):
				return m.case2Cplx(f, top, cedge, true, false, node1)
			}
		}
	}

	return m.lastResort(f, top, r0, r1)
}

// pat1 returns the one-path cube of e, accounting for e's inversion bit:
// an inverted edge's "drive toward one" path is its node's drive-toward-zero
// path, and vice versa.
func (m *Manager) pat1(e Edge) bdd.Function {
	invariant(!e.IsConst(), "dsd: pat1 called on a constant edge")
	if e.inv {
		return e.node.pat0
	}

	return e.node.pat1
}

func (m *Manager) pat0(e Edge) bdd.Function {
	invariant(!e.IsConst(), "dsd: pat0 called on a constant edge")
	if e.inv {
		return e.node.pat1
	}

	return e.node.pat0
}

// cplxPatternsAgree checks the Case1-CPLX type1 condition: restricting each
// side's global function by the candidate child's pattern cubes yields the
// same pair of results on both sides.
func (m *Manager) cplxPatternsAgree(f0 bdd.Function, c0 Edge, f1 bdd.Function, c1 Edge) bool {
	return f0.Restrict(m.pat0(c0)).Equal(f1.Restrict(m.pat0(c1))) &&
		f0.Restrict(m.pat1(c0)).Equal(f1.Restrict(m.pat1(c1)))
}

// cplxCrossPatternsAgree checks the Case1-CPLX type2 condition: a single
// common child c whose two pattern cubes cross-agree between f0 and f1.
func (m *Manager) cplxCrossPatternsAgree(f0 bdd.Function, c Edge, f1 bdd.Function) bool {
	return f0.Restrict(m.pat0(c)).Equal(f1.Restrict(m.pat1(c))) &&
		f0.Restrict(m.pat1(c)).Equal(f1.Restrict(m.pat0(c)))
}

// scanChildren two-pointer merges node0's and node1's raw children, ordered
// ascending by Top(), splitting them into the edges shared by both
// (common), and the edges private to node0 and node1 respectively (rest0,
// rest1). Children are compared and stored exactly as they sit in each
// node's child list, with no outer inversion bit folded in: each merge case
// that needs node0's or node1's own inversion applies it itself, either once
// to the whole recombined result (case1Or, at its call site in merge) or once
// per recombined sub-fold (case1Xor, exploiting XOR's linearity) — folding
// it into every individual child first is not equivalent to either and
// corrupts both the OR/XOR fold and the common-child equality test.
func scanChildren(node0, node1 *Node) (common, rest0, rest1 []Edge) {
	var i, j int
	for i < node0.childCount() && j < node1.childCount() {
		t0 := node0.childAt(i).node.Top()
		t1 := node1.childAt(j).node.Top()

		switch {
		case t0 < t1:
			rest0 = append(rest0, node0.childAt(i))
			i++
		case t0 > t1:
			rest1 = append(rest1, node1.childAt(j))
			j++
		default:
			c0 := node0.childAt(i)
			c1 := node1.childAt(j)
			if c0 == c1 {
				common = append(common, c0)
			} else {
				rest0 = append(rest0, c0)
				rest1 = append(rest1, c1)
			}
			i++
			j++
		}
	}
	for ; i < node0.childCount(); i++ {
		rest0 = append(rest0, node0.childAt(i))
	}
	for ; j < node1.childCount(); j++ {
		rest1 = append(rest1, node1.childAt(j))
	}

	return common, rest0, rest1
}

// findChild returns the index of node's child equal to target once node's
// outer inversion bit is folded in, if any.
func findChild(node *Node, target Edge, inv bool) (int, bool) {
	for i := 0; i < node.childCount(); i++ {
		if node.childAt(i).Xor(inv) == target {
			return i, true
		}
	}

	return 0, false
}

// findChildNode returns the index of node's child whose underlying node
// pointer equals other, ignoring polarity.
func findChildNode(node, other *Node) (int, bool) {
	for i := 0; i < node.childCount(); i++ {
		if node.childAt(i).node == other {
			return i, true
		}
	}

	return 0, false
}

// disjointChild returns the first child of node whose support does not
// overlap sup, if any.
func disjointChild(node *Node, sup support.Set) (Edge, bool) {
	for i := 0; i < node.childCount(); i++ {
		c := node.childAt(i)
		if !c.node.Support().Overlaps(sup) {
			return c, true
		}
	}

	return Edge{}, false
}
