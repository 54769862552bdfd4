package bdd

import "github.com/katalvlaran/dsd-decomp/support"

// iteKey is the memoization key for the Ite computed table.
type iteKey struct {
	c, t, e edge
}

// cofactors returns the (var=0, var=1) restriction of e with respect to v.
// If the node at e does not depend on v, both cofactors equal e itself.
func (m *Manager) cofactors(e edge, v support.Var) (lo, hi edge) {
	if e.node == terminalIndex {
		return e, e
	}

	n := m.nodes[e.node]
	if n.v != v {
		return e, e
	}

	lo = edge{n.low.node, n.low.inv != e.inv}
	hi = edge{n.high.node, n.high.inv != e.inv}

	return lo, hi
}

func (m *Manager) topVar(edges ...edge) (v support.Var, found bool) {
	first := true
	for _, e := range edges {
		if e.node == terminalIndex {
			continue
		}
		nv := m.nodes[e.node].v
		if first || nv < v {
			v = nv
			first = false
		}
	}

	return v, !first
}

// ite computes if-then-else over raw edges, memoizing on the operand triple.
func (m *Manager) ite(c, t, e edge) edge {
	// Terminal cases.
	switch {
	case c.node == terminalIndex && !c.inv: // c == 1
		return t
	case c.node == terminalIndex && c.inv: // c == 0
		return e
	case t == e:
		return t
	case t.node == terminalIndex && !t.inv && e.node == terminalIndex && e.inv:
		// ite(c, 1, 0) == c
		return c
	case t.node == terminalIndex && t.inv && e.node == terminalIndex && !e.inv:
		// ite(c, 0, 1) == ~c
		return edge{c.node, !c.inv}
	}

	// Canonical cache key: normalize so the cache is insensitive to the
	// trivial ite(c,t,e) == ite(~c,e,t) symmetry.
	if c.inv {
		c, t, e = edge{c.node, false}, e, t
	}
	key := iteKey{c, t, e}
	if f, ok := m.iteCache[key]; ok {
		return edge{f.node, f.inv}
	}

	v, ok := m.topVar(c, t, e)
	invariant(ok, "bdd: ite reached a non-terminal recursion with only terminal operands")

	c0, c1 := m.cofactors(c, v)
	t0, t1 := m.cofactors(t, v)
	e0, e1 := m.cofactors(e, v)

	lo := m.ite(c0, t0, e0)
	hi := m.ite(c1, t1, e1)

	result := m.getNode(v, lo, hi)
	m.iteCache[key] = Function{mgr: m, node: result.node, inv: result.inv}

	return result
}

// Ite returns the function that equals t wherever c is true and e wherever
// c is false.
func (m *Manager) Ite(c, t, e Function) Function {
	m.own(c)
	m.own(t)
	m.own(e)

	res := m.ite(edge{c.node, c.inv}, edge{t.node, t.inv}, edge{e.node, e.inv})

	return Function{mgr: m, node: res.node, inv: res.inv}
}
