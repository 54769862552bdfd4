package dsd

import (
	"sort"

	"github.com/katalvlaran/dsd-decomp/bdd"
)

// globalFunc returns the Boolean function e denotes, folding in e's own
// inversion bit.
func (m *Manager) globalFunc(e Edge) bdd.Function {
	if e.IsConst() {
		if e.IsOne() {
			return m.bddMgr.One()
		}

		return m.bddMgr.Zero()
	}

	f := e.node.globalFunc
	if e.inv {
		return f.Not()
	}

	return f
}

func sortByTop(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].node.Top() < edges[j].node.Top()
	})
}

// makeLit returns the DG edge for the literal of variable v, building and
// registering a new Lit node the first time v is requested.
func (m *Manager) makeLit(v uint32) Edge {
	f := m.bddMgr.Var(v)
	if e, ok := m.findNode(f); ok {
		return e
	}

	n := m.newNode(Lit, f, f.OnePath(), f.ZeroPath(), nil)
	result := Edge{node: n, inv: false}
	m.putNode(f, result)

	return result
}

// makeOr returns the DG edge for the disjunction of children, flattening
// any un-inverted Or-kind child directly into the result and hash-consing
// against any equivalent Or node already built.
func (m *Manager) makeOr(children []Edge) Edge {
	switch len(children) {
	case 0:
		return Zero
	case 1:
		return children[0]
	}

	f := m.bddMgr.Zero()
	for _, c := range children {
		f = f.Or(m.globalFunc(c))
	}
	if f.IsZero() {
		return Zero
	}
	if f.IsOne() {
		return One
	}
	if e, ok := m.findNode(f); ok {
		return e
	}

	flat := make([]Edge, 0, len(children))
	for _, c := range children {
		if c.IsZero() {
			continue
		}
		if !c.IsConst() && !c.inv && c.node.kind == Or {
			flat = append(flat, c.node.children...)

			continue
		}
		flat = append(flat, c)
	}
	sortByTop(flat)

	n := m.newNode(Or, f, f.OnePath(), f.ZeroPath(), flat)
	result := Edge{node: n, inv: false}
	m.putNode(f, result)

	return result
}

// makeXor returns the DG edge for the parity of children. XOR is linear: a
// child's inversion bit collapses into a single accumulated sign (oinv)
// rather than surviving per-child, and any Xor-kind child's own children
// splice directly into the flattened list whatever that child's polarity,
// its inversion bit folding into oinv as well.
func (m *Manager) makeXor(children []Edge) Edge {
	switch len(children) {
	case 0:
		return Zero
	case 1:
		return children[0]
	}

	f := m.bddMgr.Zero()
	for _, c := range children {
		f = f.Xor(m.globalFunc(c))
	}
	if f.IsZero() {
		return Zero
	}
	if f.IsOne() {
		return One
	}
	if e, ok := m.findNode(f); ok {
		return e
	}

	var oinv bool
	flat := make([]Edge, 0, len(children))
	for _, c := range children {
		if c.IsConst() {
			if c.IsOne() {
				oinv = !oinv
			}

			continue
		}
		if c.node.kind == Xor {
			for _, gc := range c.node.children {
				oinv = oinv != gc.inv
				flat = append(flat, gc.normal())
			}
			oinv = oinv != c.inv

			continue
		}
		oinv = oinv != c.inv
		flat = append(flat, c.normal())
	}
	sortByTop(flat)

	nodeFunc := m.bddMgr.Zero()
	for _, c := range flat {
		nodeFunc = nodeFunc.Xor(c.node.globalFunc)
	}

	resultInv := !nodeFunc.Equal(f)
	invariant(resultInv == oinv, "dsd: xor node sign bookkeeping disagreed with folded function")

	n := m.newNode(Xor, nodeFunc, nodeFunc.OnePath(), nodeFunc.ZeroPath(), flat)
	result := Edge{node: n, inv: resultInv}
	m.putNode(f, result)

	return result
}

// makeCplx returns the DG edge for a complex (not simply OR/XOR) node
// realizing f, with the given children kept only for structural sharing —
// f itself, not a fold of the children, is the node's meaning.
func (m *Manager) makeCplx(f bdd.Function, children []Edge) Edge {
	if f.IsZero() {
		return Zero
	}
	if f.IsOne() {
		return One
	}
	if e, ok := m.findNode(f); ok {
		return e
	}

	flat := make([]Edge, len(children))
	for i, c := range children {
		flat[i] = c.normal()
	}
	sortByTop(flat)

	inv := f.RootInv()
	nodeFunc := f
	if inv {
		nodeFunc = f.Not()
	}

	n := m.newNode(Cplx, nodeFunc, nodeFunc.OnePath(), nodeFunc.ZeroPath(), flat)
	result := Edge{node: n, inv: inv}
	m.putNode(f, result)

	return result
}

// makeLitAnd returns make_or({~lit, ~e}) negated, i.e. lit AND e, via De
// Morgan — matching the original's derivation of AND purely from OR/NOT.
func (m *Manager) makeLitAnd(v uint32, inv bool, e Edge) Edge {
	lit := m.makeLit(v).Xor(inv)

	return m.makeOr([]Edge{lit.Not(), e.Not()}).Not()
}

// makeLitOr returns lit OR e.
func (m *Manager) makeLitOr(v uint32, inv bool, e Edge) Edge {
	lit := m.makeLit(v).Xor(inv)

	return m.makeOr([]Edge{lit, e})
}

// makeLitXor returns lit XOR e.
func (m *Manager) makeLitXor(v uint32, inv bool, e Edge) Edge {
	lit := m.makeLit(v).Xor(inv)

	return m.makeXor([]Edge{lit, e})
}
