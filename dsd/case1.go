package dsd

import (
	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
)

// case1Or handles the Case1-OR merge: both cofactors are OR nodes that
// share at least one common child at the same polarity. The shared children
// factor straight out; only the private remainders need a further merge at
// the current variable.
func (m *Manager) case1Or(top support.Var, common, rest0, rest1 []Edge) Edge {
	tmp0 := m.makeOr(rest0)
	tmp1 := m.makeOr(rest1)
	newEdge := m.merge(top, tmp0, tmp1)

	return m.makeOr(append([]Edge{newEdge}, common...))
}

// case1Xor handles the Case1-XOR merge, the parity analogue of case1Or.
func (m *Manager) case1Xor(top support.Var, common, rest0, rest1 []Edge, inv0, inv1 bool) Edge {
	tmp0 := m.makeXor(rest0).Xor(inv0)
	tmp1 := m.makeXor(rest1).Xor(inv1)
	newEdge := m.merge(top, tmp0, tmp1)

	return m.makeXor(append([]Edge{newEdge}, common...))
}

// case1Cplx handles the Case1-CPLX type1 merge: both cofactors are CPLX
// nodes with exactly one private child each, and those two private children
// agree closely enough (per cplxPatternsAgree) that they too can be reduced
// to a further merge instead of a fresh opaque node.
func (m *Manager) case1Cplx(f bdd.Function, top support.Var, rest0, rest1 Edge, common []Edge) Edge {
	newEdge := m.merge(top, rest0, rest1)

	return m.makeCplx(f, append([]Edge{newEdge}, common...))
}

// case1Cplx2 handles the Case1-CPLX type2 merge: both cofactors are CPLX
// nodes with no private children, but one shared child c satisfies the
// cross pattern agreement — c's contribution becomes XOR'd with the current
// variable in place.
func (m *Manager) case1Cplx2(f bdd.Function, top support.Var, children []Edge, pos int) Edge {
	tmp := make([]Edge, len(children))
	copy(tmp, children)
	tmp[pos] = m.makeLitXor(top, false, tmp[pos])

	return m.makeCplx(f, tmp)
}
