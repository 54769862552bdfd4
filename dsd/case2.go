package dsd

import (
	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
)

// case2Or handles the Case2-OR merge: one cofactor equals (up to polarity)
// one child of the other cofactor's OR node. That child factors out of the
// OR entirely; the remaining children get AND'd with the current variable's
// literal, since only that branch needs them.
func (m *Manager) case2Or(top support.Var, litInv bool, node *Node, oinv bool, pos int) Edge {
	rest := make([]Edge, 0, node.childCount()-1)
	for i := 0; i < node.childCount(); i++ {
		if i == pos {
			continue
		}
		rest = append(rest, node.childAt(i))
	}

	tmpEdge := m.makeOr(rest)
	andEdge := m.makeLitAnd(top, litInv, tmpEdge)

	return m.makeOr([]Edge{andEdge, node.childAt(pos)}).Xor(oinv)
}

// case2Xor handles the Case2-XOR merge, the parity analogue of case2Or: one
// cofactor's underlying node equals the other cofactor's XOR node at some
// child position, independent of either side's polarity.
func (m *Manager) case2Xor(top support.Var, litInv bool, node *Node, oinv bool, pos int, inv1 bool) Edge {
	rest := make([]Edge, 0, node.childCount()-1)
	for i := 0; i < node.childCount(); i++ {
		if i == pos {
			continue
		}
		rest = append(rest, node.childAt(i))
	}

	tmpEdge := m.makeXor(rest).Xor(oinv)

	var combined Edge
	if inv1 {
		combined = m.makeLitOr(top, !litInv, tmpEdge)
	} else {
		combined = m.makeLitAnd(top, litInv, tmpEdge)
	}

	return m.makeXor([]Edge{combined, node.childAt(pos)})
}

// case2Cplx handles the Case2-CPLX merge: a CPLX node has a child cedge
// whose support is disjoint from the other cofactor's support, and one of
// cedge's pattern cubes restricts the node's global function to exactly
// that other cofactor. The child is replaced in place by the AND/OR of the
// current variable's literal with cedge, and the node is rebuilt.
func (m *Manager) case2Cplx(f bdd.Function, top support.Var, cedge Edge, litInv, isAnd bool, node *Node) Edge {
	var newEdge Edge
	if isAnd {
		newEdge = m.makeLitAnd(top, litInv, cedge)
	} else {
		newEdge = m.makeLitOr(top, litInv, cedge)
	}

	tmpList := make([]Edge, node.childCount())
	for i := 0; i < node.childCount(); i++ {
		c := node.childAt(i)
		if c == cedge {
			tmpList[i] = newEdge
		} else {
			tmpList[i] = c
		}
	}

	return m.makeCplx(f, tmpList)
}
