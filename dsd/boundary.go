package dsd

import (
	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
)

// nodeMark is the scratch state for the last-resort boundary search: three
// per-node tags built up over a single call, discarded afterward. A node's
// zero value in any of these maps means "not yet visited", exactly as the
// original's lazily-initialized per-node Info record.
//
//   - mark:    which of the two cofactor cones (1, 2, or both via 1|2) can
//     reach this node.
//   - tfimark: the mark value propagated forward through the node's
//     transitive fanin; equal to mark iff the node sits on the boundary
//     between the two cones.
//   - bmark:   1 once a node is classified as boundary, 2 once visited and
//     found interior, 3 once its contribution has been emitted into the
//     result so it is never emitted twice.
type nodeMark struct {
	mark    map[*Node]uint8
	tfimark map[*Node]uint8
	bmark   map[*Node]uint8
}

func newNodeMark() *nodeMark {
	return &nodeMark{
		mark:    make(map[*Node]uint8),
		tfimark: make(map[*Node]uint8),
		bmark:   make(map[*Node]uint8),
	}
}

func (m *Manager) markRecur(nm *nodeMark, node *Node, mval uint8) {
	if nm.mark[node]&mval != 0 {
		return
	}
	nm.mark[node] |= mval
	for i := 0; i < node.childCount(); i++ {
		m.markRecur(nm, node.childAt(i).node, mval)
	}
}

func (m *Manager) tfimarkRecur(nm *nodeMark, node *Node) uint8 {
	if v, ok := nm.tfimark[node]; ok {
		return v
	}

	val := nm.mark[node]
	if val < 3 {
		for i := 0; i < node.childCount(); i++ {
			if m.tfimarkRecur(nm, node.childAt(i).node) == 3 {
				val = 3
			}
		}
	}
	nm.tfimark[node] = val

	return val
}

// getBoundary classifies node as boundary (bmark 1: its mark equals its
// tfimark, so it is either reached by both cofactor cones or reached by one
// cone with no node below it reached by both) or interior (bmark 2), and
// collects any interior OR/XOR node with two or more boundary children into
// orList/xorList — those are the candidates findUncommonInputs and
// findCommonInputs will bundle.
func (m *Manager) getBoundary(nm *nodeMark, node *Node, orList, xorList *[]*Node) uint8 {
	if bm := nm.bmark[node]; bm != 0 {
		return bm
	}

	if nm.mark[node] == nm.tfimark[node] {
		nm.bmark[node] = 1

		return 1
	}

	nm.bmark[node] = 2
	n := 0
	for i := 0; i < node.childCount(); i++ {
		if m.getBoundary(nm, node.childAt(i).node, orList, xorList) == 1 {
			n++
		}
	}
	if n >= 2 {
		switch node.kind {
		case Or:
			*orList = append(*orList, node)
		case Xor:
			*xorList = append(*xorList, node)
		}
	}

	return 2
}

// findUncommonInputs bundles, for each boundary-rich node in nodeList, the
// boundary children reachable only from the cofactor cone tagged mval into
// one OR or XOR edge (matching the node's own kind), and marks those
// children emitted so they are not considered again.
func (m *Manager) findUncommonInputs(nm *nodeMark, nodeList []*Node, mval uint8) []Edge {
	var out []Edge
	for _, node := range nodeList {
		var bundle []Edge
		for i := 0; i < node.childCount(); i++ {
			c := node.childAt(i)
			if nm.bmark[c.node] == 1 && nm.mark[c.node] == mval {
				bundle = append(bundle, c)
			}
		}
		if len(bundle) <= 1 {
			continue
		}

		var e Edge
		if node.kind == Or {
			e = m.makeOr(bundle)
		} else {
			e = m.makeXor(bundle)
		}
		out = append(out, e)
		for _, c := range bundle {
			nm.bmark[c.node] = 3
		}
	}

	return out
}

// findCommonInputs pairs nodes from list1 against list2, looking for
// boundary children (bmark 1, not yet emitted) reached by both cones
// (mark 3) and shared by both nodes, marks them emitted (bmark 3), and
// bundles the overlap — or reuses one side's whole node when the overlap
// covers it exactly — into a shared input edge.
func (m *Manager) findCommonInputs(nm *nodeMark, list1, list2 []*Node) []Edge {
	var out []Edge
	for _, n1 := range list1 {
		commonSet := make(map[*Node]bool)
		n1Children := nodeChildren(n1)
		for _, c := range n1Children {
			if nm.bmark[c] == 1 && nm.mark[c] == 3 {
				commonSet[c] = true
			}
		}

		for _, n2 := range list2 {
			n2Children := nodeChildren(n2)
			var inter []*Node
			for _, c := range n2Children {
				if nm.bmark[c] == 1 && commonSet[c] {
					inter = append(inter, c)
				}
			}
			if len(inter) <= 1 {
				continue
			}

			switch {
			case sameNodeSet(inter, n1Children):
				out = append(out, Edge{node: n1, inv: false})
			case sameNodeSet(inter, n2Children):
				out = append(out, Edge{node: n2, inv: false})
			default:
				edges := make([]Edge, len(inter))
				for i, c := range inter {
					edges[i] = Edge{node: c, inv: false}
				}
				if n1.kind == Or {
					out = append(out, m.makeOr(edges))
				} else {
					out = append(out, m.makeXor(edges))
				}
			}
			for _, c := range inter {
				nm.bmark[c] = 3
			}
		}
	}

	return out
}

// findBnode walks node's transitive fanin collecting boundary nodes
// (bmark 1) into inputs, skipping anything already emitted (bmark 3) by an
// earlier findUncommonInputs/findCommonInputs pass.
func (m *Manager) findBnode(nm *nodeMark, node *Node, inputs *[]Edge) {
	if nm.bmark[node] != 3 {
		if nm.bmark[node] == 1 {
			*inputs = append(*inputs, Edge{node: node, inv: false})
		} else {
			for i := 0; i < node.childCount(); i++ {
				m.findBnode(nm, node.childAt(i).node, inputs)
			}
		}
	}
	nm.bmark[node] = 3
}

// lastResort builds a CPLX node directly from the boundary analysis when no
// merge case applies: the two cofactor cones' maximal common sub-supports,
// wherever they exist, become shared inputs; everything else is emitted as
// found, and the current variable's literal joins the input list last.
func (m *Manager) lastResort(f bdd.Function, top support.Var, r0, r1 Edge) Edge {
	nm := newNodeMark()
	m.markRecur(nm, r0.node, 1)
	m.markRecur(nm, r1.node, 2)
	m.tfimarkRecur(nm, r0.node)
	m.tfimarkRecur(nm, r1.node)

	var orList0, xorList0, orList1, xorList1 []*Node
	m.getBoundary(nm, r0.node, &orList0, &xorList0)
	m.getBoundary(nm, r1.node, &orList1, &xorList1)

	var inputs []Edge
	inputs = append(inputs, m.findUncommonInputs(nm, orList0, 1)...)
	inputs = append(inputs, m.findUncommonInputs(nm, orList1, 2)...)
	inputs = append(inputs, m.findUncommonInputs(nm, xorList0, 1)...)
	inputs = append(inputs, m.findUncommonInputs(nm, xorList1, 2)...)
	inputs = append(inputs, m.findCommonInputs(nm, orList0, orList1)...)
	inputs = append(inputs, m.findCommonInputs(nm, xorList0, xorList1)...)

	m.findBnode(nm, r0.node, &inputs)
	m.findBnode(nm, r1.node, &inputs)

	inputs = append(inputs, m.makeLit(top))

	return m.makeCplx(f, inputs)
}

func nodeChildren(n *Node) []*Node {
	out := make([]*Node, n.childCount())
	for i := range out {
		out[i] = n.childAt(i).node
	}

	return out
}

func sameNodeSet(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[*Node]bool, len(b))
	for _, n := range b {
		set[n] = true
	}
	for _, n := range a {
		if !set[n] {
			return false
		}
	}

	return true
}
