package dsd

import (
	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
)

// Kind distinguishes the four shapes a DG node can take.
type Kind uint8

const (
	// Lit is a leaf node representing a single variable.
	Lit Kind = iota
	// Or is an internal node whose children combine disjunctively.
	Or
	// Xor is an internal node whose children combine via parity.
	Xor
	// Cplx is an internal node whose local function is not a simple OR
	// or XOR of its children — the catch-all, least-structured case.
	Cplx
)

func (k Kind) String() string {
	switch k {
	case Lit:
		return "LIT"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Cplx:
		return "CPLX"
	default:
		return "?"
	}
}

// Node is one node of a decomposition graph: a Boolean function together
// with the disjoint-support children it was built from (none, for a Lit
// leaf). Nodes are immutable once constructed and owned by the Manager's
// arena; callers only ever see them through Edge values.
type Node struct {
	id  uint32
	kind Kind

	// globalFunc is this node's own function, always at the polarity the
	// Manager chose when the node was created; callers reach it only
	// through an Edge, whose inversion bit may flip it.
	globalFunc bdd.Function
	sup        support.Set

	// pat1, pat0 are satisfying cubes toward the one and zero terminal of
	// globalFunc, used by the CPLX merge cases' pattern checks.
	pat1, pat0 bdd.Function

	children []Edge // nil for Lit
}

// ID returns the node's arena-assigned identity, stable for the lifetime of
// the owning Manager and unique within it. Useful for diagnostics only; it
// carries no meaning across Managers.
func (n *Node) ID() uint32 { return n.id }

// Kind reports the node's shape.
func (n *Node) Kind() Kind { return n.kind }

// GlobalFunc returns the Boolean function this node represents, at the
// polarity it was stored with (see Edge.Inv for the caller-side sign).
func (n *Node) GlobalFunc() bdd.Function { return n.globalFunc }

// Support returns the set of variables this node's function depends on.
func (n *Node) Support() support.Set { return n.sup }

// Pat1 returns a cube describing one assignment driving this node's
// function to true.
func (n *Node) Pat1() bdd.Function { return n.pat1 }

// Pat0 returns a cube describing one assignment driving this node's
// function to false.
func (n *Node) Pat0() bdd.Function { return n.pat0 }

// Top returns the smallest-indexed variable this node depends on.
func (n *Node) Top() support.Var { return n.sup.Top() }

// Children returns a copy of this node's child edges, ordered ascending by
// Top(). A Lit node has no children and returns nil.
func (n *Node) Children() []Edge {
	if len(n.children) == 0 {
		return nil
	}

	out := make([]Edge, len(n.children))
	copy(out, n.children)

	return out
}

func (n *Node) childAt(i int) Edge { return n.children[i] }

func (n *Node) childCount() int { return len(n.children) }
