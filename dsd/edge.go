package dsd

// Edge is a tagged reference to a DG node: a node pointer paired with an
// inversion bit, exactly as DgEdge packs a node pointer and a polarity bit
// into one machine word in the original implementation. A nil node marks a
// constant edge; the inversion bit then selects which constant it is,
// mirroring how a node's own low child is never itself inverted.
type Edge struct {
	node *Node
	inv  bool
}

// Zero is the constant-false DG edge.
var Zero = Edge{node: nil, inv: true}

// One is the constant-true DG edge.
var One = Edge{node: nil, inv: false}

// IsConst reports whether e is one of the two constant edges.
func (e Edge) IsConst() bool {
	return e.node == nil
}

// IsZero reports whether e is the constant-false edge.
func (e Edge) IsZero() bool {
	return e.node == nil && e.inv
}

// IsOne reports whether e is the constant-true edge.
func (e Edge) IsOne() bool {
	return e.node == nil && !e.inv
}

// Node returns the DG node e points to.
//
// Precondition: !e.IsConst().
func (e Edge) Node() *Node {
	invariant(!e.IsConst(), "dsd: Node() called on a constant edge")

	return e.node
}

// Inv reports the inversion bit carried by e.
func (e Edge) Inv() bool {
	return e.inv
}

// Not returns the logical complement of e: same node, flipped inversion bit.
func (e Edge) Not() Edge {
	return Edge{node: e.node, inv: !e.inv}
}

// Xor returns e if b is false, or e.Not() if b is true. It is the Go
// counterpart of the original operator^(bool).
func (e Edge) Xor(b bool) Edge {
	if !b {
		return e
	}

	return e.Not()
}

// normal strips e's inversion bit, returning the same node at positive
// polarity. Constant edges normalize to One.
func (e Edge) normal() Edge {
	return Edge{node: e.node, inv: false}
}

// checkComplement reports whether a and b reference the same node with
// opposite polarity, i.e. b == ~a.
func checkComplement(a, b Edge) bool {
	return a.node == b.node && a.inv != b.inv
}
