package dsd

import (
	"fmt"
	"io"
)

// Print writes an unstable, human-readable dump of the decomposition graph
// rooted at e to w: a line for the root edge, then for each node a header
// line followed by one line per child edge, each child referencing its node
// by ID. The format is for debugging only and carries no compatibility
// guarantee across versions.
func Print(w io.Writer, e Edge) {
	visited := make(map[uint32]bool)
	printEdge(w, e, visited)
}

func printEdge(w io.Writer, e Edge, visited map[uint32]bool) {
	if e.IsConst() {
		if e.IsOne() {
			fmt.Fprintln(w, "ONE")
		} else {
			fmt.Fprintln(w, "ZERO")
		}

		return
	}

	sign := ""
	if e.inv {
		sign = "~"
	}
	fmt.Fprintf(w, "%s#%d\n", sign, e.node.id)
	printNode(w, e.node, visited)
}

func printNode(w io.Writer, n *Node, visited map[uint32]bool) {
	if visited[n.id] {
		return
	}
	visited[n.id] = true

	switch n.kind {
	case Lit:
		fmt.Fprintf(w, "#%d = LIT v%d\n", n.id, n.Top())
	default:
		fmt.Fprintf(w, "#%d = %s support=%v\n", n.id, n.kind, n.sup.Vars())
		for _, c := range n.children {
			sign := ""
			if c.inv {
				sign = "~"
			}
			fmt.Fprintf(w, "  -> %s#%d\n", sign, c.node.id)
		}
		for _, c := range n.children {
			printNode(w, c.node, visited)
		}
	}
}
