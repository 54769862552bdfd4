package dsd

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectNodes walks e's transitive fanin once, returning every distinct
// node reached.
func collectNodes(e Edge, seen map[uint32]*Node) {
	if e.IsConst() {
		return
	}
	if _, ok := seen[e.node.id]; ok {
		return
	}
	seen[e.node.id] = e.node
	for _, c := range e.node.children {
		collectNodes(c, seen)
	}
}

func TestPropertySoundness(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	f := x.And(y)

	result := m.Decomp(f)
	assert.True(t, m.globalFunc(result).Equal(f))
}

func TestPropertyDisjointSupports(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	z := m.BDD().Var(2)
	f := x.And(y).Or(z)

	result := m.Decomp(f)

	nodes := map[uint32]*Node{}
	collectNodes(result, nodes)
	for _, n := range nodes {
		for i := 0; i < n.childCount(); i++ {
			for j := i + 1; j < n.childCount(); j++ {
				ci, cj := n.childAt(i).node, n.childAt(j).node
				assert.False(t, ci.Support().Overlaps(cj.Support()),
					"node #%d children #%d and #%d share a variable", n.id, ci.id, cj.id)
			}
		}
	}
}

func TestPropertyNoUnflattenedOrOfOr(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	z := m.BDD().Var(2)
	f := x.Or(y).Or(z)

	result := m.Decomp(f)
	nodes := map[uint32]*Node{}
	collectNodes(result, nodes)
	for _, n := range nodes {
		if n.kind != Or {
			continue
		}
		for i := 0; i < n.childCount(); i++ {
			c := n.childAt(i)
			assert.False(t, !c.inv && !c.IsConst() && c.node.kind == Or,
				"OR node #%d has an unflattened OR child", n.id)
		}
	}
}

func TestPropertyChildOrdering(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	z := m.BDD().Var(2)
	f := x.Xor(y).Xor(z)

	result := m.Decomp(f)
	nodes := map[uint32]*Node{}
	collectNodes(result, nodes)
	for _, n := range nodes {
		for i := 1; i < n.childCount(); i++ {
			assert.LessOrEqual(t, n.childAt(i-1).node.Top(), n.childAt(i).node.Top())
		}
	}
}

func TestPropertySharingAcrossDecompositions(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	f := x.And(y)

	first := m.Decomp(f)
	second := m.Decomp(f)
	assert.Equal(t, first, second)
}

func TestPropertyOrRoundTrip(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	y := m.BDD().Var(1)
	z := m.BDD().Var(2)
	f := x.Or(y).Or(z)

	result := m.Decomp(f)
	require.False(t, result.IsConst())
	require.Equal(t, Or, result.node.kind)

	rebuilt := m.BDD().Zero()
	for _, c := range result.node.children {
		rebuilt = rebuilt.Or(m.globalFunc(c))
	}
	assert.True(t, rebuilt.Equal(result.node.globalFunc))
}

func TestPropertyPolarityIdempotence(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)
	f := x

	e := m.Decomp(f)
	assert.Equal(t, e, e.Not().Not())
}

func TestPropertyLiteralUniqueness(t *testing.T) {
	m := NewManager()
	a := m.makeLit(3)
	b := m.makeLit(3)
	assert.Equal(t, a, b)
}

// reconstruct re-derives the function e denotes purely from the DG's own
// structure, by post-order evaluation: a Lit or Cplx node is terminal (a
// literal's function is axiomatic and a complex node's function is, by
// definition, not a fold of its children), but an Or or Xor node's function
// is recomputed fresh from its children's own reconstructed functions —
// never read back from the node's cached globalFunc field. A merge that
// wires a node to the wrong children produces a node whose globalFunc
// happens to agree with those wrong children but disagrees with the
// function actually being decomposed; reconstruct catches that the same way
// an independent reread of the graph would.
func (m *Manager) reconstruct(e Edge) bdd.Function {
	if e.IsConst() {
		if e.IsOne() {
			return m.bddMgr.One()
		}

		return m.bddMgr.Zero()
	}

	n := e.node
	var f bdd.Function
	switch n.kind {
	case Lit, Cplx:
		f = n.globalFunc
	case Or:
		f = m.bddMgr.Zero()
		for i := 0; i < n.childCount(); i++ {
			f = f.Or(m.reconstruct(n.childAt(i)))
		}
	case Xor:
		f = m.bddMgr.Zero()
		for i := 0; i < n.childCount(); i++ {
			f = f.Xor(m.reconstruct(n.childAt(i)))
		}
	}

	if e.inv {
		return f.Not()
	}

	return f
}

// randomFunction builds a random Boolean function over variables 0..nVars-1
// by recursively combining literals with And/Or/Xor, bottoming out at a
// (possibly negated) literal once the depth budget runs out or chance says
// so.
func randomFunction(rng *rand.Rand, mgr *bdd.Manager, nVars, depth int) bdd.Function {
	if depth <= 0 || rng.Intn(3) == 0 {
		f := mgr.Var(uint32(rng.Intn(nVars)))
		if rng.Intn(2) == 0 {
			f = f.Not()
		}

		return f
	}

	left := randomFunction(rng, mgr, nVars, depth-1)
	right := randomFunction(rng, mgr, nVars, depth-1)
	switch rng.Intn(3) {
	case 0:
		return left.And(right)
	case 1:
		return left.Or(right)
	default:
		return left.Xor(right)
	}
}

// TestPropertyRandomSampling samples many random functions of up to six
// variables, decomposes each, and checks both that the decomposition's own
// global function equals the input (soundness) and that independently
// walking the DG in post-order and folding Or/Xor nodes from their children
// reproduces the same function.
func TestPropertyRandomSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(20240521))

	const trials = 300
	for trial := 0; trial < trials; trial++ {
		nVars := 1 + rng.Intn(6)
		m := NewManager()
		f := randomFunction(rng, m.BDD(), nVars, 4)

		result := m.Decomp(f)

		require.True(t, m.globalFunc(result).Equal(f),
			"trial %d (%d vars): decomposition does not denote the input function", trial, nVars)

		reconstructed := m.reconstruct(result)
		assert.True(t, reconstructed.Equal(f),
			"trial %d (%d vars): post-order DG reconstruction disagrees with the input function", trial, nVars)
	}
}

// TestMergeCase1OrWithInvertedMultiChildRemainders targets the Case1-OR
// merge with two inverted OR cofactors that each have more than one private
// child beyond their shared literal: NOR(A,B,D) and NOR(A,C,E) share only A.
func TestMergeCase1OrWithInvertedMultiChildRemainders(t *testing.T) {
	m := NewManager()
	top := m.BDD().Var(0)
	a := m.BDD().Var(1)
	b := m.BDD().Var(2)
	d := m.BDD().Var(3)
	c := m.BDD().Var(4)
	e := m.BDD().Var(5)

	f0 := a.Or(b).Or(d).Not()
	f1 := a.Or(c).Or(e).Not()
	f := m.BDD().Ite(top, f1, f0)

	result := m.Decomp(f)
	assert.True(t, m.globalFunc(result).Equal(f))
}

// TestMergeCase1XorWithInvertedOddRemainder targets the Case1-XOR merge
// with an inverted cofactor whose private remainder is a single (odd-count)
// child: XNOR(A,B) and A^C share only A.
func TestMergeCase1XorWithInvertedOddRemainder(t *testing.T) {
	m := NewManager()
	top := m.BDD().Var(0)
	a := m.BDD().Var(1)
	b := m.BDD().Var(2)
	c := m.BDD().Var(3)

	f0 := a.Xor(b).Not()
	f1 := a.Xor(c)
	f := m.BDD().Ite(top, f1, f0)

	result := m.Decomp(f)
	assert.True(t, m.globalFunc(result).Equal(f))
}
