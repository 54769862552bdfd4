package dsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioSingleLiteral(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)

	e := m.Decomp(x)
	require.False(t, e.IsConst())
	assert.Equal(t, Lit, e.node.kind)
}

func TestScenarioNegatedLiteral(t *testing.T) {
	m := NewManager()
	x := m.BDD().Var(0)

	e := m.Decomp(x.Not())
	require.False(t, e.IsConst())
	assert.Equal(t, Lit, e.node.kind)
	assert.True(t, m.globalFunc(e).Equal(x.Not()))
}

func TestScenarioDisjointOr(t *testing.T) {
	m := NewManager()
	a := m.BDD().Var(0)
	b := m.BDD().Var(1)
	c := m.BDD().Var(2)
	f := a.Or(b).Or(c)

	e := m.Decomp(f)
	require.Equal(t, Or, e.node.kind)
	assert.GreaterOrEqual(t, e.node.childCount(), 2)
}

func TestScenarioDisjointXor(t *testing.T) {
	m := NewManager()
	a := m.BDD().Var(0)
	b := m.BDD().Var(1)
	c := m.BDD().Var(2)
	f := a.Xor(b).Xor(c)

	e := m.Decomp(f)
	require.Equal(t, Xor, e.node.kind)
}

func TestScenarioTwoInputAnd(t *testing.T) {
	m := NewManager()
	a := m.BDD().Var(0)
	b := m.BDD().Var(1)
	f := a.And(b)

	e := m.Decomp(f)
	assert.True(t, m.globalFunc(e).Equal(f))
}

func TestScenarioMultiplexer(t *testing.T) {
	// f = s ? a : b, a three-variable function with overlapping supports
	// across both cofactors — expected to bottom out in a CPLX node.
	m := NewManager()
	s := m.BDD().Var(0)
	a := m.BDD().Var(1)
	b := m.BDD().Var(2)
	f := m.BDD().Ite(s, a, b)

	e := m.Decomp(f)
	require.False(t, e.IsConst())
	assert.True(t, m.globalFunc(e).Equal(f))
}

func TestScenarioSharedSubexpression(t *testing.T) {
	// f1 and f2 both contain (a AND b); decomposing both should share the
	// same underlying DG node for that subterm.
	m := NewManager()
	a := m.BDD().Var(0)
	b := m.BDD().Var(1)
	c := m.BDD().Var(2)
	d := m.BDD().Var(3)

	ab := a.And(b)
	f1 := ab.Or(c)
	f2 := ab.Or(d)

	e1 := m.Decomp(f1)
	e2 := m.Decomp(f2)

	shared, ok1 := m.findNode(ab)
	require.True(t, ok1)

	found1, found2 := false, false
	nodes1, nodes2 := map[uint32]*Node{}, map[uint32]*Node{}
	collectNodes(e1, nodes1)
	collectNodes(e2, nodes2)
	for _, n := range nodes1 {
		if n.id == shared.node.id {
			found1 = true
		}
	}
	for _, n := range nodes2 {
		if n.id == shared.node.id {
			found2 = true
		}
	}
	assert.True(t, found1)
	assert.True(t, found2)
}
