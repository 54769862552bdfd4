package bdd_test

import (
	"testing"

	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	m := bdd.NewManager()
	assert.True(t, m.Zero().IsZero())
	assert.True(t, m.One().IsOne())
	assert.False(t, m.Zero().IsOne())
	assert.False(t, m.One().IsZero())
}

func TestVarAndNot(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	assert.False(t, x.IsConst())
	assert.True(t, x.Not().Not().Equal(x))
}

func TestAndOrXorTruthTable(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	y := m.Var(1)

	and := x.And(y)
	or := x.Or(y)
	xor := x.Xor(y)

	assertEval(t, m, and, map[support.Var]bool{0: true, 1: true}, true)
	assertEval(t, m, and, map[support.Var]bool{0: true, 1: false}, false)
	assertEval(t, m, or, map[support.Var]bool{0: false, 1: false}, false)
	assertEval(t, m, or, map[support.Var]bool{0: true, 1: false}, true)
	assertEval(t, m, xor, map[support.Var]bool{0: true, 1: true}, false)
	assertEval(t, m, xor, map[support.Var]bool{0: true, 1: false}, true)
}

func TestRootDecomp(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	y := m.Var(1)
	f := x.And(y)

	top, f0, f1 := f.RootDecomp()
	assert.Equal(t, support.Var(0), top)
	assert.True(t, f0.IsZero())
	assert.True(t, f1.Equal(y))
}

func TestSupport(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	y := m.Var(2)
	f := x.Xor(y)

	assert.Equal(t, []support.Var{0, 2}, f.Support().Vars())
}

func TestOnePathZeroPathAreConsistent(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	y := m.Var(1)
	f := x.And(y)

	one := f.OnePath()
	require.False(t, one.IsZero())
	restricted := f.Restrict(one)
	assert.True(t, restricted.IsOne())

	zero := f.ZeroPath()
	restrictedZero := f.Restrict(zero)
	assert.True(t, restrictedZero.IsZero())
}

func TestRestrictSkipsIrrelevantVariable(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	z := m.Var(2)
	f := x // f does not depend on z

	pat := z // cube fixing only z=1
	assert.True(t, f.Restrict(pat).Equal(x))
}

func TestHashConsingSharesIdenticalFunctions(t *testing.T) {
	m := bdd.NewManager()
	x := m.Var(0)
	y := m.Var(1)

	a := x.And(y)
	b := x.And(y)
	assert.True(t, a.Equal(b))
}

// assertEval evaluates f under a full assignment by repeated restriction to
// single-variable cubes, and checks the result against want.
func assertEval(t *testing.T, m *bdd.Manager, f bdd.Function, assign map[support.Var]bool, want bool) {
	t.Helper()

	cube := m.One()
	for v, val := range assign {
		lit := m.Var(v)
		if !val {
			lit = lit.Not()
		}
		cube = cube.And(lit)
	}

	got := f.Restrict(cube)
	if want {
		assert.True(t, got.IsOne())
	} else {
		assert.True(t, got.IsZero())
	}
}
