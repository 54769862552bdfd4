package support_test

import (
	"testing"

	"github.com/katalvlaran/dsd-decomp/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDedupesAndSorts(t *testing.T) {
	s := support.New(5, 1, 3, 1, 5, 2)
	assert.Equal(t, []support.Var{1, 2, 3, 5}, s.Vars())
	assert.Equal(t, 4, s.Size())
}

func TestSetEmpty(t *testing.T) {
	var s support.Set
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Size())
}

func TestTopPanicsOnEmpty(t *testing.T) {
	var s support.Set
	assert.Panics(t, func() { s.Top() })
}

func TestTop(t *testing.T) {
	s := support.New(7, 2, 9)
	require.False(t, s.Empty())
	assert.Equal(t, support.Var(2), s.Top())
}

func TestUnion(t *testing.T) {
	a := support.New(1, 3, 5)
	b := support.New(2, 3, 4)
	got := a.Union(b)
	assert.Equal(t, []support.Var{1, 2, 3, 4, 5}, got.Vars())
}

func TestDifference(t *testing.T) {
	a := support.New(1, 2, 3, 4)
	b := support.New(2, 4)
	got := a.Difference(b)
	assert.Equal(t, []support.Var{1, 3}, got.Vars())
}

func TestIntersection(t *testing.T) {
	a := support.New(1, 2, 3, 4)
	b := support.New(2, 4, 6)
	got := a.Intersection(b)
	assert.Equal(t, []support.Var{2, 4}, got.Vars())
}

func TestOverlaps(t *testing.T) {
	a := support.New(1, 2, 3)
	b := support.New(10, 3, 11)
	c := support.New(4, 5)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestContains(t *testing.T) {
	s := support.New(2, 4, 6, 8)
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
}

func TestEqual(t *testing.T) {
	a := support.New(1, 2, 3)
	b := support.New(3, 2, 1)
	c := support.New(1, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
