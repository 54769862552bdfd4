package bdd_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/stretchr/testify/assert"
)

func TestWithLoggerDoesNotAffectSemantics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := bdd.NewManager(bdd.WithLogger(logger))

	x := m.Var(0)
	y := m.Var(1)
	assert.True(t, x.And(y).Equal(x.And(y)))
}

func TestIteIdentities(t *testing.T) {
	m := bdd.NewManager()
	c := m.Var(0)
	t1 := m.Var(1)
	e := m.Var(2)

	assert.True(t, m.Ite(m.One(), t1, e).Equal(t1))
	assert.True(t, m.Ite(m.Zero(), t1, e).Equal(e))
	assert.True(t, m.Ite(c, m.One(), m.Zero()).Equal(c))
	assert.True(t, m.Ite(c, m.Zero(), m.One()).Equal(c.Not()))
}
