package dsd

import "github.com/katalvlaran/dsd-decomp/bdd"

// Decomp builds the disjoint-support decomposition graph for f, returning
// the DG edge at its root. f must have been built through m.BDD().
func (m *Manager) Decomp(f bdd.Function) Edge {
	if m.logger != nil {
		m.logger.Debug("dsd: decomp", "support", f.Support().Vars())
	}

	return m.decompStep(f)
}

// decompStep is the recursive driver: constant short-circuits, a
// memoization hit, or a Shannon split into two recursive calls merged by
// the top variable.
func (m *Manager) decompStep(f bdd.Function) Edge {
	if f.IsZero() {
		return Zero
	}
	if f.IsOne() {
		return One
	}
	if e, ok := m.findNode(f); ok {
		return e
	}

	top, f0, f1 := f.RootDecomp()
	r0 := m.decompStep(f0)
	r1 := m.decompStep(f1)

	result := m.merge(top, r0, r1)
	m.putNode(f, result)

	return result
}
