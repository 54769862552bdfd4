package bdd

import (
	"encoding/binary"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/dsd-decomp/support"
)

// edge is an internal (node index, complement bit) pair, the same shape as
// the public Function but without a Manager back-pointer — used for node
// children, where the owning manager is always implicit.
type edge struct {
	node uint32
	inv  bool
}

// node 0 is reserved as the terminal; it has no variable and no children.
const terminalIndex uint32 = 0

type bddNode struct {
	v    support.Var
	low  edge
	high edge
}

// Manager owns a hash-consed ROBDD node table. The zero value is not usable;
// construct one with NewManager.
//
// Manager is not safe for concurrent use. A caller decomposing functions
// from multiple goroutines must use one Manager per goroutine.
type Manager struct {
	logger *slog.Logger

	nodes []bddNode

	// uniqueTable maps a structural digest of (v, low, high) to the
	// candidate node indices sharing that digest (a hash-cons chain).
	uniqueTable map[uint64][]uint32

	// iteCache memoizes Ite(c, t, e) results, keyed by the three operand
	// edges. Entries are never evicted: one Manager serves one
	// decomposition session and is then discarded.
	iteCache map[iteKey]Function

	supportCache map[uint32]support.Set
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger attaches a structured logger that receives Debug-level traces
// of node creation; cache activity is not logged. A nil logger (the default)
// disables all tracing; every call site on the hot path guards on
// m.logger != nil.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager returns a Manager with an empty node table, ready to mint
// variables and build functions.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		nodes:        make([]bddNode, 1, 64), // index 0: terminal placeholder
		uniqueTable:  make(map[uint64][]uint32, 64),
		iteCache:     make(map[iteKey]Function, 256),
		supportCache: make(map[uint32]support.Set, 64),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func digest(v support.Var, low, high edge) uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint32(buf[0:4], v)
	binary.LittleEndian.PutUint32(buf[4:8], low.node)
	binary.LittleEndian.PutUint32(buf[8:12], high.node)
	buf[12] = boolByte(low.inv)
	buf[13] = boolByte(high.inv)

	return xxhash.Sum64(buf[:14])
}

func boolByte(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// getNode returns the edge for the hash-consed node (v, low, high),
// creating it if no equivalent node exists yet. Per CUDD convention the
// returned edge's low child is always non-inverted: if the caller-supplied
// low edge is inverted, both children and the result polarity are flipped
// so that the stored node is canonical, and the complement bit is folded
// into the returned edge instead.
func (m *Manager) getNode(v support.Var, low, high edge) edge {
	if low == high {
		return low
	}

	resultInv := false
	if low.inv {
		low, high = edge{low.node, false}, edge{high.node, !high.inv}
		resultInv = true
	}

	key := digest(v, low, high)
	for _, idx := range m.uniqueTable[key] {
		n := m.nodes[idx]
		if n.v == v && n.low == low && n.high == high {
			return edge{idx, resultInv}
		}
	}

	idx := uint32(len(m.nodes))
	m.nodes = append(m.nodes, bddNode{v: v, low: low, high: high})
	m.uniqueTable[key] = append(m.uniqueTable[key], idx)

	if m.logger != nil {
		m.logger.Debug("bdd: new node", "id", idx, "var", v, "low", low, "high", high)
	}

	return edge{idx, resultInv}
}

// Var returns the Function representing the literal of variable v.
func (m *Manager) Var(v support.Var) Function {
	e := m.getNode(v, edge{terminalIndex, true}, edge{terminalIndex, false})

	return Function{mgr: m, node: e.node, inv: e.inv}
}

// Zero returns the constant-false function.
func (m *Manager) Zero() Function {
	return Function{mgr: m, node: terminalIndex, inv: true}
}

// One returns the constant-true function.
func (m *Manager) One() Function {
	return Function{mgr: m, node: terminalIndex, inv: false}
}

func (m *Manager) own(f Function) {
	invariant(f.mgr == m, ErrForeignFunction.Error())
}
