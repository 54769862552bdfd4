package dsd

import (
	"encoding/binary"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/dsd-decomp/bdd"
)

type hashEntry struct {
	key bdd.Function
	val Edge
}

// structuralHash maps a polarity-normalized bdd.Function to the DG edge
// that already realizes it, the hash-consing table named in the system
// overview. It is an explicit chained hash table keyed by an xxhash digest
// of the function's opaque raw identifier, rather than a bare Go map, so
// collisions are resolved explicitly and the table's shape is inspectable.
type structuralHash struct {
	buckets map[uint64][]hashEntry
}

func newStructuralHash() *structuralHash {
	return &structuralHash{buckets: make(map[uint64][]hashEntry, 256)}
}

func digestOf(f bdd.Function) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], f.RawID())

	return xxhash.Sum64(buf[:])
}

func (h *structuralHash) find(f bdd.Function) (Edge, bool) {
	for _, e := range h.buckets[digestOf(f)] {
		if e.key.Equal(f) {
			return e.val, true
		}
	}

	return Edge{}, false
}

func (h *structuralHash) insert(f bdd.Function, e Edge) {
	d := digestOf(f)
	h.buckets[d] = append(h.buckets[d], hashEntry{key: f, val: e})
}

// Manager owns one decomposition session: the BDD manager its input
// functions are built from, the arena of DG nodes produced so far, and the
// structural hash-consing table shared by the node builders and the
// decomposition driver's memo.
//
// Manager is not safe for concurrent use; a caller decomposing functions
// from multiple goroutines must use one Manager (and one underlying BDD
// manager) per goroutine.
type Manager struct {
	bddMgr *bdd.Manager
	logger *slog.Logger

	nodes []*Node
	hash  *structuralHash
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger attaches a structured logger that receives Debug-level traces:
// the support of each Decomp argument, the variable of each merge call, and
// the id, kind and support of each new node. Which merge case fired and its
// operands are not logged. A nil logger (the default) disables tracing
// entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager returns a Manager with a fresh, empty BDD manager and node
// arena, ready to decompose functions built through BDD().
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		bddMgr: bdd.NewManager(),
		nodes:  make([]*Node, 0, 64),
		hash:   newStructuralHash(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// BDD returns the Manager's underlying BDD manager, the only way to build
// the Function values Decomp accepts.
func (m *Manager) BDD() *bdd.Manager {
	return m.bddMgr
}

func (m *Manager) newNode(kind Kind, f bdd.Function, pat1, pat0 bdd.Function, children []Edge) *Node {
	n := &Node{
		id:         uint32(len(m.nodes)),
		kind:       kind,
		globalFunc: f,
		sup:        f.Support(),
		pat1:       pat1,
		pat0:       pat0,
		children:   children,
	}
	m.nodes = append(m.nodes, n)

	if m.logger != nil {
		m.logger.Debug("dsd: new node", "id", n.id, "kind", kind, "support", n.sup.Vars())
	}

	return n
}

// findNode looks up the DG edge already registered for f, accounting for
// f's own polarity: the table always stores one canonical polarity per
// function and find/put toggle the caller-visible edge's inversion bit to
// match whichever polarity of f was requested.
func (m *Manager) findNode(f bdd.Function) (Edge, bool) {
	inv := f.RootInv()
	fNormal := f
	if inv {
		fNormal = f.Not()
	}

	stored, ok := m.hash.find(fNormal)
	if !ok {
		return Edge{}, false
	}

	return stored.Xor(inv), true
}

// putNode registers result as the DG edge realizing f. If f was already
// registered, the existing entry must agree exactly (a hash-cons conflict
// is an internal invariant violation, not a recoverable error).
func (m *Manager) putNode(f bdd.Function, result Edge) {
	inv := f.RootInv()
	fNormal := f
	if inv {
		fNormal = f.Not()
	}
	resultNormal := result.Xor(inv)

	if existing, ok := m.hash.find(fNormal); ok {
		invariant(existing == resultNormal, "dsd: hash-cons conflict for an already-registered function")

		return
	}

	m.hash.insert(fNormal, resultNormal)
}
