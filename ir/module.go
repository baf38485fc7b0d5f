// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// Module is the arena that owns every Node and interned Type belonging
// to one render graph, adapted from the teacher module's ResourcePool
// (recording/pool.go): an Add method per thing-being-owned, a Count, and
// ownership that never lets a caller outlive the arena's lifetime
// assumptions. Unlike ResourcePool, Module indexes nodes by pointer
// identity rather than by integer ref, since Ref already carries a *Node
// (spec §3).
type Module struct {
	Nodes []*Node
	Types *TypeInterner

	// PotentialGarbage counts, for each node, how many of its results
	// still have a live reader. A node enters Garbage once its count
	// reaches zero and it is not itself reachable from the module's
	// roots (spec §4.6).
	PotentialGarbage map[*Node]int
	Garbage          []*Node
}

// NewModule creates an empty Module with a fresh type interner.
func NewModule() *Module {
	return &Module{
		Nodes:            make([]*Node, 0, 64),
		Types:            NewTypeInterner(),
		PotentialGarbage: make(map[*Node]int),
	}
}

// AddNode appends n to the module, assigns it its source-order Index,
// and returns it for chaining.
func (m *Module) AddNode(n *Node) *Node {
	n.Index = len(m.Nodes)
	m.Nodes = append(m.Nodes, n)
	return n
}

// NewNode allocates, indexes, and appends a node of the given kind in
// one call — the common case throughout the builder API this module
// backs.
func (m *Module) NewNode(kind NodeKind, types ...*Type) *Node {
	n := &Node{Kind: kind, Types: types}
	return m.AddNode(n)
}

// NodeCount returns the number of nodes currently owned by the module,
// including garbage not yet swept.
func (m *Module) NodeCount() int {
	return len(m.Nodes)
}

// InternType interns t and returns the canonical pointer, delegating to
// the module's TypeInterner (see intern.go).
func (m *Module) InternType(t Type) *Type {
	return m.Types.Intern(t)
}

// MarkPotentialGarbage records that n has refCount live readers at the
// time reachability analysis (reachability.go) walked it. A node with
// refCount zero is collected immediately; otherwise the count only
// drops through ReleaseArg, which no compiler pass calls.
func (m *Module) MarkPotentialGarbage(n *Node, refCount int) {
	if refCount <= 0 {
		m.CollectGarbage(n)
		return
	}
	m.PotentialGarbage[n] = refCount
}

// ReleaseArg decrements n's potential-garbage count by one, collecting
// n once it reaches zero. No compiler pass calls it; rewrite
// substitutions leave the counts as Sweep seeded them.
func (m *Module) ReleaseArg(n *Node) {
	remaining, ok := m.PotentialGarbage[n]
	if !ok {
		return
	}
	remaining--
	if remaining <= 0 {
		delete(m.PotentialGarbage, n)
		m.CollectGarbage(n)
		return
	}
	m.PotentialGarbage[n] = remaining
}

// CollectGarbage retags n as GARBAGE in place. Garbage nodes keep their
// slot in m.Nodes (callers may still hold *Node pointers into it) but
// are skipped by every later pass and are excluded from scheduling and
// dot dumps.
func (m *Module) CollectGarbage(n *Node) {
	if n.Kind == Garbage {
		return
	}
	n.Kind = Garbage
	n.Args = nil
	n.Payload = nil
	m.Garbage = append(m.Garbage, n)
}

// Clear resets the module to empty, discarding all nodes and interned
// types. Exposed for tests; compiler.Compiler does not call it, and
// relies on Sweep between runs instead.
func (m *Module) Clear() {
	m.Nodes = m.Nodes[:0]
	m.Types = NewTypeInterner()
	m.PotentialGarbage = make(map[*Node]int)
	m.Garbage = nil
}
