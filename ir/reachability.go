// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// Reachable computes the set of nodes reachable from roots by following
// Args edges, and returns them in post-order (a dependency always
// precedes its dependents), matching spec §4.1: "link building visits
// nodes in an order where every argument of a node has already been
// visited". It uses Node.Mark as DFS-visited scratch state and always
// clears every mark it set before returning, so callers never observe a
// dirty flag left over from a previous traversal.
func Reachable(roots []Ref) []*Node {
	var order []*Node
	visited := make([]*Node, 0, 64)

	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil || n.Mark || n.Kind == Garbage {
			return
		}
		n.Mark = true
		visited = append(visited, n)
		for _, arg := range n.Args {
			visit(arg.Node)
		}
		order = append(order, n)
	}

	for _, r := range roots {
		visit(r.Node)
	}

	for _, n := range visited {
		n.Mark = false
	}

	return order
}

// ReachableFromModule computes the reachable set using every node
// currently flagged as an output root by the caller — a thin
// convenience over Reachable for call sites that already have a root
// list as plain *Node rather than Ref (e.g. a module's declared outputs
// with an implicit result 0).
func ReachableFromModule(roots []*Node) []*Node {
	refs := make([]Ref, 0, len(roots))
	for _, n := range roots {
		refs = append(refs, First(n))
	}
	return Reachable(refs)
}

// RefCounts returns, for every node reachable from roots, the number of
// distinct argument-edges that reference it — the initial
// PotentialGarbage seed used before link building narrows edges down to
// per-result consumers (spec §4.6).
func RefCounts(roots []Ref) map[*Node]int {
	order := Reachable(roots)
	counts := make(map[*Node]int, len(order))
	for _, n := range order {
		for _, arg := range n.Args {
			counts[arg.Node]++
		}
	}
	return counts
}

// Sweep runs the module's garbage collection over roots, matching
// original_source's per-module sweep at the start of every compile
// (IRPasses.cpp): every node m owns that is neither reachable from
// roots nor already Garbage is collected outright (it is left over
// from an earlier compile against a different root set, or from a
// rewrite pass that substituted one of its results away without going
// through ReleaseArg), and every node that is reachable has its
// PotentialGarbage count seeded from RefCounts so later passes that
// retire an argument via ReleaseArg can collect it as soon as its last
// reference goes away. A reachable CONSTRUCT's Prototype node counts as
// live too, since reification and duplicate-reference validation read it.
func (m *Module) Sweep(roots []Ref) {
	reachable := Reachable(roots)
	live := make(map[*Node]bool, len(reachable))
	for _, n := range reachable {
		live[n] = true
		if p, ok := n.Payload.(*ConstructPayload); ok && p.Prototype.IsValid() {
			live[p.Prototype.Node] = true
		}
	}
	for _, n := range m.Nodes {
		if n.Kind != Garbage && !live[n] {
			m.CollectGarbage(n)
		}
	}
	for n, count := range RefCounts(roots) {
		m.MarkPotentialGarbage(n, count)
	}
}
