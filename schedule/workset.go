// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import "github.com/gogpu/rendergraph/ir"

// NodeIndex assigns each distinct *ir.Node a dense, stable position in
// [0, Len()), the working set the Kahn scheduler builds its adjacency
// and indegree arrays against. It is the single-threaded counterpart of
// the pack's generic comparable-keyed map caches: no sharding, no
// locking, and no eviction, since a compile never runs its scheduling
// pass concurrently with itself.
type NodeIndex struct {
	nodes []*ir.Node
	pos   map[*ir.Node]int
}

// NewNodeIndex builds a NodeIndex over every node in nodes for which
// keep returns true, preserving nodes' relative order.
func NewNodeIndex(nodes []*ir.Node, keep func(*ir.Node) bool) *NodeIndex {
	idx := &NodeIndex{pos: make(map[*ir.Node]int, len(nodes))}
	for _, n := range nodes {
		if keep == nil || keep(n) {
			idx.pos[n] = len(idx.nodes)
			idx.nodes = append(idx.nodes, n)
		}
	}
	return idx
}

// Len returns the number of nodes held in the index.
func (idx *NodeIndex) Len() int { return len(idx.nodes) }

// Node returns the node at position i.
func (idx *NodeIndex) Node(i int) *ir.Node { return idx.nodes[i] }

// IndexOf returns n's position and whether n is a member of the index.
func (idx *NodeIndex) IndexOf(n *ir.Node) (int, bool) {
	i, ok := idx.pos[n]
	return i, ok
}
