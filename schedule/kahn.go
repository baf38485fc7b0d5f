// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// IsSchedulable reports whether n's kind participates in intra-queue
// scheduling. A standalone CLEAR kind from the original design is folded
// into CALL with AccessClear here (ir.NodeKind has no separate Clear
// variant — see DESIGN.md), so the schedulable set is CONSTRUCT, CALL,
// MATH_BINARY, SPLICE, and CONVERGE.
func IsSchedulable(n *ir.Node) bool {
	switch n.Kind {
	case ir.Construct, ir.Call, ir.MathBinary, ir.Splice, ir.Converge:
		return true
	default:
		return false
	}
}

// Schedule runs Kahn's algorithm over the schedulable nodes reachable
// through order's links, building the adjacency implied by each link's
// Def→Undef and Def→read→Undef edges, and returns the nodes in
// execution order with CONSTRUCT definitions skipped (spec §4.8:
// "definitions do not need ordered execution"). Ties resolve by LIFO pop
// from the ready set, giving a deterministic schedule that prefers the
// most recently readied node.
func Schedule(order []*ir.Node) ([]*ir.Node, error) {
	index := NewNodeIndex(order, IsSchedulable)
	schedulable := make([]*ir.Node, index.Len())
	for i := range schedulable {
		schedulable[i] = index.Node(i)
	}

	adj := make([][]int, index.Len())
	indegree := make([]int, index.Len())

	addEdge := func(from, to *ir.Node) {
		fi, fok := index.IndexOf(from)
		ti, tok := index.IndexOf(to)
		if !fok || !tok || fi == ti {
			return
		}
		adj[fi] = append(adj[fi], ti)
		indegree[ti]++
	}

	for _, n := range order {
		for i := range n.Links {
			link := &n.Links[i]
			if link.Def.IsValid() && link.Undef.IsValid() {
				addEdge(link.Def.Node, link.Undef.Node)
			}
			for _, r := range link.Reads {
				if link.Def.IsValid() {
					addEdge(link.Def.Node, r.Node)
				}
				if link.Undef.IsValid() {
					addEdge(r.Node, link.Undef.Node)
				}
			}
		}
	}

	var ready []int
	for i, d := range indegree {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	var result []*ir.Node
	visited := 0
	for len(ready) > 0 {
		i := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		visited++

		n := schedulable[i]
		if n.Kind != ir.Construct {
			result = append(result, n)
		}

		for _, j := range adj[i] {
			indegree[j]--
			if indegree[j] == 0 {
				ready = append(ready, j)
			}
		}
	}

	if visited != len(schedulable) {
		return nil, fmt.Errorf("schedule: cycle detected among schedulable nodes (%d of %d scheduled)", visited, len(schedulable))
	}
	return result, nil
}
