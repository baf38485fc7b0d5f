// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import "github.com/gogpu/rendergraph/ir"

// Partitioned buckets scheduled nodes by their resolved queue domain
// into three separate per-domain slices, preserving relative order
// within each bucket; All is their concatenation in transfer, compute,
// graphics order (spec §4.10).
type Partitioned struct {
	All      []*ir.Node
	Transfer []*ir.Node
	Compute  []*ir.Node
	Graphics []*ir.Node
}

// Partition buckets scheduled (already queue-inferred, in Kahn order)
// into transfer/compute/graphics spans.
func Partition(scheduled []*ir.Node) Partitioned {
	p := Partitioned{All: make([]*ir.Node, 0, len(scheduled))}
	for _, n := range scheduled {
		domain := ir.DomainGraphicsQueue
		if n.ScheduledItem != nil {
			domain = n.ScheduledItem.Domain
		}
		switch domain {
		case ir.DomainTransferQueue:
			p.Transfer = append(p.Transfer, n)
		case ir.DomainComputeQueue:
			p.Compute = append(p.Compute, n)
		default:
			p.Graphics = append(p.Graphics, n)
		}
	}
	p.All = append(p.All, p.Transfer...)
	p.All = append(p.All, p.Compute...)
	p.All = append(p.All, p.Graphics...)
	return p
}
