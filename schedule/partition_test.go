// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestPartitionBucketsByDomain(t *testing.T) {
	transfer := &ir.Node{Kind: ir.Call, ScheduledItem: &ir.ScheduledItem{Domain: ir.DomainTransferQueue}}
	compute := &ir.Node{Kind: ir.Call, ScheduledItem: &ir.ScheduledItem{Domain: ir.DomainComputeQueue}}
	graphics := &ir.Node{Kind: ir.Call, ScheduledItem: &ir.ScheduledItem{Domain: ir.DomainGraphicsQueue}}

	p := Partition([]*ir.Node{graphics, transfer, compute})

	if len(p.Transfer) != 1 || p.Transfer[0] != transfer {
		t.Errorf("Transfer = %v, want [transfer]", p.Transfer)
	}
	if len(p.Compute) != 1 || p.Compute[0] != compute {
		t.Errorf("Compute = %v, want [compute]", p.Compute)
	}
	if len(p.Graphics) != 1 || p.Graphics[0] != graphics {
		t.Errorf("Graphics = %v, want [graphics]", p.Graphics)
	}
	if len(p.All) != 3 || p.All[0] != transfer || p.All[1] != compute || p.All[2] != graphics {
		t.Errorf("All = %v, want [transfer compute graphics]", p.All)
	}
}

func TestPartitionPreservesRelativeOrderWithinBucket(t *testing.T) {
	a := &ir.Node{Kind: ir.Call, Index: 0, ScheduledItem: &ir.ScheduledItem{Domain: ir.DomainGraphicsQueue}}
	b := &ir.Node{Kind: ir.Call, Index: 1, ScheduledItem: &ir.ScheduledItem{Domain: ir.DomainGraphicsQueue}}

	p := Partition([]*ir.Node{a, b})
	if len(p.Graphics) != 2 || p.Graphics[0] != a || p.Graphics[1] != b {
		t.Errorf("Graphics = %v, want [a b] in original order", p.Graphics)
	}
}
