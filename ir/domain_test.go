// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

import "testing"

func TestDomainMaskPickFirst(t *testing.T) {
	tests := []struct {
		name string
		m    DomainMask
		want DomainMask
	}{
		{"any prefers transfer", DomainAny, DomainTransferQueue},
		{"compute-or-graphics prefers compute", DomainComputeQueue | DomainGraphicsQueue, DomainComputeQueue},
		{"graphics only", DomainGraphicsQueue, DomainGraphicsQueue},
		{"device has no pick", DomainDevice, DomainDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.PickFirst(); got != tt.want {
				t.Errorf("PickFirst() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDomainMaskIsConcrete(t *testing.T) {
	if !DomainTransferQueue.IsConcrete() {
		t.Error("expected a single domain bit to be concrete")
	}
	if DomainAny.IsConcrete() {
		t.Error("did not expect DomainAny to be concrete")
	}
	if DomainDevice.IsConcrete() {
		t.Error("did not expect DomainDevice to be concrete")
	}
}

func TestScheduledItemBackPointer(t *testing.T) {
	n := &Node{Kind: Call}
	item := &ScheduledItem{Node: n, Domain: DomainComputeQueue}
	n.ScheduledItem = item

	if n.ScheduledItem.Node != n {
		t.Error("expected the scheduled item to point back at its owning node")
	}
	if n.ScheduledItem.Domain != DomainComputeQueue {
		t.Errorf("Domain = %v, want %v", n.ScheduledItem.Domain, DomainComputeQueue)
	}
}
