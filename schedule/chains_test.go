// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestChainsFindsHeads(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})

	head := m.NewNode(ir.Construct, img)
	head.AllocateLinks()
	head.Links[0].Def = ir.First(head)

	heads, err := Chains([]*ir.Node{head})
	if err != nil {
		t.Fatalf("Chains() error = %v", err)
	}
	if len(heads) != 1 || heads[0] != &head.Links[0] {
		t.Errorf("Chains() = %v, want [head.Links[0]]", heads)
	}
}

func TestChainsDetectsInvariantViolation(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})

	head := m.NewNode(ir.Construct, img)
	head.AllocateLinks()
	head.Links[0].Def = ir.First(head)

	next := m.NewNode(ir.Call, img)
	next.AllocateLinks()
	next.Links[0].Prev = ir.First(head)
	// Deliberately leave head.Links[0].Next unset (zero Ref), violating
	// the prev.next == self invariant.

	_, err := Chains([]*ir.Node{head, next})
	if err == nil {
		t.Fatal("expected Chains() to detect the broken prev/next invariant")
	}
}
