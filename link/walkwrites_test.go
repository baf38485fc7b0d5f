// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestCollectTailsSingleChain(t *testing.T) {
	m := ir.NewModule()
	img := Type(m)

	head := m.NewNode(ir.Construct, img)
	head.Payload = &ir.ConstructPayload{}
	head.AllocateLinks()
	head.Links[0].Def = ir.First(head)

	tails := collectTails(ir.First(head), ir.AllSubrange())
	if len(tails) != 1 || !tails[0].Equal(ir.First(head)) {
		t.Errorf("collectTails() = %+v, want [head]", tails)
	}
}

func TestCollectTailsDedupesSliceDivergence(t *testing.T) {
	m := ir.NewModule()
	img := Type(m)
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})
	constU32 := func(v uint32) ir.Ref {
		n := m.NewNode(ir.Constant, intTy)
		n.Payload = &ir.ConstantPayload{Value: v}
		return ir.First(n)
	}

	head := m.NewNode(ir.Construct, img)
	head.Payload = &ir.ConstructPayload{}
	head.AllocateLinks()
	head.Links[0].Def = ir.First(head)

	slice := m.NewNode(ir.Slice, img, img)
	slice.Payload = &ir.SlicePayload{
		BaseLevel:  constU32(0),
		LevelCount: constU32(2),
		BaseLayer:  constU32(0),
		LayerCount: constU32(1),
	}
	slice.AllocateLinks()
	slice.Links[0].Def = slice.Result(0)
	slice.Links[1].Def = slice.Result(1)
	head.Links[0].Undef = ir.First(slice)

	// A write spanning the whole image straddles both the slice (levels
	// 0-2) and the rest (levels 2+), so it still needs to collect both
	// tails for a CONVERGE.
	tails := collectTails(ir.First(head), ir.AllSubrange())
	if len(tails) != 2 {
		t.Fatalf("collectTails() returned %d tails, want 2", len(tails))
	}
	seen := map[ir.Ref]bool{}
	for _, tail := range tails {
		if seen[tail] {
			t.Errorf("collectTails() returned a duplicate tail: %+v", tail)
		}
		seen[tail] = true
	}
}

func TestCollectTailsDescendsIntoIntersectingSliceChildOnly(t *testing.T) {
	m := ir.NewModule()
	img := Type(m)
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})
	constU32 := func(v uint32) ir.Ref {
		n := m.NewNode(ir.Constant, intTy)
		n.Payload = &ir.ConstantPayload{Value: v}
		return ir.First(n)
	}

	head := m.NewNode(ir.Construct, img)
	head.Payload = &ir.ConstructPayload{}
	head.AllocateLinks()
	head.Links[0].Def = ir.First(head)

	slice := m.NewNode(ir.Slice, img, img)
	slice.Payload = &ir.SlicePayload{
		BaseLevel:  constU32(0),
		LevelCount: constU32(2),
		BaseLayer:  constU32(0),
		LayerCount: constU32(1),
	}
	slice.AllocateLinks()
	slice.Links[0].Def = slice.Result(0)
	slice.Links[1].Def = slice.Result(1)
	head.Links[0].Undef = ir.First(slice)

	// A write to levels 0-2 only is fully contained in the slice (result
	// 0); it must not also collect the rest (result 1).
	requested := ir.ImageSubrange{BaseLevel: 0, LevelCount: 2, BaseLayer: 0, LayerCount: 1}
	tails := collectTails(ir.First(head), requested)
	if len(tails) != 1 || !tails[0].Equal(slice.Result(0)) {
		t.Fatalf("collectTails() = %+v, want [slice.Result(0)]", tails)
	}
}
