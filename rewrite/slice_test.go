// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rewrite

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func constU32(m *ir.Module, intTy *ir.Type, v uint32) ir.Ref {
	n := m.NewNode(ir.Constant, intTy)
	n.Payload = &ir.ConstantPayload{Value: v}
	return ir.First(n)
}

func TestBridgeSlicesCollapsesContainedChild(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})

	parent := m.NewNode(ir.Construct, img)

	outer := m.NewNode(ir.Slice, img, img)
	outer.Args = []ir.Ref{ir.First(parent)}
	outer.Payload = &ir.SlicePayload{
		BaseLevel:  constU32(m, intTy, 0),
		LevelCount: constU32(m, intTy, 4),
		BaseLayer:  constU32(m, intTy, 0),
		LayerCount: constU32(m, intTy, 1),
	}
	outer.AllocateLinks()
	outer.Links[0].Def = outer.Result(0)

	inner := m.NewNode(ir.Slice, img, img)
	inner.Args = []ir.Ref{outer.Result(0)}
	inner.Payload = &ir.SlicePayload{
		BaseLevel:  constU32(m, intTy, 1),
		LevelCount: constU32(m, intTy, 1),
		BaseLayer:  constU32(m, intTy, 0),
		LayerCount: constU32(m, intTy, 1),
	}
	inner.AllocateLinks()
	inner.Links[0].Prev = outer.Result(0)

	order := []*ir.Node{parent, outer, inner}
	e := NewEngine(order)
	e.Use(BridgeSlices())
	e.Apply()

	r := NewReplacer()
	BridgeSlices()(inner, r)
	got, ok := r.Lookup(inner.Result(0))
	if !ok || !got.Equal(ir.First(parent)) {
		t.Errorf("Lookup(inner.Result(0)) = %+v, ok=%v; want parent, true", got, ok)
	}
}
