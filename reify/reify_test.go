// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package reify

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func buildConstructWithPrototype(m *ir.Module, img *ir.Type, intTy *ir.Type, proto ir.ImageAttachment, argCount int) *ir.Node {
	protoNode := m.NewNode(ir.Constant, intTy)
	protoNode.Payload = &ir.ConstantPayload{Value: proto}

	n := m.NewNode(ir.Construct, img)
	n.Payload = &ir.ConstructPayload{Prototype: ir.First(protoNode)}
	for i := 0; i < argCount; i++ {
		ph := m.NewNode(ir.Placeholder, intTy)
		n.Args = append(n.Args, ir.First(ph))
	}
	return n
}

func TestReifyFieldsFillsWidthFromPrototype(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})

	n := buildConstructWithPrototype(m, img, intTy, ir.ImageAttachment{Width: 1920, Height: 1080}, 2)

	count := Run(m, []*ir.Node{n})
	if count == 0 {
		t.Fatal("expected at least one placeholder to be reified")
	}
	if isPlaceholder(n.Args[0]) {
		t.Error("expected the width argument to be reified to a constant")
	}
	got := ir.AsConstant(n.Args[0].Node).Value.(uint32)
	if got != 1920 {
		t.Errorf("width constant = %d, want 1920", got)
	}
}

func TestReifyFieldsLeavesUnknownFieldsAsPlaceholders(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})

	// Only width is known; height stays a placeholder.
	n := buildConstructWithPrototype(m, img, intTy, ir.ImageAttachment{Width: 640}, 2)

	Run(m, []*ir.Node{n})
	if !isPlaceholder(n.Args[1]) {
		t.Error("expected the height argument to remain a placeholder when unknown")
	}
}

func TestInferFramebuffersPropagatesExtent(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	intTy := m.InternType(ir.Type{Kind: ir.IntegerTy, IntegerWidth: 32})

	known := buildConstructWithPrototype(m, img, intTy, ir.ImageAttachment{Width: 800, Height: 600}, 2)
	unknown := buildConstructWithPrototype(m, img, intTy, ir.ImageAttachment{}, 2)

	call := m.NewNode(ir.Call, img)
	call.Args = []ir.Ref{ir.First(known), ir.First(unknown)}
	call.Payload = &ir.CallPayload{
		FnName:      "render-pass",
		ArgAccesses: []ir.Access{ir.AccessColorRW, ir.AccessColorRW},
	}

	Run(m, []*ir.Node{known, unknown, call})

	if isPlaceholder(unknown.Args[0]) || isPlaceholder(unknown.Args[1]) {
		got0, got1 := unknown.Args[0], unknown.Args[1]
		t.Fatalf("expected the unknown attachment's extent to be inferred, got %+v %+v", got0, got1)
	}
	gotW := ir.AsConstant(unknown.Args[0].Node).Value.(uint32)
	gotH := ir.AsConstant(unknown.Args[1].Node).Value.(uint32)
	if gotW != 800 || gotH != 600 {
		t.Errorf("inferred extent = (%d,%d), want (800,600)", gotW, gotH)
	}
}
