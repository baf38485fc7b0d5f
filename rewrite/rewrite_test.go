// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rewrite

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestReplacerCollapsesForwardChain(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	a := m.NewNode(ir.Construct, img)
	b := m.NewNode(ir.Construct, img)
	c := m.NewNode(ir.Construct, img)

	r := NewReplacer()
	r.Set(ir.First(a), ir.First(b))
	r.Set(ir.First(b), ir.First(c))

	got, ok := r.Lookup(ir.First(a))
	if !ok || !got.Equal(ir.First(c)) {
		t.Errorf("Lookup(a) = %+v, ok=%v; want c, true", got, ok)
	}
}

func TestReplacerCollapsesOutOfOrderChain(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	a := m.NewNode(ir.Construct, img)
	b := m.NewNode(ir.Construct, img)
	c := m.NewNode(ir.Construct, img)
	d := m.NewNode(ir.Construct, img)

	r := NewReplacer()
	r.Set(ir.First(a), ir.First(b))
	r.Set(ir.First(b), ir.First(c))
	// c gets its own later replacement; both a and b must retarget to d.
	r.Set(ir.First(c), ir.First(d))

	for _, needle := range []ir.Ref{ir.First(a), ir.First(b)} {
		got, ok := r.Lookup(needle)
		if !ok || !got.Equal(ir.First(d)) {
			t.Errorf("Lookup(%+v) = %+v, ok=%v; want d, true", needle, got, ok)
		}
	}
}

func TestEngineApplySubstitutesArgs(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	a := m.NewNode(ir.Construct, img)
	b := m.NewNode(ir.Construct, img)
	consumer := m.NewNode(ir.Call, img)
	consumer.Args = []ir.Ref{ir.First(a)}

	order := []*ir.Node{a, b, consumer}
	e := NewEngine(order)
	e.Use(func(n *ir.Node, r *Replacer) {
		if n == a {
			r.Set(ir.First(a), ir.First(b))
		}
	})

	count := e.Apply()
	if count != 1 {
		t.Errorf("Apply() rewrote %d args, want 1", count)
	}
	if !consumer.Args[0].Equal(ir.First(b)) {
		t.Errorf("consumer.Args[0] = %+v, want b", consumer.Args[0])
	}
}
