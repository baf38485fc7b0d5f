// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package validate

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestReadOfUndefPassesWhenWritten(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	src := m.NewNode(ir.Construct, img)
	src.AllocateLinks()
	src.Links[0].Def = ir.First(src)

	writer := m.NewNode(ir.Call, img)
	src.Links[0].Undef = ir.First(writer)
	src.Links[0].Reads = []ir.Ref{ir.First(writer)}

	if err := ReadOfUndef([]*ir.Node{src}); err != nil {
		t.Errorf("ReadOfUndef() error = %v, want nil", err)
	}
}

func TestReadOfUndefFailsWhenNeverWritten(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	src := m.NewNode(ir.Construct, img)
	src.AllocateLinks()
	src.Links[0].Def = ir.First(src)

	reader := m.NewNode(ir.Call, img)
	src.Links[0].Reads = []ir.Ref{ir.First(reader)}

	if err := ReadOfUndef([]*ir.Node{src}); err == nil {
		t.Error("expected ReadOfUndef() to report a read-before-write")
	}
}

func TestReadOfUndefFollowsDisarmedSpliceChain(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	src := m.NewNode(ir.Construct, img)
	src.AllocateLinks()
	src.Links[0].Def = ir.First(src)

	splice := m.NewNode(ir.Splice, img)
	splice.AllocateLinks()
	src.Links[0].Undef = ir.First(splice)

	writer := m.NewNode(ir.Call, img)
	splice.Links[0].Undef = ir.First(writer)

	src.Links[0].Reads = []ir.Ref{ir.First(writer)}

	if err := ReadOfUndef([]*ir.Node{src}); err != nil {
		t.Errorf("ReadOfUndef() error = %v, want nil (real writer found past the splice)", err)
	}
}
