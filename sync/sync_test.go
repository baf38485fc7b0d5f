// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sync

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
)

func TestDeriveCallInstallsUndefSyncOnWrite(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	src := m.NewNode(ir.Construct, img)
	src.AllocateLinks()
	src.Links[0].Def = ir.First(src)

	writer := m.NewNode(ir.Call, img)
	writer.Args = []ir.Ref{ir.First(src)}
	writer.Payload = &ir.CallPayload{FnName: "clear", ArgAccesses: []ir.Access{ir.AccessClear}}
	writer.AllocateLinks()
	src.Links[0].Undef = ir.First(writer)

	if err := Derive([]*ir.Node{src, writer}); err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if src.Links[0].UndefSync == nil {
		t.Fatal("expected UndefSync to be set on the source link")
	}
	if src.Links[0].UndefSync.Layout != ir.LayoutTransferDstOptimal {
		t.Errorf("UndefSync.Layout = %v, want TransferDstOptimal", src.Links[0].UndefSync.Layout)
	}
}

func TestDeriveSpliceUsesExplicitDestinationAccess(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	src := m.NewNode(ir.Construct, img)
	src.AllocateLinks()
	src.Links[0].Def = ir.First(src)

	splice := m.NewNode(ir.Splice, img)
	splice.Args = []ir.Ref{ir.First(src)}
	splice.Payload = &ir.SplicePayload{DstAccess: ir.AccessColorRW}

	if err := Derive([]*ir.Node{src, splice}); err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if src.Links[0].UndefSync == nil {
		t.Fatal("expected UndefSync to be set from the splice's destination access")
	}
	if src.Links[0].UndefSync.Layout != ir.LayoutColorAttachmentOptimal {
		t.Errorf("UndefSync.Layout = %v, want ColorAttachmentOptimal", src.Links[0].UndefSync.Layout)
	}
}

func TestAssertDomainConsistencyDetectsMismatch(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})

	arg := m.NewNode(ir.Construct, img)
	arg.ScheduledItem = &ir.ScheduledItem{Domain: ir.DomainTransferQueue}

	n := m.NewNode(ir.Converge, img)
	n.Args = []ir.Ref{ir.First(arg)}
	n.ScheduledItem = &ir.ScheduledItem{Domain: ir.DomainGraphicsQueue}

	if err := Derive([]*ir.Node{arg, n}); err == nil {
		t.Fatal("expected Derive() to report a domain mismatch")
	}
}
