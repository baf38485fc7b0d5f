// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sync derives the per-link synchronization requirements
// (ir.ChainLink.UndefSync and ReadSync) from the Access annotations the
// graph carries, per spec §4.11.
package sync

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// Derive runs the sync builder over every node in order, per spec
// §4.11's per-kind rules: CALL installs undef_sync on writes and a
// merged read_sync across concurrent reads, SPLICE installs either its
// explicit destination access or a conservative cross-domain fallback,
// and every other schedulable node asserts domain consistency across
// its arguments.
func Derive(order []*ir.Node) error {
	for _, n := range order {
		switch n.Kind {
		case ir.Call:
			deriveCall(n)
		case ir.Splice:
			deriveSplice(n)
		case ir.Construct, ir.MathBinary, ir.Converge:
			if err := assertDomainConsistency(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func deriveCall(n *ir.Node) {
	payload := ir.AsCall(n)
	for i, arg := range n.Args {
		if !arg.IsValid() || !arg.HasLink() {
			continue
		}
		access := ir.AccessNone
		if i < len(payload.ArgAccesses) {
			access = payload.ArgAccesses[i]
		}
		link := arg.Link()
		switch {
		case access.IsWriteAccess():
			use := access.ToUse()
			link.UndefSync = &use
		case access != ir.AccessNone && link.ReadSync == nil:
			merged := MergeReadGroup(link.Reads, arg)
			link.ReadSync = &merged
		}
	}
}

func deriveSplice(n *ir.Node) {
	payload := ir.AsSplice(n)
	if len(n.Args) == 0 || !n.Args[0].HasLink() {
		return
	}
	link := n.Args[0].Link()
	if payload.DstAccess != ir.AccessNone {
		use := payload.DstAccess.ToUse()
		link.UndefSync = &use
		return
	}
	srcDomain := ir.DomainAny
	if n.Args[0].Node.ScheduledItem != nil {
		srcDomain = n.Args[0].Node.ScheduledItem.Domain
	}
	if srcDomain.IsConcrete() && payload.DstDomain.IsConcrete() && srcDomain != payload.DstDomain {
		use := ir.AccessMemoryRW.ToUse()
		link.UndefSync = &use
	}
}

func assertDomainConsistency(n *ir.Node) error {
	var domain ir.DomainMask
	if n.ScheduledItem != nil {
		domain = n.ScheduledItem.Domain
	}
	if !domain.IsConcrete() {
		return nil
	}
	for _, arg := range n.Args {
		if arg.Node == nil || arg.Node.ScheduledItem == nil {
			continue
		}
		argDomain := arg.Node.ScheduledItem.Domain
		if argDomain.IsConcrete() && argDomain != domain {
			return fmt.Errorf("sync: %s(%d) scheduled on %v but argument %s(%d) scheduled on %v",
				n.Kind, n.Index, domain, arg.Node.Kind, arg.Node.Index, argDomain)
		}
	}
	return nil
}
