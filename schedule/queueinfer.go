// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import "github.com/gogpu/rendergraph/ir"

// InferQueues assigns a concrete ir.DomainMask to every scheduled node,
// following spec §4.9's propagation rules. It runs the forward/backward
// sweep twice: once to let required-domain constraints and neighbor
// domains settle, a post-pass forcing any node still holding Any or
// Device to graphics, then a second forward/backward sweep to finalize
// the choice against the now-fully-concrete neighbors.
func InferQueues(scheduled []*ir.Node) {
	for pass := 0; pass < 2; pass++ {
		sweep(scheduled, false)
		sweep(scheduled, true)
		if pass == 0 {
			forceUnresolvedToGraphics(scheduled)
		}
	}
}

func sweep(scheduled []*ir.Node, backward bool) {
	lastDomain := ir.DomainDevice
	apply := func(n *ir.Node) {
		item := n.ScheduledItem
		if item == nil {
			item = &ir.ScheduledItem{Node: n}
			n.ScheduledItem = item
		}
		switch {
		case item.Domain.IsConcrete():
			lastDomain = item.Domain
		case lastDomain.IsConcrete() && n.RequiredDomains == 0:
			item.Domain = lastDomain
		case lastDomain.IsConcrete() && n.RequiredDomains != 0:
			isect := lastDomain & n.RequiredDomains
			if isect != 0 {
				item.Domain = isect.PickFirst()
			} else {
				item.Domain = n.RequiredDomains.PickFirst()
			}
			lastDomain = item.Domain
		case !lastDomain.IsConcrete() && n.RequiredDomains != 0:
			item.Domain = n.RequiredDomains.PickFirst()
			lastDomain = item.Domain
		}
	}

	if backward {
		for i := len(scheduled) - 1; i >= 0; i-- {
			apply(scheduled[i])
		}
		return
	}
	for _, n := range scheduled {
		apply(n)
	}
}

func forceUnresolvedToGraphics(scheduled []*ir.Node) {
	for _, n := range scheduled {
		item := n.ScheduledItem
		if item == nil || !item.Domain.IsConcrete() {
			if item == nil {
				item = &ir.ScheduledItem{Node: n}
				n.ScheduledItem = item
			}
			item.Domain = ir.DomainGraphicsQueue
		}
	}
}
