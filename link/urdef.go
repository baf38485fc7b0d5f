// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import "github.com/gogpu/rendergraph/ir"

// PropagateURDef sweeps every node's links and, for each chain head (a
// link with no Prev), walks Next from the head stamping every link along
// the chain with URDef = head.Def. This gives every link a direct
// pointer to the ultimate creator of its resource without having to walk
// Prev chains repeatedly in later passes (spec §4.4).
func PropagateURDef(order []*ir.Node) {
	for _, n := range order {
		for i := range n.Links {
			link := &n.Links[i]
			if !link.Prev.IsValid() {
				stampChain(n.Result(i), link.Def)
			}
		}
	}
}

func stampChain(head ir.Ref, urdef ir.Ref) {
	ref := head
	for ref.IsValid() && ref.HasLink() {
		link := ref.Link()
		link.URDef = urdef
		ref = link.Next
	}
}
