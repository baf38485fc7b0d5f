// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package schedule turns a linked, rewritten, reified IR into an
// ordered, queue-partitioned list of scheduled items: chain collection
// (chains.go), Kahn's-algorithm intra-queue scheduling (kahn.go),
// two-pass queue domain inference (queueinfer.go), and three-way
// queue partitioning (partition.go), per spec §4.7–§4.10.
package schedule

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// Chains walks every link belonging to order's nodes and returns every
// chain head: a link with no Prev. It also validates the
// prev.Next == self invariant chain-building is expected to maintain,
// returning an error at the first violation found (spec §4.7).
func Chains(order []*ir.Node) ([]*ir.ChainLink, error) {
	var heads []*ir.ChainLink
	for _, n := range order {
		for i := range n.Links {
			link := &n.Links[i]
			ref := n.Result(i)
			if !link.Prev.IsValid() {
				heads = append(heads, link)
				continue
			}
			if !link.Prev.HasLink() {
				continue
			}
			if !link.Prev.Link().Next.Equal(ref) {
				return nil, fmt.Errorf("schedule: chain invariant violated at %s(%d) result %d: prev.next != self",
					n.Kind, n.Index, i)
			}
		}
	}
	return heads, nil
}
