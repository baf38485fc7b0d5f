// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rewrite

import "github.com/gogpu/rendergraph/ir"

// BridgeSlices is a rewrite.Predicate: a SLICE whose requested range is
// fully contained in an ancestor slice on the same chain — found by
// walking Prev across the chain looking for another SLICE — collapses
// to its parent image for both of its outputs. The narrower slice added
// nothing an ancestor slice didn't already guarantee, so both of its
// results are substituted for the parent image directly.
func BridgeSlices() Predicate {
	return func(n *ir.Node, r *Replacer) {
		if n.Kind != ir.Slice || len(n.Args) == 0 {
			return
		}
		requested := requestedRange(n)
		ancestor, parent := findAncestorSlice(n.Args[0])
		if ancestor == nil {
			return
		}
		ancestorRange := requestedRange(ancestor)
		if !ancestorRange.Contains(requested) {
			return
		}
		for i := range n.Types {
			r.Set(n.Result(i), parent)
		}
	}
}

// requestedRange reads n's SlicePayload bounds. Bounds that aren't
// resolved to constants yet (still Refs to MATH_BINARY or PLACEHOLDER
// nodes) are treated as the unrestricted range, since bridging can only
// be proven safe against concrete bounds.
func requestedRange(n *ir.Node) ir.ImageSubrange {
	payload := ir.AsSlice(n)
	get := func(ref ir.Ref, fallback uint32) uint32 {
		if !ref.IsValid() || ref.Node.Kind != ir.Constant {
			return fallback
		}
		v, ok := ir.AsConstant(ref.Node).Value.(uint32)
		if !ok {
			return fallback
		}
		return v
	}
	return ir.ImageSubrange{
		BaseLevel:  get(payload.BaseLevel, 0),
		LevelCount: get(payload.LevelCount, ir.RemainingMipLevels),
		BaseLayer:  get(payload.BaseLayer, 0),
		LayerCount: get(payload.LayerCount, ir.RemainingArrayLayers),
	}
}

// findAncestorSlice walks Prev across ref's chain looking for the
// nearest SLICE node, returning that node plus the Ref its output
// should collapse to (the slice's own parent image argument, since
// bridging skips straight past it).
func findAncestorSlice(ref ir.Ref) (*ir.Node, ir.Ref) {
	cur := ref
	for cur.IsValid() && cur.HasLink() {
		if cur.Node.Kind == ir.Slice {
			if len(cur.Node.Args) == 0 {
				return nil, ir.Ref{}
			}
			return cur.Node, cur.Node.Args[0]
		}
		cur = cur.Link().Prev
	}
	return nil, ir.Ref{}
}
