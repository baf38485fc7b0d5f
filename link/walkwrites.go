// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import "github.com/gogpu/rendergraph/ir"

// walkWrites fires when a node attempts to register an undef on a link
// that already has one — a write-after-write, which would violate SSA.
// It walks the chain starting at the existing writer, collects every
// tail (the last live value reachable along that chain, descending into
// SLICE children), and inserts a CONVERGE node merging those tails so
// writer can register its undef against the converged value instead of
// clobbering the existing one (spec §4.3). requested is the sub-range
// of head's resource that writer's write actually covers; collectTails
// uses it to avoid converging a SLICE's children the new write doesn't
// touch (spec §4.4).
func (b *Builder) walkWrites(head ir.Ref, writer ir.Ref, requested ir.ImageSubrange) error {
	tails := collectTails(head, requested)
	if len(tails) == 0 {
		return nil
	}
	if len(tails) == 1 {
		return b.registerUndef(tails[0], writer, requested)
	}

	conv := &ir.Node{Kind: ir.Converge, Types: []*ir.Type{tails[0].Type()}}
	conv.Args = tails
	conv.Payload = &ir.ConvergePayload{Write: make([]bool, len(tails))}
	b.module.AddNode(conv)
	conv.AllocateLinks()
	b.order = append(b.order, conv)

	if err := b.linkConverge(conv); err != nil {
		return err
	}
	return b.registerUndef(ir.First(conv), writer, requested)
}

// collectTails finds every currently-live value reachable by walking
// forward from head that the write covered by requested can possibly
// land on. At a SLICE's undef, requested decides how far to descend:
// if the slice's own range (Result 0) fully contains requested, only
// that child can be written to, so collectTails descends into it alone
// and never touches the rest (Result 1); symmetrically, if requested
// lies entirely within the rest's coverage, only Result 1 is descended
// into. Only when requested straddles both children — not fully
// contained in either — does collectTails fall back to recursing into
// both, the case that still needs a CONVERGE. Any other kind of undef
// is itself the tail if it has no further undef, else recursion
// continues past it; a link with no undef at all is a tail (nothing
// further has consumed it). Because SLICE's child recursion can reach
// the same (node, result) twice along divergent branches, the result is
// deduplicated before returning — the original implementation this is
// grounded on does not dedupe at this step, tolerating the duplication
// downstream in CONVERGE instead; this implementation dedupes explicitly
// to keep CONVERGE's Args free of redundant entries.
func collectTails(head ir.Ref, requested ir.ImageSubrange) []ir.Ref {
	seen := make(map[ir.Ref]bool)
	var out []ir.Ref

	var walk func(ref ir.Ref)
	walk = func(ref ir.Ref) {
		if !ref.IsValid() || !ref.HasLink() {
			return
		}
		link := ref.Link()
		if !link.Undef.IsValid() {
			if !seen[ref] {
				seen[ref] = true
				out = append(out, ref)
			}
			return
		}
		if link.Undef.Node != nil && link.Undef.Node.Kind == ir.Slice {
			sliceNode := link.Undef.Node
			sliceRange := sliceRequestedRange(sliceNode)
			restRange := ir.AllMultiSubrange().Difference(ir.SingleMultiSubrange(sliceRange))

			switch {
			case sliceRange.Contains(requested):
				walk(sliceNode.Result(0))
			case restCovers(restRange, requested):
				walk(sliceNode.Result(1))
			default:
				for i := range sliceNode.Links {
					walk(sliceNode.Result(i))
				}
			}
			return
		}
		walk(link.Undef)
	}
	walk(head)
	return out
}

// restCovers reports whether rest (a SLICE's remainder, as a
// MultiSubrange since subtracting a rectangle from a rectangle can
// split it into several) fully contains requested.
func restCovers(rest ir.MultiSubrange, requested ir.ImageSubrange) bool {
	if rest.Empty() {
		return false
	}
	return ir.SingleMultiSubrange(requested).Difference(rest).Empty()
}
