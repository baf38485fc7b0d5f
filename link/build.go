// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package link builds the chain-link structure over a reachable set of
// IR nodes: per-kind link population (build.go), the write-after-write
// SSA rewrite that keeps the graph single-assignment (walkwrites.go),
// and the URDEF sweep that stamps every link with its chain's ultimate
// root definition (urdef.go).
package link

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// Builder populates the Links array of every node reachable from a set
// of roots, in ir.Reachable's post-order (every argument before its
// user), following spec §4.3's per-kind rules.
type Builder struct {
	module *ir.Module
	order  []*ir.Node
}

// NewBuilder computes the reachable set from roots and prepares a
// Builder to link it. It allocates (but does not yet populate) each
// reachable node's Links array.
func NewBuilder(m *ir.Module, roots []ir.Ref) *Builder {
	order := ir.Reachable(roots)
	for _, n := range order {
		n.AllocateLinks()
	}
	return &Builder{module: m, order: order}
}

// Order returns the nodes in the post-order traversal the builder
// will process them in.
func (b *Builder) Order() []*ir.Node {
	return b.order
}

// Build runs the per-kind link population pass over every node in
// that order, firing the write-after-write rewrite (walkWrites)
// whenever a node attempts to register an undef on a link that already
// has one.
func (b *Builder) Build() error {
	for _, n := range b.order {
		if err := b.linkNode(n); err != nil {
			return fmt.Errorf("link building %s (index %d): %w", n.Kind, n.Index, err)
		}
	}
	return nil
}

func (b *Builder) linkNode(n *ir.Node) error {
	switch n.Kind {
	case ir.Constant, ir.Placeholder:
		b.newChainHead(n, 0)

	case ir.Construct:
		b.newChainHead(n, 0)
		for _, arg := range n.Args {
			if err := b.registerUndef(arg, ir.First(n), ir.AllSubrange()); err != nil {
				return err
			}
		}

	case ir.Splice:
		return b.linkSplice(n)

	case ir.Call:
		return b.linkCall(n)

	case ir.Slice:
		return b.linkSlice(n)

	case ir.Converge:
		return b.linkConverge(n)

	case ir.AcquireNextImage:
		b.newChainHead(n, 0)

	case ir.MathBinary, ir.Extract:
		// Pure scalar computations: no chain participation.

	case ir.Garbage:
		// Skipped entirely; Reachable already excludes garbage nodes, but
		// defensive in case a caller hands a garbage root.
	}
	return nil
}

// newChainHead marks result i of n as a fresh chain head: its own Def,
// no Prev.
func (b *Builder) newChainHead(n *ir.Node, result int) {
	n.Links[result].Def = n.Result(result)
}

// registerUndef records that writer terminates the chain link that ref
// currently heads — ref's Undef becomes writer, and writer's
// corresponding link gets Prev = ref so the two splice into one chain.
// requested is the sub-range of ref's resource that writer actually
// covers (ir.AllSubrange() for a writer that touches the whole chain
// link, the slice's own bounds for a SLICE). If ref's link already has
// an Undef, this is a write-after-write and triggers the SSA rewrite
// instead of clobbering the existing undef.
func (b *Builder) registerUndef(ref ir.Ref, writer ir.Ref, requested ir.ImageSubrange) error {
	if !ref.IsValid() || !ref.HasLink() {
		return nil
	}
	link := ref.Link()
	if link.Undef.IsValid() {
		return b.walkWrites(ref, writer, requested)
	}
	link.Undef = writer
	link.Next = writer
	if writer.IsValid() && writer.HasLink() {
		wlink := writer.Link()
		wlink.Prev = ref
	}
	return nil
}

// registerRead appends reader to ref's read list.
func (b *Builder) registerRead(ref ir.Ref, reader ir.Ref) {
	if !ref.IsValid() || !ref.HasLink() {
		return
	}
	link := ref.Link()
	link.Reads = append(link.Reads, reader)
}

func (b *Builder) linkSplice(n *ir.Node) error {
	payload := ir.AsSplice(n)
	if payload.IsInert() {
		for i, arg := range n.Args {
			if err := b.registerUndef(arg, n.Result(i), ir.AllSubrange()); err != nil {
				return err
			}
			if i < len(n.Links) && arg.IsValid() && arg.HasLink() {
				n.Links[i].Prev = arg
			}
		}
		return nil
	}
	for i := range n.Links {
		b.newChainHead(n, i)
	}
	for _, arg := range n.Args {
		if err := b.registerUndef(arg, ir.Ref{}, ir.AllSubrange()); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) linkCall(n *ir.Node) error {
	payload := ir.AsCall(n)
	for i, arg := range n.Args {
		access := ir.AccessNone
		if i < len(payload.ArgAccesses) {
			access = payload.ArgAccesses[i]
		}
		switch {
		case access.IsWriteAccess():
			if err := b.registerUndef(arg, aliasedResultFor(n, i), ir.AllSubrange()); err != nil {
				return err
			}
		case access != ir.AccessNone:
			b.registerRead(arg, ir.First(n))
		}
	}

	for i := range n.Types {
		aliased := i < len(n.Args) && n.Types[i] != nil && n.Types[i].Kind == ir.AliasedTy
		if !aliased {
			b.newChainHead(n, i)
			continue
		}
		idx := int(n.Types[i].AliasedRefIdx)
		if idx < 0 || idx >= len(n.Args) {
			b.newChainHead(n, i)
			continue
		}
		src := n.Args[idx]
		n.Links[i].Def = n.Result(i)
		n.Links[i].Prev = src
		if src.IsValid() && src.HasLink() {
			src.Link().Next = n.Result(i)
		}
	}
	return nil
}

// aliasedResultFor returns the result of n that continues argument
// argIndex's chain: the result whose type is AliasedTy with
// AliasedRefIdx == argIndex, or n's own first result when no such
// aliased result exists (the common single-result case, where that one
// result represents the write regardless of which argument it came
// from). A multi-result CALL with more than one write-access argument
// needs this to register each argument's own aliased result as its
// writer instead of always collapsing onto result 0.
func aliasedResultFor(n *ir.Node, argIndex int) ir.Ref {
	for i, t := range n.Types {
		if t != nil && t.Kind == ir.AliasedTy && int(t.AliasedRefIdx) == argIndex {
			return n.Result(i)
		}
	}
	return ir.First(n)
}

// linkSlice links both of a SLICE's results as fresh chain heads, then
// registers the SLICE itself as the parent image's Undef, carrying the
// slice's own requested Subrange::Image (spec §4.3). A later write to
// the parent chain therefore lands on an Undef that already names a
// SLICE, which walkWrites/collectTails use to descend into just the
// child whose range actually intersects the new write instead of
// always converging both children.
func (b *Builder) linkSlice(n *ir.Node) error {
	for i := range n.Links {
		b.newChainHead(n, i)
	}
	if len(n.Args) == 0 {
		return nil
	}
	parent := n.Args[0]
	if parent.IsValid() && parent.HasLink() {
		parent.Link().ChildChains = append(parent.Link().ChildChains, &n.Links[0])
	}
	return b.registerUndef(parent, ir.First(n), sliceRequestedRange(n))
}

// sliceRequestedRange reads n's SlicePayload bounds, the same way
// rewrite.requestedRange does for slice bridging: bounds not yet
// resolved to constants are treated as unrestricted, since the SSA
// rewrite can only prove a write lands in one child against concrete
// bounds.
func sliceRequestedRange(n *ir.Node) ir.ImageSubrange {
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

func (b *Builder) linkConverge(n *ir.Node) error {
	payload := ir.AsConverge(n)
	b.newChainHead(n, 0)
	if len(n.Args) > 0 {
		n.Links[0].Prev = n.Args[0]
	}
	for i, arg := range n.Args {
		write := i < len(payload.Write) && payload.Write[i]
		if write {
			if err := b.registerUndef(arg, ir.First(n), ir.AllSubrange()); err != nil {
				return err
			}
		} else {
			b.registerRead(arg, ir.First(n))
		}
	}
	return nil
}
