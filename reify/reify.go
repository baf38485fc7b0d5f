// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package reify resolves PLACEHOLDER arguments of CONSTRUCT and CALL
// nodes to concrete constants, in two layers: field reification from a
// construct's own prototype, and framebuffer inference across a CALL's
// attachment arguments, iterated to a fixed point (spec §4.6).
package reify

import "github.com/gogpu/rendergraph/ir"

// Prototype is the subset of a resource's descriptor that field
// reification and framebuffer inference can read concrete values from.
// CONSTRUCT nodes whose Payload.Prototype resolves to a CONSTANT holding
// one of ir.ImageAttachment or ir.BufferDescriptor expose their fields
// through this interface.
type Prototype struct {
	HasImage  bool
	Image     ir.ImageAttachment
	HasBuffer bool
	Buffer    ir.BufferDescriptor
}

// Run executes both reification layers over order until neither makes
// progress, per spec §4.6's "inference is monotonic; iterate until no
// progress". It returns the number of placeholder arguments it resolved
// to constants across every pass.
func Run(m *ir.Module, order []*ir.Node) int {
	total := 0
	for {
		progress := reifyFields(m, order)
		progress += inferFramebuffers(m, order)
		total += progress
		if progress == 0 {
			break
		}
	}
	return total
}

// reifyFields implements layer 1: if a CONSTRUCT's constant prototype
// has a concrete field, the corresponding PLACEHOLDER argument is
// replaced with a non-owning constant pointing at that field.
func reifyFields(m *ir.Module, order []*ir.Node) int {
	count := 0
	for _, n := range order {
		if n.Kind != ir.Construct {
			continue
		}
		proto := resolvePrototype(n)
		if proto == nil {
			continue
		}
		for i, arg := range n.Args {
			if !isPlaceholder(arg) {
				continue
			}
			if val, ok := fieldValue(proto, i); ok {
				n.Args[i] = newConstant(m, arg.Type(), val)
				count++
			}
		}
	}
	return count
}

// resolvePrototype reads n's ConstructPayload.Prototype, if it resolves
// to a CONSTANT carrying an ImageAttachment or BufferDescriptor.
func resolvePrototype(n *ir.Node) *Prototype {
	payload := ir.AsConstruct(n)
	if !payload.Prototype.IsValid() || payload.Prototype.Node.Kind != ir.Constant {
		return nil
	}
	val := ir.AsConstant(payload.Prototype.Node).Value
	switch v := val.(type) {
	case ir.ImageAttachment:
		return &Prototype{HasImage: true, Image: v}
	case ir.BufferDescriptor:
		return &Prototype{HasBuffer: true, Buffer: v}
	default:
		return nil
	}
}

// fieldValue maps a construct argument index to the prototype field it
// reifies from, for the fixed field order ImageAttachment/BufferDescriptor
// constructs use: width, height, depth, format, samples, baseLayer,
// layerCount, baseLevel, levelCount for images; size for buffers.
func fieldValue(p *Prototype, fieldIndex int) (any, bool) {
	if p.HasImage {
		img := p.Image
		switch fieldIndex {
		case 0:
			if img.Width != 0 {
				return img.Width, true
			}
		case 1:
			if img.Height != 0 {
				return img.Height, true
			}
		case 2:
			if img.Depth != 0 {
				return img.Depth, true
			}
		case 3:
			if img.Format != ir.FormatUndefined {
				return img.Format, true
			}
		case 4:
			if img.SampleCount != ir.SamplesInfer {
				return img.SampleCount, true
			}
		case 5:
			return img.BaseLayer, true
		case 6:
			if img.LayerCount != 0 {
				return img.LayerCount, true
			}
		case 7:
			return img.BaseLevel, true
		case 8:
			if img.LevelCount != 0 {
				return img.LevelCount, true
			}
		}
	}
	if p.HasBuffer && fieldIndex == 0 && p.Buffer.Size != 0 {
		return p.Buffer.Size, true
	}
	return nil, false
}

func isPlaceholder(r ir.Ref) bool {
	return r.IsValid() && r.Node.Kind == ir.Placeholder
}

func newConstant(m *ir.Module, ty *ir.Type, value any) ir.Ref {
	n := &ir.Node{Kind: ir.Constant, Types: []*ir.Type{ty}, Payload: &ir.ConstantPayload{Value: value, Owned: false}}
	m.AddNode(n)
	n.AllocateLinks()
	return ir.First(n)
}
