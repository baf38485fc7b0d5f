// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package reify

import "github.com/gogpu/rendergraph/ir"

// knownFramebuffer is what inferFramebuffers has learned about a CALL's
// render target set so far in this pass.
type knownFramebuffer struct {
	extent     ir.Extent2D
	hasExtent  bool
	samples    ir.Samples
	hasSamples bool
	layers     uint32
	hasLayers  bool
}

// inferFramebuffers implements layer 2: for each CALL (the callee's
// function type is not consulted), scan arguments classified as
// framebuffer attachments, gather the known extent/samples/layer-count
// from any of them (a referenced swapchain's first image supplies extent
// and layer count only), then fill every still-placeholder attachment
// field across the same call with those values.
func inferFramebuffers(m *ir.Module, order []*ir.Node) int {
	count := 0
	for _, n := range order {
		if n.Kind != ir.Call {
			continue
		}
		payload := ir.AsCall(n)
		known := gatherKnownFramebuffer(n, payload)
		count += fillAttachmentPlaceholders(m, n, payload, known)
	}
	return count
}

func gatherKnownFramebuffer(n *ir.Node, payload *ir.CallPayload) knownFramebuffer {
	var known knownFramebuffer
	for i, arg := range n.Args {
		access := ir.AccessNone
		if i < len(payload.ArgAccesses) {
			access = payload.ArgAccesses[i]
		}
		if !access.IsFramebufferAttachment() {
			continue
		}
		if img, ok := attachmentImage(arg); ok {
			if img.Width != 0 && img.Height != 0 {
				known.extent = ir.Extent2D{Width: img.Width, Height: img.Height}
				known.hasExtent = true
			}
			if img.SampleCount != ir.SamplesInfer {
				known.samples = img.SampleCount
				known.hasSamples = true
			}
			if img.LayerCount != 0 {
				known.layers = img.LayerCount
				known.hasLayers = true
			}
		}
		if sc, ok := referencedSwapchain(arg); ok {
			known.extent = sc.Extent
			known.hasExtent = true
			known.layers = sc.LayerCount
			known.hasLayers = true
		}
	}
	return known
}

// attachmentImage resolves arg to a CONSTRUCT's concrete ImageAttachment
// prototype, if it has one.
func attachmentImage(arg ir.Ref) (ir.ImageAttachment, bool) {
	if !arg.IsValid() || arg.Node.Kind != ir.Construct {
		return ir.ImageAttachment{}, false
	}
	proto := resolvePrototype(arg.Node)
	if proto == nil || !proto.HasImage {
		return ir.ImageAttachment{}, false
	}
	return proto.Image, true
}

// referencedSwapchain resolves arg to an ACQUIRE_NEXT_IMAGE node whose
// swapchain argument is a compile-time constant, contributing the
// swapchain's first image's extent and layer count to framebuffer
// inference (spec §10 supplement, grounded in IRPasses.cpp).
func referencedSwapchain(arg ir.Ref) (ir.Swapchain, bool) {
	if !arg.IsValid() || arg.Node.Kind != ir.AcquireNextImage {
		return ir.Swapchain{}, false
	}
	if len(arg.Node.Args) == 0 {
		return ir.Swapchain{}, false
	}
	scRef := arg.Node.Args[0]
	if !scRef.IsValid() || scRef.Node.Kind != ir.Constant {
		return ir.Swapchain{}, false
	}
	sc, ok := ir.AsConstant(scRef.Node).Value.(ir.Swapchain)
	if !ok {
		return ir.Swapchain{}, false
	}
	return sc, true
}

func fillAttachmentPlaceholders(m *ir.Module, n *ir.Node, payload *ir.CallPayload, known knownFramebuffer) int {
	count := 0
	for i, arg := range n.Args {
		access := ir.AccessNone
		if i < len(payload.ArgAccesses) {
			access = payload.ArgAccesses[i]
		}
		if !access.IsFramebufferAttachment() {
			continue
		}
		if arg.Node == nil || arg.Node.Kind != ir.Construct {
			continue
		}
		cargs := arg.Node.Args
		for fi := range cargs {
			if !isPlaceholder(cargs[fi]) {
				continue
			}
			if val, ok := inferredValue(fi, known); ok {
				cargs[fi] = newConstant(m, cargs[fi].Type(), val)
				count++
			}
		}
	}
	return count
}

// inferredValue maps a construct argument index to the framebuffer
// property it resolves from, using the same field order as fieldValue:
// width(0), height(1), depth(2), samples(4), baseLayer(5), layerCount(6),
// baseLevel(7), levelCount(8). depth and levelCount are forced to 1 here,
// not in reifyFields: a render pass attachment always targets a single
// depth slice and a single mip level (spec §4.6), but that constraint
// only holds for a CONSTRUCT actually bound as an attachment — a
// non-attachment 3D or mip-mapped image keeps whatever real Depth/
// LevelCount its prototype carries, reified by reifyFields instead.
// baseLayer and baseLevel default to 0: reifyFields already fills both
// from any image prototype, so a placeholder left there means the
// construct has no concrete image. format(3) is never inferred here.
func inferredValue(fieldIndex int, known knownFramebuffer) (any, bool) {
	switch fieldIndex {
	case 0:
		if known.hasExtent {
			return known.extent.Width, true
		}
	case 1:
		if known.hasExtent {
			return known.extent.Height, true
		}
	case 2:
		return uint32(1), true
	case 4:
		if known.hasSamples {
			return known.samples, true
		}
	case 5, 7:
		return uint32(0), true
	case 6:
		if known.hasLayers {
			return known.layers, true
		}
	case 8:
		return uint32(1), true
	}
	return nil, false
}
