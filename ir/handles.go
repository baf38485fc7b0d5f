// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// Opaque resource handles.
//
// These IDs represent concrete, already-allocated GPU resources that a
// CONSTRUCT node's prototype may carry. A zero handle means "not yet
// allocated" — the construct describes a resource to be created rather
// than one that already exists. Duplicate-acquire validation (see the
// validate package) compares these handles, not Go pointers, so two
// constructs that alias the same swapchain image are caught even if they
// were built from unrelated Go values.
type (
	// ImageHandle identifies a concrete GPU image/texture.
	ImageHandle uint64

	// BufferHandle identifies a concrete GPU buffer.
	BufferHandle uint64

	// SwapchainHandle identifies a concrete presentation swapchain.
	SwapchainHandle uint64
)

// InvalidHandle is the zero value shared by all handle kinds, representing
// "no concrete resource backs this yet".
const InvalidHandle = 0

// IsValid reports whether h refers to a concrete image.
func (h ImageHandle) IsValid() bool { return h != InvalidHandle }

// IsValid reports whether h refers to a concrete buffer.
func (h BufferHandle) IsValid() bool { return h != InvalidHandle }

// IsValid reports whether h refers to a concrete swapchain.
func (h SwapchainHandle) IsValid() bool { return h != InvalidHandle }

// Format mirrors the subset of gputypes.TextureFormat the compiler needs
// to reason about framebuffer attachments. It is redeclared here (rather
// than importing gputypes.TextureFormat directly into ImageAttachment)
// because FormatUndefined must be the zero value for placeholder
// detection in the reifier, which gputypes.TextureFormatUndefined also
// happens to satisfy — see reify's fieldValue, which leaves a
// FormatUndefined prototype format unreified.
type Format uint32

// FormatUndefined is the placeholder format, matching
// gputypes.TextureFormatUndefined's zero-value convention.
const FormatUndefined Format = 0

// Samples is the multisample count of an image, or SamplesInfer when the
// sample count has not yet been determined and must come from framebuffer
// inference.
type Samples uint32

// SamplesInfer marks a sample count as not-yet-known.
const SamplesInfer Samples = 0

// RemainingMipLevels and RemainingArrayLayers are the sentinel values
// meaning "extend to the end of the resource", used as the initial
// (placeholder-free but unresolved) base/count fields of an image
// attachment prototype before reification narrows them.
const (
	RemainingMipLevels   uint32 = 0xffffffff
	RemainingArrayLayers uint32 = 0xffffffff
)

// Extent2D is a width/height pair, used by framebuffer inference to
// propagate a known render extent across attachments.
type Extent2D struct {
	Width, Height uint32
}

// ImageAttachment describes the concrete or partially-known properties of
// an image resource. A CONSTRUCT node's prototype argument carries one of
// these; fields left at their sentinel value are placeholders the reifier
// may fill in.
type ImageAttachment struct {
	Image       ImageHandle
	Width       uint32
	Height      uint32
	Depth       uint32
	Format      Format
	SampleCount Samples
	BaseLayer   uint32
	LayerCount  uint32
	BaseLevel   uint32
	LevelCount  uint32
}

// BufferDescriptor describes the concrete or partially-known properties of
// a buffer resource.
type BufferDescriptor struct {
	Buffer BufferHandle
	Size   uint64
}

// Swapchain is the opaque, compiler-visible view of a presentation
// swapchain: just enough to drive framebuffer inference from the first
// image's extent/layer count, per spec §4.6.
type Swapchain struct {
	Handle     SwapchainHandle
	Extent     Extent2D
	LayerCount uint32
}
