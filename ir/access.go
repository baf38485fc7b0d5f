// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

import "github.com/gogpu/gputypes"

// Access describes how a CALL argument or SPLICE destination touches a
// resource. Every Access falls into exactly one of the read/write/
// readwrite partitions; the is* classifier methods below expose that
// partitioning along with the stage/layout implications the sync builder
// needs.
type Access uint8

const (
	// AccessNone means the argument carries no imbuement: SPLICE's zero
	// destination access, and on a CALL an argument that is neither read
	// nor written (link building records no use for it).
	AccessNone Access = iota

	// AccessSampledRead is a read through a sampler in a shader stage.
	AccessSampledRead
	// AccessStorageRead is a read-only storage image/buffer binding.
	AccessStorageRead
	// AccessStorageWrite is a write-only storage image/buffer binding.
	AccessStorageWrite
	// AccessStorageRW is a read-write storage image/buffer binding.
	AccessStorageRW
	// AccessColorRW is a color attachment read-write (render target).
	AccessColorRW
	// AccessDepthStencilRW is a depth-stencil attachment read-write.
	AccessDepthStencilRW
	// AccessTransferRead is a copy-source read.
	AccessTransferRead
	// AccessTransferWrite is a copy-destination write.
	AccessTransferWrite
	// AccessClear is a write that clears a resource to a fixed value.
	AccessClear
	// AccessConsume is a write that consumes (invalidates) its source,
	// e.g. a SPLICE release to an external signal.
	AccessConsume
	// AccessMemoryRW is a conservative read-write covering all memory
	// access types, used for cross-domain synchronization where the
	// precise access cannot be narrowed.
	AccessMemoryRW
	// AccessResolveRead is the multisample source of a resolve operation.
	AccessResolveRead
	// AccessResolveWrite is the single-sample destination of a resolve.
	AccessResolveWrite
)

var accessNames = [...]string{
	AccessNone:           "None",
	AccessSampledRead:    "SampledRead",
	AccessStorageRead:    "StorageRead",
	AccessStorageWrite:   "StorageWrite",
	AccessStorageRW:      "StorageRW",
	AccessColorRW:        "ColorRW",
	AccessDepthStencilRW: "DepthStencilRW",
	AccessTransferRead:   "TransferRead",
	AccessTransferWrite:  "TransferWrite",
	AccessClear:          "Clear",
	AccessConsume:        "Consume",
	AccessMemoryRW:       "MemoryRW",
	AccessResolveRead:    "ResolveRead",
	AccessResolveWrite:   "ResolveWrite",
}

// String renders the access for diagnostics and dot dumps, matching the
// original implementation's Type::to_sv(Access).
func (a Access) String() string {
	if int(a) < len(accessNames) && accessNames[a] != "" {
		return accessNames[a]
	}
	return "Unknown"
}

// IsWriteAccess reports whether access writes its resource (Write or
// ReadWrite partition).
func (a Access) IsWriteAccess() bool {
	switch a {
	case AccessStorageWrite, AccessStorageRW, AccessColorRW, AccessDepthStencilRW,
		AccessTransferWrite, AccessClear, AccessConsume, AccessMemoryRW, AccessResolveWrite:
		return true
	default:
		return false
	}
}

// IsReadonlyAccess reports whether access only reads its resource (Read
// partition, no write component at all).
func (a Access) IsReadonlyAccess() bool {
	switch a {
	case AccessSampledRead, AccessStorageRead, AccessTransferRead, AccessResolveRead:
		return true
	default:
		return false
	}
}

// IsTransferAccess reports whether access is a copy-engine access.
func (a Access) IsTransferAccess() bool {
	return a == AccessTransferRead || a == AccessTransferWrite
}

// IsStorageAccess reports whether access is a storage image/buffer
// binding (as opposed to a sampled read or framebuffer attachment).
func (a Access) IsStorageAccess() bool {
	return a == AccessStorageRead || a == AccessStorageWrite || a == AccessStorageRW
}

// IsFramebufferAttachment reports whether access binds its resource as a
// render pass attachment, making it a candidate for framebuffer
// extent/samples/layer-count inference.
func (a Access) IsFramebufferAttachment() bool {
	switch a {
	case AccessColorRW, AccessDepthStencilRW, AccessResolveWrite:
		return true
	default:
		return false
	}
}

// AccessFlags is a bitmask of memory access types, analogous to a GPU
// barrier's src/dst access mask. gputypes models the WebGPU-level binding
// surface (textures, buffers, bind groups) but does not expose explicit
// barrier access bits, so this compiler declares its own — the sync
// layer this IR produces is a lower-level contract than anything
// gputypes/wgpu need to represent directly.
type AccessFlags uint32

const (
	AccessFlagShaderRead                  AccessFlags = 1 << 0
	AccessFlagShaderWrite                 AccessFlags = 1 << 1
	AccessFlagColorAttachmentRead         AccessFlags = 1 << 2
	AccessFlagColorAttachmentWrite        AccessFlags = 1 << 3
	AccessFlagDepthStencilAttachmentRead  AccessFlags = 1 << 4
	AccessFlagDepthStencilAttachmentWrite AccessFlags = 1 << 5
	AccessFlagTransferRead                AccessFlags = 1 << 6
	AccessFlagTransferWrite               AccessFlags = 1 << 7
	AccessFlagMemoryRead                  AccessFlags = 1 << 8
	AccessFlagMemoryWrite                 AccessFlags = 1 << 9
)

// ImageLayout is the image layout a use requires. Only the layouts the
// compiler can actually select appear here: §4.11/§8 property 7 restrict
// a merged read group's chosen layout to {ReadOnlyOptimal,
// TransferSrcOptimal, General}; the remaining values are what a write
// access or framebuffer attachment may require.
type ImageLayout uint8

const (
	LayoutUndefined ImageLayout = iota
	LayoutGeneral
	LayoutColorAttachmentOptimal
	LayoutDepthStencilAttachmentOptimal
	LayoutReadOnlyOptimal
	LayoutTransferSrcOptimal
	LayoutTransferDstOptimal
	LayoutResolveAttachmentOptimal
)

// QueueResourceUse is the synchronization-relevant projection of an
// Access: the pipeline stages it executes in, the memory access bits it
// performs, and the image layout it requires. ChainLink.UndefSync and
// ChainLink.ReadSync are *QueueResourceUse values computed by the sync
// package from the Access annotations on a link's consumers.
type QueueResourceUse struct {
	Stages gputypes.ShaderStage
	Access AccessFlags
	Layout ImageLayout
}

// ToUse converts an Access into the QueueResourceUse a single use of that
// access implies, per the mapping table implicit in spec §3/§4.11. Stage
// is left as ShaderStageCompute|ShaderStageFragment|ShaderStageVertex for
// accesses that can occur in any shader stage, since the Access alone
// does not pin down which stage a CALL's opaque function runs in. The
// sync builder uses this mask as is; it does not narrow it to a call's
// actual pipeline stages.
func (a Access) ToUse() QueueResourceUse {
	shaderStages := gputypes.ShaderStageVertex | gputypes.ShaderStageFragment | gputypes.ShaderStageCompute
	switch a {
	case AccessSampledRead:
		return QueueResourceUse{Stages: shaderStages, Access: AccessFlagShaderRead, Layout: LayoutReadOnlyOptimal}
	case AccessStorageRead:
		return QueueResourceUse{Stages: shaderStages, Access: AccessFlagShaderRead, Layout: LayoutGeneral}
	case AccessStorageWrite:
		return QueueResourceUse{Stages: shaderStages, Access: AccessFlagShaderWrite, Layout: LayoutGeneral}
	case AccessStorageRW:
		return QueueResourceUse{Stages: shaderStages, Access: AccessFlagShaderRead | AccessFlagShaderWrite, Layout: LayoutGeneral}
	case AccessColorRW:
		return QueueResourceUse{
			Stages: gputypes.ShaderStageFragment,
			Access: AccessFlagColorAttachmentRead | AccessFlagColorAttachmentWrite,
			Layout: LayoutColorAttachmentOptimal,
		}
	case AccessDepthStencilRW:
		return QueueResourceUse{
			Stages: gputypes.ShaderStageFragment,
			Access: AccessFlagDepthStencilAttachmentRead | AccessFlagDepthStencilAttachmentWrite,
			Layout: LayoutDepthStencilAttachmentOptimal,
		}
	case AccessTransferRead:
		return QueueResourceUse{Access: AccessFlagTransferRead, Layout: LayoutTransferSrcOptimal}
	case AccessTransferWrite:
		return QueueResourceUse{Access: AccessFlagTransferWrite, Layout: LayoutTransferDstOptimal}
	case AccessClear:
		return QueueResourceUse{Access: AccessFlagTransferWrite, Layout: LayoutTransferDstOptimal}
	case AccessConsume:
		return QueueResourceUse{Access: AccessFlagMemoryRead, Layout: LayoutGeneral}
	case AccessMemoryRW:
		return QueueResourceUse{Access: AccessFlagMemoryRead | AccessFlagMemoryWrite, Layout: LayoutGeneral}
	case AccessResolveRead:
		return QueueResourceUse{Access: AccessFlagColorAttachmentRead, Layout: LayoutColorAttachmentOptimal}
	case AccessResolveWrite:
		return QueueResourceUse{Access: AccessFlagColorAttachmentWrite, Layout: LayoutResolveAttachmentOptimal}
	default:
		return QueueResourceUse{}
	}
}
