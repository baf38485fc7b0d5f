// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

import (
	"fmt"
	"strconv"

	nagair "github.com/gogpu/naga/ir"
)

// TypeKind discriminates the variants of Type.
type TypeKind uint8

const (
	// IntegerTy is a fixed-width integer value type, used for constant
	// scalar arguments (subrange bounds, prototype fields, ...).
	IntegerTy TypeKind = iota
	// MemoryTy is an opaque block of bytes, used for CONSTANT nodes that
	// hold struct-shaped prototype data (ImageAttachment, BufferDescriptor).
	MemoryTy
	// ArrayTy is a fixed-length composite of ElementType.
	ArrayTy
	// ImageTy is an opaque GPU image/texture resource.
	ImageTy
	// BufferTy is an opaque GPU buffer resource.
	BufferTy
	// SwapchainTy is an opaque presentation swapchain resource.
	SwapchainTy
	// ImbuedTy wraps an underlying resource type with an Access,
	// describing how a CALL argument touches that resource.
	ImbuedTy
	// AliasedTy marks a CALL result as aliasing one of its arguments:
	// AliasedRefIdx names the argument index whose chain the result
	// continues.
	AliasedTy
	// OpaqueFnTy is the signature of an opaque external function invoked
	// by a CALL node — the pass-builder façade (out of scope) is the only
	// thing that constructs these, but the compiler reads their argument
	// Access annotations during link building and sync derivation.
	OpaqueFnTy
	// ShaderFnTy is the signature of a shader entry point invoked by a
	// CALL node, carrying naga reflection data for the entry point. The
	// sync builder does not read it: its stage masks come from Access
	// alone.
	ShaderFnTy
)

// Type is an interned descriptor for a value flowing through the graph.
// Types are compared by pointer identity after interning through a
// TypeInterner — two structurally equal Type values always intern to the
// same *Type.
type Type struct {
	Kind TypeKind

	// IntegerTy
	IntegerWidth uint8

	// MemoryTy
	MemorySize uint32

	// ArrayTy
	ElementType *Type
	ArrayLength uint32 // 0 means unbounded/dynamic length

	// ImbuedTy
	ImbuedAccess Access
	Underlying   *Type

	// AliasedTy
	AliasedRefIdx uint8

	// OpaqueFnTy / ShaderFnTy
	FnName string
	FnArgs []*Type

	// ShaderFnTy only: naga's reflected entry point for this shader,
	// carried through the graph; no pass reads it, and it is not part of
	// the interning key.
	ShaderEntryPoint *nagair.EntryPoint
}

// key returns a canonical string encoding of t's structure, used by
// TypeInterner to deduplicate structurally-equal types. Child types are
// expected to already be interned (hence safe to key by pointer), so this
// never recurses more than one level deep.
func (t *Type) key() string {
	switch t.Kind {
	case IntegerTy:
		return "int:" + strconv.Itoa(int(t.IntegerWidth))
	case MemoryTy:
		return "mem:" + strconv.Itoa(int(t.MemorySize))
	case ArrayTy:
		return "arr:" + ptrKey(t.ElementType) + ":" + strconv.Itoa(int(t.ArrayLength))
	case ImageTy:
		return "img"
	case BufferTy:
		return "buf"
	case SwapchainTy:
		return "swp"
	case ImbuedTy:
		return "imb:" + strconv.Itoa(int(t.ImbuedAccess)) + ":" + ptrKey(t.Underlying)
	case AliasedTy:
		return "als:" + strconv.Itoa(int(t.AliasedRefIdx))
	case OpaqueFnTy:
		return "ofn:" + t.FnName + ":" + fnArgsKey(t.FnArgs)
	case ShaderFnTy:
		return "sfn:" + t.FnName + ":" + fnArgsKey(t.FnArgs)
	default:
		return "?"
	}
}

func ptrKey(t *Type) string {
	if t == nil {
		return "nil"
	}
	return fmt.Sprintf("%p", t)
}

func fnArgsKey(args []*Type) string {
	s := ""
	for _, a := range args {
		s += ptrKey(a) + ","
	}
	return s
}
