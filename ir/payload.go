// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// This file defines the per-kind payload structs stored in Node.Payload,
// following the teacher module's one-struct-per-command-type convention
// (recording/command.go's SaveCommand, FillPathCommand, ...): each kind
// that needs data beyond Args/Types gets its own struct, and a typed
// accessor does the Payload type assertion in one place instead of
// scattering it through every pass.

// MathOp identifies the operator of a MATH_BINARY node.
type MathOp uint8

const (
	MathAdd MathOp = iota
	MathSub
	MathMul
	MathDiv
)

func (op MathOp) String() string {
	switch op {
	case MathAdd:
		return "+"
	case MathSub:
		return "-"
	case MathMul:
		return "*"
	case MathDiv:
		return "/"
	default:
		return "?"
	}
}

// ConstantPayload is the payload of a CONSTANT node: a pointer to the
// literal value plus whether the node owns (and must eventually release)
// the backing memory. Owned constants arise from user literals; unowned
// ones alias memory the caller retains ownership of.
type ConstantPayload struct {
	Value any
	Owned bool
}

// AsConstant returns n's ConstantPayload. n.Kind must be Constant.
func AsConstant(n *Node) *ConstantPayload {
	return n.Payload.(*ConstantPayload)
}

// ConstructPayload is the payload of a CONSTRUCT node: the prototype Ref
// it specializes (invalid for a from-scratch construct) plus the
// resource-specific arguments already captured in Args.
type ConstructPayload struct {
	// Prototype is the existing resource this CONSTRUCT derives from, or
	// the zero Ref to build a brand new one. Used by reification to seed
	// unknown fields (spec §6.2's "construct node carries an optional
	// prototype it inherits unset fields from").
	Prototype Ref
}

// AsConstruct returns n's ConstructPayload. n.Kind must be Construct.
func AsConstruct(n *Node) *ConstructPayload {
	return n.Payload.(*ConstructPayload)
}

// CallPayload is the payload of a CALL node: the opaque function name
// and the per-argument access each Args entry is used with.
type CallPayload struct {
	FnName      string
	ArgAccesses []Access
}

// AsCall returns n's CallPayload. n.Kind must be Call.
func AsCall(n *Node) *CallPayload {
	return n.Payload.(*CallPayload)
}

// SplicePayload is the payload of a SPLICE node: the resource it
// straddles (Args[0]), the optional release signal armed on this
// splice's write side, the optional acquire signal waited on its read
// side, and the destination access/domain the splice's consumer expects.
type SplicePayload struct {
	Release *Signal
	Acquire *Signal

	DstAccess Access
	DstDomain DomainMask
}

// AsSplice returns n's SplicePayload. n.Kind must be Splice.
func AsSplice(n *Node) *SplicePayload {
	return n.Payload.(*SplicePayload)
}

// IsInert reports whether a SPLICE carries no armed signal on either
// side, making it eligible for elimination (spec §4.5).
func (p *SplicePayload) IsInert() bool {
	return !p.Release.IsArmed() && !p.Acquire.IsArmed()
}

// SlicePayload is the payload of a SLICE node: the requested sub-range,
// given as Refs so constant-folded expressions (MATH_BINARY results)
// can feed it, not just literal CONSTANTs.
type SlicePayload struct {
	BaseLevel  Ref
	LevelCount Ref
	BaseLayer  Ref
	LayerCount Ref
}

// AsSlice returns n's SlicePayload. n.Kind must be Slice.
func AsSlice(n *Node) *SlicePayload {
	return n.Payload.(*SlicePayload)
}

// ConvergePayload is the payload of a CONVERGE node: for each Args
// entry, whether that diverged branch wrote the resource (true) or only
// read it (false). The SSA rewrite consults this to decide which
// incoming branch's ChainLink becomes the merged link's Def.
type ConvergePayload struct {
	Write []bool
}

// AsConverge returns n's ConvergePayload. n.Kind must be Converge.
func AsConverge(n *Node) *ConvergePayload {
	return n.Payload.(*ConvergePayload)
}

// ExtractPayload is the payload of an EXTRACT node: the field index of
// Args[0]'s composite value that this node selects.
type ExtractPayload struct {
	FieldIndex int
}

// AsExtract returns n's ExtractPayload. n.Kind must be Extract.
func AsExtract(n *Node) *ExtractPayload {
	return n.Payload.(*ExtractPayload)
}

// AcquirePayload is the payload of an ACQUIRE_NEXT_IMAGE node: the
// swapchain it acquires from, given as Args[0].
type AcquirePayload struct{}

// MathBinaryPayload is the payload of a MATH_BINARY node: the operator
// applied to Args[0] and Args[1].
type MathBinaryPayload struct {
	Op MathOp
}

// AsMathBinary returns n's MathBinaryPayload. n.Kind must be MathBinary.
func AsMathBinary(n *Node) *MathBinaryPayload {
	return n.Payload.(*MathBinaryPayload)
}
