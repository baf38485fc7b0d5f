// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// NodeKind identifies the variant of a Node, mirroring the teacher
// module's tagged CommandType (recording/command.go): a small integer
// enum with a String() lookup table, switched on throughout the compiler
// instead of a type-per-kind class hierarchy.
type NodeKind uint8

const (
	// Constant is a literal value, optionally owning its backing bytes.
	Constant NodeKind = iota
	// Placeholder is an unknown value awaiting reification.
	Placeholder
	// Construct materializes a resource from a prototype plus field
	// arguments.
	Construct
	// Call invokes an opaque function with imbued-typed arguments.
	Call
	// Splice is a release/acquire synchronization seam.
	Splice
	// Slice partitions an image into (sub-range, remainder).
	Slice
	// Converge merges previously diverged sub-chains back into one value.
	Converge
	// Extract accesses a field of a composite value.
	Extract
	// AcquireNextImage acquires the next presentable swapchain image.
	AcquireNextImage
	// MathBinary computes a binary arithmetic result, used for constant
	// folding of subrange/extent expressions.
	MathBinary
	// Garbage is a tombstone; garbage nodes are never scheduled and are
	// reclaimed by the module's GC pass once unreferenced.
	Garbage
)

var nodeKindNames = [...]string{
	Constant:         "CONSTANT",
	Placeholder:      "PLACEHOLDER",
	Construct:        "CONSTRUCT",
	Call:             "CALL",
	Splice:           "SPLICE",
	Slice:            "SLICE",
	Converge:         "CONVERGE",
	Extract:          "EXTRACT",
	AcquireNextImage: "ACQUIRE_NEXT_IMAGE",
	MathBinary:       "MATH_BINARY",
	Garbage:          "GARBAGE",
}

// String returns the upper-snake-case name used in diagnostics and dot
// dumps, matching the original implementation's kind_to_sv().
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "UNKNOWN"
}

// Node is the IR unit: one operation producing zero or more typed
// results. Kind-specific data lives in Payload (see payload.go) rather
// than as a C-style union of structs — Go slices already give every node
// a proper variable-length Args vector, so spec §9's "variable-arity
// sentinel should be a proper variant" design note is satisfied by the
// language itself; only the per-kind payload still needs a sum type,
// which Payload provides via a type switch.
type Node struct {
	Kind  NodeKind
	Types []*Type

	DebugInfo *DebugInfo

	// RequiredDomains constrains which queue domain(s) this node may run
	// on; the zero value (DomainDevice, no queue bit set) means
	// unconstrained.
	RequiredDomains DomainMask

	// ScheduledItem is set once the intra-queue scheduler places this
	// node; nil beforehand and for nodes that are never scheduled
	// (CONSTANT, PLACEHOLDER, EXTRACT, GARBAGE, ...).
	ScheduledItem *ScheduledItem

	// Index is the node's position in its defining module's arena (its
	// creation order). Passes name nodes by it in error messages; link
	// building and scheduling follow ir.Reachable's post-order, not Index.
	Index int

	// Mark is a scratch traversal flag, always false outside of the
	// traversal that is currently using it (spec §5: "mark-flags are
	// reset at the end of each traversal that uses them").
	Mark bool

	// Args are this node's operands, by Ref. Their meaning is
	// kind-specific; see the per-kind accessors in payload.go.
	Args []Ref

	// Links holds one ChainLink per result, allocated by the link
	// builder once this node is known to be reachable. Nil until then.
	Links []ChainLink

	// Payload carries kind-specific data that doesn't fit in Args (a
	// CONSTANT's value bytes, a SPLICE's signal, a SLICE's requested
	// range, ...). Its concrete type is determined by Kind; see
	// payload.go for the per-kind accessors.
	Payload any
}

// Result returns the Ref selecting the node's i-th result.
func (n *Node) Result(i int) Ref {
	return Ref{Node: n, Result: uint16(i)}
}

// First returns the Ref to a node's sole (or first) result — shorthand
// used throughout link building for single-result kinds.
func First(n *Node) Ref {
	return n.Result(0)
}

// AllocateLinks gives n a Links array sized to its result count, if it
// doesn't have one already. Called by the link builder for every
// reachable node, and inline by the SSA rewrite when it manufactures a
// new CONVERGE node mid-pass.
func (n *Node) AllocateLinks() {
	if n.Links != nil {
		return
	}
	if len(n.Types) == 0 {
		return
	}
	n.Links = make([]ChainLink, len(n.Types))
}
