// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// Ref selects one result of one node: the pair (Node, Result).
// The zero Ref (nil node) means "no reference" and is used throughout the
// compiler as the sentinel for an absent def/undef.
type Ref struct {
	Node   *Node
	Result uint16
}

// IsValid reports whether r names an actual node result.
func (r Ref) IsValid() bool { return r.Node != nil }

// Type returns the result type r selects.
func (r Ref) Type() *Type {
	return r.Node.Types[r.Result]
}

// Link returns the ChainLink for the result r selects. The node must
// already have had its Links allocated by the link builder.
func (r Ref) Link() *ChainLink {
	return &r.Node.Links[r.Result]
}

// HasLink reports whether the node r refers to has had its Links array
// allocated yet (link building allocates Links only for nodes reachable
// at build time; SSA-introduced CONVERGE nodes get theirs allocated
// inline by the rewrite that creates them).
func (r Ref) HasLink() bool {
	return r.Node != nil && r.Node.Links != nil
}

// Equal reports whether r and o name the same node result.
func (r Ref) Equal(o Ref) bool {
	return r.Node == o.Node && r.Result == o.Result
}
