// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// ChainLink is the per-result bookkeeping record built by the link
// builder (package link) and refined by every later pass: it threads a
// resource's writes and reads into the doubly-linked "chain" the rest of
// the compiler reasons over, per spec §4.2.
//
// A chain is a sequence of ChainLinks connected by Prev/Next, starting
// at a link whose Prev is the zero Ref (invalid) and ending at one whose
// Next is the zero Ref. Def names the write that produced this link's
// value; Reads names every read that observed it before the next write;
// Undef names the write that follows (the same as the next link's Def,
// kept here too so a link can be inspected without following Next).
type ChainLink struct {
	// Def is the Ref whose evaluation produced the value this link
	// describes: the CONSTRUCT, CALL, CONVERGE, or ACQUIRE_NEXT_IMAGE
	// that wrote it. For a chain's first link, Def is that link's own
	// result, as link building sets it when it starts the chain.
	Def Ref

	// Prev and Next link this record into its chain. The zero Ref (an
	// invalid Ref) marks an end.
	Prev, Next Ref

	// Undef is the write that ends this link's visibility window — the
	// same node as Next's Def, when Next is valid.
	Undef Ref

	// Reads lists every read observed between Def and Undef, in
	// encounter order. Design Note 3 in spec §9 suggests a shared
	// offset/length arena instead of a per-link slice to cut
	// allocations; this implementation keeps the simpler per-link slice
	// since the compiler is not on a hot allocation path per spec's
	// stated scale (§2, "graphs of a few thousand nodes").
	Reads []Ref

	// ChildChains holds the first links of the SLICE nodes that split
	// this link's resource into sub-ranges, appended by link building.
	// No later pass reads it.
	ChildChains []*ChainLink

	// URDef is this link's "ultimate root definition": the CONSTRUCT,
	// ACQUIRE_NEXT_IMAGE, or (for an unresolved link) PLACEHOLDER that
	// introduced the resource this chain belongs to, propagated forward
	// from the chain's head by link.PropagateURDef.
	URDef Ref

	// UndefSync and ReadSync are the derived synchronization
	// requirements for, respectively, this link's terminating write and
	// the merged read group that precedes it. Nil until package sync has
	// run.
	UndefSync *QueueResourceUse
	ReadSync  *QueueResourceUse
}

// IsChainHead reports whether l is the first link in its chain.
func (l *ChainLink) IsChainHead() bool {
	return !l.Prev.IsValid()
}

// IsChainTail reports whether l is the last link in its chain.
func (l *ChainLink) IsChainTail() bool {
	return !l.Next.IsValid()
}
