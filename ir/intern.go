// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// TypeInterner deduplicates Type values by structural equality so that
// two independently-constructed but structurally identical types compare
// equal by pointer.
//
// This is adapted from the teacher module's ShardedCache
// (cache/sharded.go): same GetOrCreate-shaped API and the same
// hash-bucket-then-linear-probe idea, but with the sharding, locking, and
// LRU eviction stripped out. A type interner must never evict — an
// evicted-then-recreated Type would intern to a new pointer and silently
// break every chain-link invariant keyed on Type identity — and the
// compiler is single-threaded per compile (spec §5), so the concurrency
// cache's mutex-per-shard design buys nothing here.
type TypeInterner struct {
	byKey map[string]*Type
}

// NewTypeInterner creates an empty interner.
func NewTypeInterner() *TypeInterner {
	return &TypeInterner{byKey: make(map[string]*Type, 64)}
}

// Intern returns the canonical *Type for t, creating and storing one if
// this is the first time a structurally-equal Type has been seen.
// Composite fields (ElementType, Underlying, FnArgs) must already be
// interned pointers — Intern only compares at the top level.
func (in *TypeInterner) Intern(t Type) *Type {
	k := t.key()
	if existing, ok := in.byKey[k]; ok {
		return existing
	}
	stored := t
	in.byKey[k] = &stored
	return &stored
}

// Len reports how many distinct types have been interned.
func (in *TypeInterner) Len() int {
	return len(in.byKey)
}
