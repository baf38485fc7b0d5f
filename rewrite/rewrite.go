// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rewrite implements the generic node-rewrite engine used to
// normalize a linked graph: splice elimination and slice bridging both
// run as predicates over this engine (spec §4.5).
package rewrite

import (
	"github.com/gogpu/rendergraph/ir"
)

// Predicate inspects a node and records any substitutions it implies
// through r. It must not mutate the node's Args directly — all
// substitution happens in Engine.Apply's single linear pass.
type Predicate func(n *ir.Node, r *Replacer)

// Replacer accumulates needle→value substitutions and keeps them in
// normal form: chains of replacements are collapsed transitively as
// they're added, so that after every predicate has run, looking up any
// needle yields its final value directly, with no intermediate hops
// left over regardless of the order predicates ran in.
type Replacer struct {
	to map[ir.Ref]ir.Ref
}

// NewReplacer creates an empty Replacer.
func NewReplacer() *Replacer {
	return &Replacer{to: make(map[ir.Ref]ir.Ref)}
}

// Set records needle → value, collapsing through any existing chain:
//   - if value itself has an existing replacement value → final, needle
//     is redirected straight to final instead of to value.
//   - any existing needle' → needle mapping is retargeted to value's
//     final destination, so a→b followed by b→c rewrites a→b to a→c,
//     and b→c arriving after a→b already exists produces the same result
//     regardless of which predicate ran first.
func (r *Replacer) Set(needle, value ir.Ref) {
	final := value
	if v, ok := r.to[value]; ok {
		final = v
	}
	r.to[needle] = final
	for k, v := range r.to {
		if v == needle {
			r.to[k] = final
		}
	}
}

// Lookup returns the final replacement for ref, and whether one exists.
func (r *Replacer) Lookup(ref ir.Ref) (ir.Ref, bool) {
	v, ok := r.to[ref]
	return v, ok
}

// Len reports how many substitutions are currently recorded.
func (r *Replacer) Len() int {
	return len(r.to)
}

// Engine runs a set of predicates over a node order, then performs the
// single safe in-place substitution pass: every argument reference
// across every node is collected, replacements and arg-refs are
// effectively joined by needle, and each matching argument is
// overwritten with its final replacement value.
type Engine struct {
	order      []*ir.Node
	predicates []Predicate
}

// NewEngine creates an Engine over order (typically the same post-order
// node list link.Builder.Order returns).
func NewEngine(order []*ir.Node) *Engine {
	return &Engine{order: order}
}

// Use registers a predicate to run during Apply.
func (e *Engine) Use(p Predicate) {
	e.predicates = append(e.predicates, p)
}

// Apply runs every registered predicate over every node, then performs
// the single linear substitution pass. It returns the number of
// argument references it rewrote.
func (e *Engine) Apply() int {
	r := NewReplacer()
	for _, p := range e.predicates {
		for _, n := range e.order {
			p(n, r)
		}
	}
	return e.substitute(r)
}

// substitute performs the single safe linear substitution pass. Walking
// e.order (the stable post-order node list) rather than the
// replacer's map keeps the rewrite deterministic across runs even
// though Go map iteration order is not, since every write still lands
// through the same per-node Args slices in the same sequence each time.
func (e *Engine) substitute(r *Replacer) int {
	if r.Len() == 0 {
		return 0
	}
	count := 0
	for _, n := range e.order {
		for i, arg := range n.Args {
			if v, ok := r.Lookup(arg); ok {
				n.Args[i] = v
				count++
			}
		}
	}
	return count
}
