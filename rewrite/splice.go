// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rewrite

import "github.com/gogpu/rendergraph/ir"

// DeferredSplice records a SPLICE that must survive past elimination
// because it carries a live signal: its last real use (found by walking
// its chain to the tail) is the point at which its signal must actually
// fire, so the executor needs to know where to splice the wait/arm in.
type DeferredSplice struct {
	Splice  *ir.Node
	LastUse ir.Ref
}

// EliminateSplices is a rewrite.Predicate: for every SPLICE whose
// destination access is None, destination domain is Any (or left unset,
// the zero DomainMask), and which carries neither a release nor an
// acquire signal, each source ref is substituted directly for the
// corresponding result ref — the splice contributed nothing but a name,
// so it disappears entirely.
//
// Splices that must signal are not eliminated. They're recorded into
// deferred instead, each with its last real consumer, so that whatever
// later pass drives signal storage (out of scope for this compiler) has
// the information it needs without walking the graph again.
func EliminateSplices(deferred *[]DeferredSplice) Predicate {
	return func(n *ir.Node, r *Replacer) {
		if n.Kind != ir.Splice {
			return
		}
		payload := ir.AsSplice(n)
		if !payload.IsInert() {
			lastUse := spliceTail(n)
			*deferred = append(*deferred, DeferredSplice{Splice: n, LastUse: lastUse})
			return
		}
		if payload.DstAccess == ir.AccessNone && (payload.DstDomain == ir.DomainAny || payload.DstDomain == ir.DomainDevice) {
			for i, arg := range n.Args {
				if i < len(n.Types) {
					r.Set(n.Result(i), arg)
				}
			}
		}
	}
}

// spliceTail walks result 0's chain forward to its last link (the one
// with no further Undef), then returns that link's last recorded read
// if it has any, else the write that produced the link itself. That is
// the point a deferred splice's signal must be scheduled at: the latest
// real consumer of the value the splice straddles.
func spliceTail(n *ir.Node) ir.Ref {
	ref := ir.First(n)
	if !ref.HasLink() {
		return ref
	}
	last := ref
	for last.HasLink() && last.Link().Undef.IsValid() {
		last = last.Link().Undef
	}
	if !last.HasLink() {
		return last
	}
	if reads := last.Link().Reads; len(reads) > 0 {
		return reads[len(reads)-1]
	}
	return last
}
