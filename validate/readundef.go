// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package validate implements the two graph-structural validators that
// the compiler runs right after the post-rewrite relink, before chain
// collection, reification and scheduling: read-before-write and
// duplicate resource reference (spec §4.12).
package validate

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// ReadOfUndef reports the first CONSTRUCT whose result is read without ever
// being written: a link with reads but no undef means the resource is
// consumed before anything produced a value for it. A splice-only chain
// (undef is a SPLICE) is followed through to its real consumer before
// being judged undef-free, since a disarmed splice is transparent.
func ReadOfUndef(order []*ir.Node) error {
	for _, n := range order {
		if n.Kind != ir.Construct {
			continue
		}
		if len(n.Types) == 0 || n.Types[0].Kind == ir.ArrayTy {
			continue
		}
		if len(n.Links) == 0 {
			continue
		}
		link := &n.Links[0]
		if len(link.Reads) == 0 {
			continue
		}
		if hasRealWriter(link) {
			continue
		}
		return fmt.Errorf("validate: CONSTRUCT(%d) is read but never written", n.Index)
	}
	return nil
}

// hasRealWriter reports whether link's undef chain eventually reaches a
// non-splice writer, following through any chain of disarmed splices.
func hasRealWriter(link *ir.ChainLink) bool {
	undef := link.Undef
	for undef.IsValid() {
		if undef.Node.Kind != ir.Splice {
			return true
		}
		if !undef.HasLink() {
			return false
		}
		next := undef.Link().Undef
		if !next.IsValid() {
			return false
		}
		undef = next
	}
	return false
}
