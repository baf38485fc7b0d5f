// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import "github.com/gogpu/rendergraph/ir"

// provisionalLink is the throwaway per-chain bookkeeping implicit
// linking builds to discover topology ahead of the committing Build
// pass, without touching the real ir.ChainLink records.
type provisionalLink struct {
	def, undef ir.Ref
	reads      []ir.Ref
}

// ImplicitLink builds a provisional chain-link set over order (taken as
// given; the compiler passes ir.Reachable's post-order, which is not
// sorted by node.Index) to establish def/undef/read relationships ahead of the real link
// pass. This exists because write-of-an-already-written value and
// slice/converge topology must be understood before Build can safely
// populate the real Links arrays; the provisional set is discarded once
// this function returns (spec §4.2).
//
// It returns the set of Refs that are written more than once without an
// intervening CONVERGE — i.e. exactly the set Build's walkWrites will
// need to resolve — so callers can pre-size or short-circuit before
// running the real pass. The provisional links themselves are not
// returned; they exist only for this computation.
func ImplicitLink(order []*ir.Node) []ir.Ref {
	links := make(map[ir.Ref]*provisionalLink)

	get := func(ref ir.Ref) *provisionalLink {
		if l, ok := links[ref]; ok {
			return l
		}
		l := &provisionalLink{def: ref}
		links[ref] = l
		return l
	}

	var conflicts []ir.Ref
	for _, n := range order {
		switch n.Kind {
		case ir.Construct, ir.Call, ir.Converge:
			for i, arg := range n.Args {
				if !arg.IsValid() {
					continue
				}
				l := get(arg)
				write := true
				switch n.Kind {
				case ir.Call:
					p := ir.AsCall(n)
					write = i < len(p.ArgAccesses) && p.ArgAccesses[i].IsWriteAccess()
				case ir.Converge:
					p := ir.AsConverge(n)
					write = i < len(p.Write) && p.Write[i]
				}
				if !write {
					l.reads = append(l.reads, ir.First(n))
					continue
				}
				if l.undef.IsValid() {
					conflicts = append(conflicts, arg)
					continue
				}
				l.undef = ir.First(n)
			}
		case ir.Splice:
			payload := ir.AsSplice(n)
			if payload.IsInert() {
				for _, arg := range n.Args {
					if arg.IsValid() {
						get(arg).undef = ir.First(n)
					}
				}
			}
		}
	}
	return conflicts
}
