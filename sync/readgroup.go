// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sync

import "github.com/gogpu/rendergraph/ir"

// MergeReadGroup computes the single QueueResourceUse representing every
// concurrent read recorded against a link, so that the sync builder
// installs one read_sync per link instead of a separate barrier per
// reader — the whole point being to avoid spurious read-to-read
// barriers (spec §4.11).
//
// Access bits and shader stages are OR'd across every read. The layout
// is chosen by the documented decision table: ReadOnlyOptimal by
// default; TransferSrcOptimal if every read is a transfer read and none
// is a generic read-only use; General if any read is a storage read, or
// if the group mixes transfer and non-transfer reads.
func MergeReadGroup(reads []ir.Ref, linkOwner ir.Ref) ir.QueueResourceUse {
	accesses := collectReadAccesses(reads, linkOwner)
	if len(accesses) == 0 {
		return ir.QueueResourceUse{Layout: ir.LayoutReadOnlyOptimal}
	}

	var merged ir.QueueResourceUse
	merged.Layout = ir.LayoutReadOnlyOptimal

	hasTransfer, hasNonTransfer, hasStorage := false, false, false
	for _, a := range accesses {
		use := a.ToUse()
		merged.Stages |= use.Stages
		merged.Access |= use.Access
		if a.IsTransferAccess() {
			hasTransfer = true
		} else {
			hasNonTransfer = true
		}
		if a.IsStorageAccess() {
			hasStorage = true
		}
	}

	switch {
	case hasStorage || (hasTransfer && hasNonTransfer):
		merged.Layout = ir.LayoutGeneral
	case hasTransfer && !hasNonTransfer:
		merged.Layout = ir.LayoutTransferSrcOptimal
	default:
		merged.Layout = ir.LayoutReadOnlyOptimal
	}
	return merged
}

// collectReadAccesses recovers each reader's Access against this link by
// inspecting the CALL payload that named it — the read list itself only
// stores Refs, not the access that qualified them, so this walks back
// to each reader's CallPayload to find the matching argument's access.
func collectReadAccesses(reads []ir.Ref, linkOwner ir.Ref) []ir.Access {
	var out []ir.Access
	for _, reader := range reads {
		if reader.Node == nil || reader.Node.Kind != ir.Call {
			continue
		}
		payload := ir.AsCall(reader.Node)
		for i, arg := range reader.Node.Args {
			if arg.Equal(linkOwner) && i < len(payload.ArgAccesses) {
				out = append(out, payload.ArgAccesses[i])
			}
		}
	}
	return out
}
