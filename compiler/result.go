// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"github.com/gogpu/rendergraph/ir"
	"github.com/gogpu/rendergraph/schedule"
)

// CompileResult is everything a successful Compile produces: the final
// link-built node order, every chain head discovered over it, the
// intra-queue Kahn schedule, and its three-way queue partitioning.
type CompileResult struct {
	Order       []*ir.Node
	Chains      []*ir.ChainLink
	Scheduled   []*ir.Node
	Partitioned schedule.Partitioned
}
