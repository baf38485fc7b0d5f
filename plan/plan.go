// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plan

import (
	"github.com/gogpu/rendergraph/ir"
	"github.com/gogpu/rendergraph/schedule"
	"github.com/gogpu/wgpu/core"
)

// QueueSpan is a contiguous run of scheduled nodes destined for one
// queue family, identified by a core.QueueID the runtime resolves
// against its own device — the compiler never opens a queue itself, it
// only labels which family a span belongs to.
type QueueSpan struct {
	Domain ir.DomainMask
	Queue  core.QueueID
	Items  []*ir.Node
}

// ExecutablePlan is the compiler's final output: the three per-queue
// spans from partitioning, the full linear order for diagnostics, and
// the device context the runtime will submit the lowered commands
// against. Nothing in ExecutablePlan is persisted or serialized (spec
// §6: "persisted/emitted format: none").
type ExecutablePlan struct {
	Order []*ir.Node
	Spans []QueueSpan

	Context DeviceContext
}

// Build assembles an ExecutablePlan from a partitioning result. Queue
// identifiers are left zero-valued (core.QueueID{}); the runtime binds
// real queue IDs to each span's Domain when it resolves ctx against an
// actual device, the same deferred-binding split render.DeviceHandle
// draws between gg supplying descriptors and the host supplying the
// device.
func Build(p schedule.Partitioned, ctx DeviceContext) *ExecutablePlan {
	plan := &ExecutablePlan{Order: p.All, Context: ctx}
	for _, span := range []struct {
		domain ir.DomainMask
		items  []*ir.Node
	}{
		{ir.DomainTransferQueue, p.Transfer},
		{ir.DomainComputeQueue, p.Compute},
		{ir.DomainGraphicsQueue, p.Graphics},
	} {
		if len(span.items) == 0 {
			continue
		}
		plan.Spans = append(plan.Spans, QueueSpan{Domain: span.domain, Items: span.items})
	}
	return plan
}

// SpanFor returns the queue span holding domain, and whether one exists.
func (p *ExecutablePlan) SpanFor(domain ir.DomainMask) (QueueSpan, bool) {
	for _, s := range p.Spans {
		if s.Domain == domain {
			return s, true
		}
	}
	return QueueSpan{}, false
}
