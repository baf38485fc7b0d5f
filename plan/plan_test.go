// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plan

import (
	"testing"

	"github.com/gogpu/rendergraph/ir"
	"github.com/gogpu/rendergraph/schedule"
)

func TestBuildOmitsEmptySpans(t *testing.T) {
	m := ir.NewModule()
	img := m.InternType(ir.Type{Kind: ir.ImageTy})
	n := m.NewNode(ir.Call, img)

	p := schedule.Partitioned{All: []*ir.Node{n}, Graphics: []*ir.Node{n}}
	ep := Build(p, NullDeviceContext{})

	if len(ep.Spans) != 1 {
		t.Fatalf("len(Spans) = %d, want 1", len(ep.Spans))
	}
	if ep.Spans[0].Domain != ir.DomainGraphicsQueue {
		t.Errorf("Spans[0].Domain = %v, want Graphics", ep.Spans[0].Domain)
	}

	if _, ok := ep.SpanFor(ir.DomainTransferQueue); ok {
		t.Error("SpanFor(Transfer) found a span that should not exist")
	}
	if got, ok := ep.SpanFor(ir.DomainGraphicsQueue); !ok || len(got.Items) != 1 {
		t.Errorf("SpanFor(Graphics) = (%v, %v), want the single-item graphics span", got, ok)
	}
}
