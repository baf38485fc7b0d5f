// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compiler orchestrates the full pass pipeline — link building,
// splice/slice rewriting, validation, chain collection, reification,
// scheduling, queue inference, partitioning, and sync derivation — over
// one ir.Module, following spec §4's fixed pass order (spec §5, §7).
package compiler

import (
	"fmt"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/ir"
	"github.com/gogpu/rendergraph/link"
	"github.com/gogpu/rendergraph/plan"
	"github.com/gogpu/rendergraph/reify"
	"github.com/gogpu/rendergraph/rewrite"
	"github.com/gogpu/rendergraph/schedule"
	rgsync "github.com/gogpu/rendergraph/sync"
	"github.com/gogpu/rendergraph/validate"
)

// Compiler runs the pass pipeline over one ir.Module, keeping the most
// recent compile's chains so the inspection accessors (GetUseChains,
// GetValue, ComputeUsage) have something to read between calls —
// mirroring vuk::Compiler's impl-holding design (original_source,
// IRPasses.cpp) and the staged-orchestrator-struct convention the
// teacher module's pipeline code demonstrated (see DESIGN.md).
type Compiler struct {
	module *ir.Module

	chains []*ir.ChainLink
}

// NewCompiler creates a Compiler over m. m may be reused and mutated
// (reification adds fresh CONSTANT nodes to it) across repeated
// Compile/Link calls on the same Compiler.
func NewCompiler(m *ir.Module) *Compiler {
	return &Compiler{module: m}
}

// Compile runs every pass in spec §4's order over the subgraph reachable
// from refs, short-circuiting at the first failing pass with a *GraphError.
// It opens with a garbage-collection sweep of c.module (spec §2) so a
// Compiler reused across repeated Compile calls against shifting root
// sets doesn't accumulate nodes from earlier compiles that nothing
// reaches anymore. On success it stashes the discovered chains on c for
// GetUseChains/ComputeUsage and also returns them via CompileResult.
func (c *Compiler) Compile(refs []ir.Ref, opts CompileOptions) (*CompileResult, error) {
	log := rendergraph.Logger()
	log.Info("rendergraph: compile started", "roots", len(refs))

	c.module.Sweep(refs)

	preOrder := ir.Reachable(refs)
	for _, conflict := range link.ImplicitLink(preOrder) {
		opts.emit(Diagnostic{
			Level: DiagnosticInfo, Pass: "implicit-link", Node: conflict.Node,
			Text: "written more than once; resolved by SSA rewrite during link build",
		})
	}

	order, err := c.buildLinks(refs)
	if err != nil {
		return nil, wrapGraphError("link", nil, err)
	}
	log.Debug("rendergraph: link build done", "nodes", len(order))

	substitutions := c.rewrite(order, opts)
	log.Debug("rendergraph: rewrite done", "substitutions", substitutions)

	order, err = c.buildLinks(refs)
	if err != nil {
		return nil, wrapGraphError("relink", nil, err)
	}

	if err := validate.ReadOfUndef(order); err != nil {
		return nil, wrapGraphError("validate-read-undef", nil, err)
	}
	if err := validate.DuplicateResourceReference(order); err != nil {
		return nil, wrapGraphError("validate-dup-ref", nil, err)
	}

	chains, err := schedule.Chains(order)
	if err != nil {
		return nil, wrapGraphError("chains", nil, err)
	}
	c.chains = chains

	resolved := reify.Run(c.module, order)
	log.Debug("rendergraph: reify done", "resolved", resolved)
	if resolved > 0 {
		// Reification replaced PLACEHOLDER args with fresh CONSTANT nodes
		// the first link pass never saw: re-derive links and chains once
		// more so scheduling and sync see the final graph.
		order, err = c.buildLinks(refs)
		if err != nil {
			return nil, wrapGraphError("relink-after-reify", nil, err)
		}
		chains, err = schedule.Chains(order)
		if err != nil {
			return nil, wrapGraphError("chains-after-reify", nil, err)
		}
		c.chains = chains
	}

	scheduled, err := schedule.Schedule(order)
	if err != nil {
		return nil, wrapGraphError("schedule", nil, err)
	}

	schedule.InferQueues(scheduled)
	for _, n := range scheduled {
		if n.ScheduledItem == nil {
			continue
		}
		opts.emit(Diagnostic{
			Level: DiagnosticInfo, Pass: "queue-inference", Node: n,
			Text: fmt.Sprintf("assigned %v", n.ScheduledItem.Domain),
		})
	}

	partitioned := schedule.Partition(scheduled)

	if err := rgsync.Derive(order); err != nil {
		return nil, wrapGraphError("sync", nil, err)
	}

	log.Info("rendergraph: compile finished", "scheduled", len(scheduled))
	return &CompileResult{
		Order:       order,
		Chains:      c.chains,
		Scheduled:   scheduled,
		Partitioned: partitioned,
	}, nil
}

// Link runs Compile and wraps its partitioning into an ExecutablePlan
// against ctx, matching the original implementation's link(), which runs
// compile() then returns itself as an ExecutableRenderGraph — this
// compiler returns a fresh plan.ExecutablePlan value instead of mutating
// the Compiler further.
func (c *Compiler) Link(refs []ir.Ref, opts CompileOptions, ctx plan.DeviceContext) (*plan.ExecutablePlan, error) {
	result, err := c.Compile(refs, opts)
	if err != nil {
		return nil, err
	}
	return plan.Build(result.Partitioned, ctx), nil
}

// GetUseChains returns every chain head discovered by the most recent
// successful Compile/Link call on c, or nil if none has run yet.
func (c *Compiler) GetUseChains() []*ir.ChainLink {
	return c.chains
}

// GetValue returns the value a CONSTANT ref carries, or nil if r does not
// name a constant — the render-graph analogue of vuk::Compiler::get_value,
// which resolves a parameter ref back to its bound literal.
func (c *Compiler) GetValue(r ir.Ref) any {
	if !r.IsValid() || r.Node.Kind != ir.Constant {
		return nil
	}
	return ir.AsConstant(r.Node).Value
}

// ComputeUsage returns the QueueResourceUse sync.Derive installed on
// chain during the most recent Compile, preferring the writer's
// requirement over the merged reader requirement when both are present.
// It returns the zero value if chain carries no sync info yet.
func (c *Compiler) ComputeUsage(chain *ir.ChainLink) ir.QueueResourceUse {
	if chain == nil {
		return ir.QueueResourceUse{}
	}
	if chain.UndefSync != nil {
		return *chain.UndefSync
	}
	if chain.ReadSync != nil {
		return *chain.ReadSync
	}
	return ir.QueueResourceUse{}
}

// buildLinks resets every currently-reachable node's Links — so a second
// call after rewrite doesn't see the previous pass's stale Undef/Reads,
// since link.Builder.Build only populates a nil Links array — then runs
// a fresh link.Builder pass and propagates URDEF over its result.
func (c *Compiler) buildLinks(refs []ir.Ref) ([]*ir.Node, error) {
	for _, n := range ir.Reachable(refs) {
		n.Links = nil
	}

	b := link.NewBuilder(c.module, refs)
	if err := b.Build(); err != nil {
		return nil, err
	}
	link.PropagateURDef(b.Order())
	return b.Order(), nil
}

// rewrite runs splice elimination and slice bridging over order in one
// engine pass, matching Compiler::compile's single rewrite() call that
// combines both predicates (original_source, IRPasses.cpp), and returns
// the number of argument substitutions the engine made. Deferred splices
// (those that carry a live signal and survive elimination) are reported
// through opts rather than returned, since nothing downstream of rewrite
// needs to see them again until executor-level signal scheduling, which
// is out of this compiler's scope.
func (c *Compiler) rewrite(order []*ir.Node, opts CompileOptions) int {
	var deferred []rewrite.DeferredSplice
	engine := rewrite.NewEngine(order)
	engine.Use(rewrite.EliminateSplices(&deferred))
	if bridgeSlices, err := rewrite.New("bridge-slices"); err == nil {
		engine.Use(bridgeSlices)
	}

	n := engine.Apply()

	for _, d := range deferred {
		opts.emit(Diagnostic{
			Level: DiagnosticWarn, Pass: "rewrite", Node: d.Splice,
			Text: "splice carries a live signal and was not eliminated",
		})
	}
	return n
}
