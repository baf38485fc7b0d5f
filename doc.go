// Package rendergraph compiles a render graph's intermediate
// representation into an executable, queue-partitioned submission plan.
//
// # Overview
//
// A caller builds an ir.Module of CONSTRUCT/CALL/SPLICE/SLICE/CONVERGE
// nodes describing what resources exist and what operations touch them,
// then hands a set of output ir.Ref roots to a compiler.Compiler. The
// compiler links those nodes into per-resource use chains, rewrites away
// synchronization seams that never bridge a queue or signal boundary,
// reifies any still-unknown resource dimensions it can infer from
// context, schedules and partitions the graph across the transfer/
// compute/graphics queue families, and derives the barrier-level
// synchronization each queue-family boundary needs.
//
// # Scope
//
// This module is the IR and its compiler only: it has no GPU API
// wrapper, no shader compiler, and no pass-builder façade for
// constructing the IR by hand — callers build ir.Module nodes directly.
// What it produces, plan.ExecutablePlan, is consumed by an out-of-scope
// runtime that actually submits command buffers.
//
// # Packages
//
//   - ir: node/type/access/chain-link types and reachability analysis.
//   - link: implicit linking, per-kind link population, URDEF propagation.
//   - rewrite: the generic node-rewrite engine, splice elimination, and
//     slice bridging.
//   - reify: field reification and framebuffer inference.
//   - schedule: chain collection, intra-queue scheduling, queue
//     inference, and three-way partitioning.
//   - sync: per-link synchronization requirement derivation.
//   - validate: read-before-write and duplicate-resource-reference checks.
//   - compiler: orchestrates the above into Compile and Link.
//   - plan: the ExecutablePlan type the compiler produces.
//   - dot: a Graphviz dot dumper for diagnosing a compiled graph.
package rendergraph
