// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ir defines the intermediate representation consumed by the
// render-graph compiler: nodes, interned types, access annotations,
// references, chain links, and the module arena that owns them.
//
// Nodes are created by user-facing pass builders (outside this package)
// into a Module arena. The compiler snapshots the reachable subgraph,
// builds def/use chains over it, and rewrites it in place; none of that
// happens here. This package only owns storage and the handful of
// traversals (reachability, type interning) that don't depend on chain
// state.
package ir
