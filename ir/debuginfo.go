// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ir

// DebugInfo carries optional, purely diagnostic metadata for a node: the
// names its results were bound to in user code, and a source location
// string. None of it affects compilation; it exists for error messages
// and the dot dumper.
type DebugInfo struct {
	ResultNames []string
	Location    string
}
