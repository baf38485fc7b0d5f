// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import "github.com/gogpu/rendergraph/ir"

// DiagnosticLevel classifies a Diagnostic's severity.
type DiagnosticLevel int

const (
	DiagnosticInfo DiagnosticLevel = iota
	DiagnosticWarn
	DiagnosticError
)

func (l DiagnosticLevel) String() string {
	switch l {
	case DiagnosticWarn:
		return "warn"
	case DiagnosticError:
		return "error"
	default:
		return "info"
	}
}

// Diagnostic is one message CompileOptions.OnDiagnostic receives during a
// compile: the pass that raised it, the node it concerns (nil for
// graph-wide messages), and a human-readable description.
type Diagnostic struct {
	Level DiagnosticLevel
	Pass  string
	Node  *ir.Node
	Text  string
}

// CompileOptions configures a single Compile or Link call. Per spec §6,
// the compiler has no tunable policy knobs — every pass runs exactly the
// fixed algorithm spec §4 describes — so the only field is a diagnostic
// sink, following the teacher's defaulted-field config-struct convention
// with every default being "do nothing" instead of a numeric fallback.
type CompileOptions struct {
	// OnDiagnostic, if non-nil, receives every Diagnostic a pass emits:
	// implicit-link conflicts, deferred splices, queue assignments. A
	// failing pass still returns its error regardless of what, if
	// anything, OnDiagnostic does with the diagnostics leading up to it.
	OnDiagnostic func(Diagnostic)
}

func (o CompileOptions) emit(d Diagnostic) {
	if o.OnDiagnostic != nil {
		o.OnDiagnostic(d)
	}
}
