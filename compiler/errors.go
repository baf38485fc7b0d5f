// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compiler

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// GraphError reports a compile failure pinned to a specific pass and, when
// one is known, a specific node — letting callers recover the offending
// node with errors.As instead of parsing a message string.
type GraphError struct {
	Pass string
	Node *ir.Node
	Err  error
}

func (e *GraphError) Error() string {
	return formatGraphMessage(e.Pass, e.Node, e.Err.Error())
}

func (e *GraphError) Unwrap() error { return e.Err }

// formatGraphMessage renders a pass/node/text triple into one line,
// matching the original implementation's format_graph_message: the
// node's kind and source index when a node is present, the bare pass
// name and text otherwise.
func formatGraphMessage(pass string, n *ir.Node, text string) string {
	if n == nil {
		return fmt.Sprintf("%s: %s", pass, text)
	}
	return fmt.Sprintf("%s: %s(%d): %s", pass, n.Kind, n.Index, text)
}

// wrapGraphError wraps err (if non-nil) as a *GraphError tagged with
// pass and n, so every pass boundary in Compiler.Compile returns the
// same recoverable error shape regardless of which sub-package raised it.
func wrapGraphError(pass string, n *ir.Node, err error) error {
	if err == nil {
		return nil
	}
	return &GraphError{Pass: pass, Node: n, Err: err}
}
