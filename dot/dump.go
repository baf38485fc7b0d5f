// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dot

import (
	"fmt"
	"strings"

	"github.com/gogpu/rendergraph/ir"
)

// Options configures a dump. Dump applies the flags exactly as given;
// the zero Options leaves both bridging flags off.
type Options struct {
	// BridgeSplices skips over SPLICE nodes without an armed release:
	// such a splice is not drawn, and its consumer's edge runs from the
	// splice's true source straight to the consumer in blue. A consumer
	// of a splice with an armed release gets its edge from a synthetic
	// "EXT" node instead, in red.
	BridgeSplices bool
	// BridgeSlices skips over SLICE nodes, drawing the edge from the
	// sliced image's true source to the consumer in green, labeled with
	// the requested mip/layer subrange.
	BridgeSlices bool
	// MaxLabelRunes truncates debug names longer than this; 0 means no
	// limit.
	MaxLabelRunes int
}

// Dump renders order to Graphviz dot text: one table-shaped node per
// row, HTML-like label cells for results/kind/arguments, and
// color-coded edges for bridged splices and slices (spec §6,
// supplemented from original_source's `_dump_graph`).
func Dump(order []*ir.Node, opts Options) string {
	var b strings.Builder
	b.WriteString("digraph rendergraph {\n")
	b.WriteString("rankdir=\"TB\"\nnewrank = true\nnode[shape = rectangle width = 0 height = 0 margin = 0]\n")

	wroteExt := false
	for _, n := range order {
		if skipNode(n) {
			continue
		}
		if opts.BridgeSplices && n.Kind == ir.Splice && !ir.AsSplice(n).Release.IsArmed() {
			continue
		}
		writeNodeLabel(&b, n, opts)
		for i, arg := range n.Args {
			if skipArgEdge(arg) {
				continue
			}
			if opts.BridgeSplices && arg.IsValid() && arg.Node.Kind == ir.Splice {
				if writeSpliceEdge(&b, n, i, arg, &wroteExt) {
					continue
				}
			}
			if opts.BridgeSlices && arg.IsValid() && arg.Node.Kind == ir.Slice {
				writeSliceEdge(&b, n, i, arg)
				continue
			}
			fmt.Fprintf(&b, "%s:r%d -> %s:a%d:n\n", nodeID(arg.Node), arg.Result, nodeID(n), i)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func nodeID(n *ir.Node) string {
	return fmt.Sprintf("n%p", n)
}

func skipNode(n *ir.Node) bool {
	switch n.Kind {
	case ir.Garbage, ir.Placeholder:
		return true
	case ir.Constant:
		return len(n.Types) > 0 && (n.Types[0].Kind == ir.IntegerTy || n.Types[0].Kind == ir.MemoryTy)
	}
	return false
}

func skipArgEdge(arg ir.Ref) bool {
	if !arg.IsValid() {
		return true
	}
	switch arg.Node.Kind {
	case ir.Placeholder:
		return true
	case ir.Constant:
		return len(arg.Node.Types) > 0 && (arg.Node.Types[0].Kind == ir.IntegerTy || arg.Node.Types[0].Kind == ir.MemoryTy)
	}
	return false
}

func writeNodeLabel(b *strings.Builder, n *ir.Node, opts Options) {
	fmt.Fprintf(b, "%s [label=<\n<TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\"><TR>\n", nodeID(n))

	if n.DebugInfo != nil {
		for _, name := range n.DebugInfo.ResultNames {
			fmt.Fprintf(b, "<TD>%%%s</TD>", escapeLabel(truncateLabel(name, opts.MaxLabelRunes)))
		}
	}
	for i, t := range n.Types {
		fmt.Fprintf(b, "<TD PORT=\"r%d\"><FONT FACE=\"Courier New\">%s</FONT></TD>", i, escapeLabel(typeString(t)))
	}

	b.WriteString("<TD>")
	b.WriteString(n.Kind.String())
	if n.Kind == ir.Call {
		fmt.Fprintf(b, " <B>%s</B>", escapeLabel(ir.AsCall(n).FnName))
	}
	b.WriteString("</TD>\n")

	for i, arg := range n.Args {
		b.WriteString("<TD>")
		switch {
		case arg.IsValid() && arg.Node.Kind == ir.Constant:
			b.WriteString(escapeLabel(constantString(arg.Node)))
		case arg.IsValid() && arg.Node.Kind == ir.Placeholder:
			b.WriteString("?")
		case n.Kind == ir.Call:
			if payload := ir.AsCall(n); i < len(payload.ArgAccesses) && payload.ArgAccesses[i] != ir.AccessNone {
				fmt.Fprintf(b, "<FONT FACE=\"Courier New\">:%s</FONT>", payload.ArgAccesses[i])
			}
		default:
			b.WriteString("&bull;")
		}
		b.WriteString("</TD>")
	}

	b.WriteString("\n</TR></TABLE>>];\n")
}

func typeString(t *ir.Type) string {
	if t == nil {
		return "?"
	}
	switch t.Kind {
	case ir.IntegerTy:
		return fmt.Sprintf("i%d", t.IntegerWidth)
	case ir.MemoryTy:
		return "mem"
	case ir.ImageTy:
		return "image"
	case ir.BufferTy:
		return "buffer"
	case ir.SwapchainTy:
		return "swapchain"
	case ir.ArrayTy:
		return typeString(t.ElementType) + "[]"
	case ir.ImbuedTy:
		return typeString(t.Underlying)
	case ir.AliasedTy:
		return "alias"
	case ir.OpaqueFnTy:
		return "fn(" + t.FnName + ")"
	case ir.ShaderFnTy:
		return "shader(" + t.FnName + ")"
	default:
		return "?"
	}
}

func constantString(n *ir.Node) string {
	payload := ir.AsConstant(n)
	if len(n.Types) > 0 && n.Types[0].Kind == ir.MemoryTy {
		return "<mem>"
	}
	return fmt.Sprintf("%v", payload.Value)
}

// writeSpliceEdge draws the bridged edge for a SPLICE argument, returning
// false when the splice has no valid source for the result the consumer
// reads, so the caller falls through to a plain edge.
func writeSpliceEdge(b *strings.Builder, consumer *ir.Node, argIndex int, arg ir.Ref, wroteExt *bool) bool {
	splice := arg.Node
	payload := ir.AsSplice(splice)
	switch {
	case payload.Release.IsArmed():
		if !*wroteExt {
			b.WriteString("EXT\n")
			*wroteExt = true
		}
		fmt.Fprintf(b, "EXT -> %s:a%d:n [color=red]\n", nodeID(consumer), argIndex)
		return true
	case int(arg.Result) < len(splice.Args):
		bridged := splice.Args[arg.Result]
		if !bridged.IsValid() {
			return false
		}
		fmt.Fprintf(b, "%s:r%d -> %s:a%d:n [color=blue]\n", nodeID(bridged.Node), bridged.Result, nodeID(consumer), argIndex)
		return true
	default:
		return false
	}
}

// writeSliceEdge draws the bridged edge for a SLICE argument, following
// through a SPLICE source one more hop (the original implementation's
// "if bridged_arg.node->kind == SPLICE" step) and labeling the edge with
// the requested mip/layer subrange when it narrows the default.
func writeSliceEdge(b *strings.Builder, consumer *ir.Node, argIndex int, arg ir.Ref) {
	slice := arg.Node
	bridged := ir.Ref{}
	if len(slice.Args) > 0 {
		bridged = slice.Args[0]
	}
	if bridged.IsValid() && bridged.Node.Kind == ir.Splice && int(bridged.Result) < len(bridged.Node.Args) {
		bridged = bridged.Node.Args[bridged.Result]
	}
	if !bridged.IsValid() {
		return
	}

	label := sliceRangeLabel(ir.AsSlice(slice))
	fmt.Fprintf(b, "%s:r%d -> %s:a%d:n [color=green, label=%s]\n",
		nodeID(bridged.Node), bridged.Result, nodeID(consumer), argIndex, quoteAttr(label))
}

// sliceRangeLabel labels a SLICE edge with its requested mip/layer
// subrange when that range narrows the default "whole remainder" — a
// base of 0 and an unbounded count is left unlabeled, matching the
// original implementation's "only annotate when it deviates" rule.
func sliceRangeLabel(p *ir.SlicePayload) string {
	var s string
	if base, count := constFoldInt(p.BaseLevel), constFoldInt(p.LevelCount); base > 0 || count >= 0 {
		s += fmt.Sprintf("[m%d:%d]", base, base+maxInt(count, 0)-1)
	}
	if base, count := constFoldInt(p.BaseLayer), constFoldInt(p.LayerCount); base > 0 || count >= 0 {
		s += fmt.Sprintf("[l%d:%d]", base, base+maxInt(count, 0)-1)
	}
	return s
}

// constFoldInt reads a constant-folded integer Ref, or -1 if ref is not
// a constant of integer type or holds ir.RemainingMipLevels/
// ir.RemainingArrayLayers — the "unbounded, use the whole remainder"
// sentinel, matching VK_REMAINING_MIP_LEVELS/VK_REMAINING_ARRAY_LAYERS.
func constFoldInt(ref ir.Ref) int {
	if !ref.IsValid() || ref.Node.Kind != ir.Constant {
		return -1
	}
	payload := ir.AsConstant(ref.Node)
	switch v := payload.Value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint32:
		if v == ir.RemainingMipLevels || v == ir.RemainingArrayLayers {
			return -1
		}
		return int(v)
	case uint64:
		return int(v)
	default:
		return -1
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
