// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dot

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// escapeLabel normalizes a user-supplied debug name to NFC (the same
// defensive text handling the teacher's text/ package applies to glyph
// runs before shaping — a dump built from debug names assembled through
// several editors and locales should not silently carry an
// un-normalized form into the rendered graph) and HTML-escapes it so it
// is safe to embed inside a dot HTML-like <TD> label cell.
func escapeLabel(name string) string {
	if name == "" {
		return ""
	}
	return html.EscapeString(norm.NFC.String(name))
}

// truncateLabel bounds a label to n runes, appending an ellipsis marker
// when truncated, so a pathological debug name cannot blow up the dump.
func truncateLabel(s string, n int) string {
	if n <= 0 || len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}

func quoteAttr(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}
