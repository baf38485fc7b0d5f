// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dot renders a compiled render graph to Graphviz dot text for
// diagnostics (spec §6).
package dot

import (
	"sync"

	"github.com/gogpu/rendergraph/ir"
)

// Format renders order to a diagnostic dump in some textual format.
type Format func(order []*ir.Node, opts Options) string

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Format)
)

// Register registers a diagnostic dump format under name. Called from
// init() in files that implement a Format; a later Register call with
// the same name replaces the earlier one.
func Register(name string, f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()
	formats[name] = f
}

// Get returns the format registered under name, or nil if none is.
func Get(name string) Format {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return formats[name]
}

// Available returns the names of every registered format.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	return names
}

func init() {
	Register("dot", Dump)
}
