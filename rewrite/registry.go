// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rewrite

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh Predicate instance for one Engine run.
// Predicates close over per-run state (e.g. EliminateSplices's deferred
// slice), so the registry stores factories, not predicates themselves.
type Factory func() Predicate

var (
	registryMu sync.RWMutex
	predicates = make(map[string]Factory)
)

// Register adds a named predicate factory to the registry, following
// the database/sql-style driver registration the teacher module uses
// for its backends: call it from an init() once per predicate.
//
// Register panics if factory is nil or name is already registered,
// catching duplicate registration at program startup instead of
// silently overwriting a predicate.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("rewrite: Register factory is nil")
	}
	if _, dup := predicates[name]; dup {
		panic("rewrite: Register called twice for " + name)
	}
	predicates[name] = factory
}

// New looks up a registered predicate factory by name and invokes it.
func New(name string) (Predicate, error) {
	registryMu.RLock()
	factory, ok := predicates[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("rewrite: unknown predicate %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Names returns every registered predicate name, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(predicates))
	for name := range predicates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register("bridge-slices", func() Predicate {
		return BridgeSlices()
	})
}
