// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package validate

import (
	"fmt"

	"github.com/gogpu/rendergraph/ir"
)

// DuplicateResourceReference collects every concrete image handle,
// buffer handle, and swapchain handle named by a CONSTRUCT's prototype
// or by an armed SPLICE's value, and reports an error if any handle is
// seen more than once — two nodes cannot legally both claim to own the
// same underlying resource.
func DuplicateResourceReference(order []*ir.Node) error {
	seen := make(map[any]int)

	check := func(key any, nodeIndex int) error {
		if key == nil {
			return nil
		}
		if prior, ok := seen[key]; ok {
			return fmt.Errorf("validate: resource %v referenced by both node %d and node %d", key, prior, nodeIndex)
		}
		seen[key] = nodeIndex
		return nil
	}

	for _, n := range order {
		switch n.Kind {
		case ir.Construct:
			handle := constructHandle(n)
			if err := check(handle, n.Index); err != nil {
				return err
			}
		case ir.Splice:
			payload := ir.AsSplice(n)
			if payload.Release.IsArmed() || payload.Acquire.IsArmed() {
				handle := spliceHandle(n)
				if err := check(handle, n.Index); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func constructHandle(n *ir.Node) any {
	payload := ir.AsConstruct(n)
	if !payload.Prototype.IsValid() || payload.Prototype.Node.Kind != ir.Constant {
		return nil
	}
	switch v := ir.AsConstant(payload.Prototype.Node).Value.(type) {
	case ir.ImageAttachment:
		if v.Image.IsValid() {
			return v.Image
		}
	case ir.BufferDescriptor:
		if v.Buffer.IsValid() {
			return v.Buffer
		}
	case ir.Swapchain:
		if v.Handle.IsValid() {
			return v.Handle
		}
	}
	return nil
}

func spliceHandle(n *ir.Node) any {
	if len(n.Args) == 0 || !n.Args[0].IsValid() || n.Args[0].Node.Kind != ir.Constant {
		return nil
	}
	switch v := ir.AsConstant(n.Args[0].Node).Value.(type) {
	case ir.ImageAttachment:
		if v.Image.IsValid() {
			return v.Image
		}
	case ir.BufferDescriptor:
		if v.Buffer.IsValid() {
			return v.Buffer
		}
	case ir.Swapchain:
		if v.Handle.IsValid() {
			return v.Handle
		}
	}
	return nil
}
