// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plan holds the ExecutablePlan type the compiler produces and
// the (out-of-scope) runtime consumes: partitioned per-queue spans, sync
// annotations, and the device/queue context the runtime will submit
// against.
package plan

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceContext is the device/queue handle an ExecutablePlan carries for
// the runtime to submit against. It is an alias for
// gpucontext.DeviceProvider — the compiler never creates a device, it
// only forwards whatever the caller passed to compiler.Compiler.Link,
// mirroring render.DeviceHandle's "receive, don't create" principle.
type DeviceContext = gpucontext.DeviceProvider

// NullDeviceContext is a DeviceContext with nil implementations, used
// when a plan is built for inspection or testing without a real device.
type NullDeviceContext struct{}

func (NullDeviceContext) Device() gpucontext.Device   { return nil }
func (NullDeviceContext) Queue() gpucontext.Queue     { return nil }
func (NullDeviceContext) Adapter() gpucontext.Adapter { return nil }
func (NullDeviceContext) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}
func (NullDeviceContext) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

var _ DeviceContext = NullDeviceContext{}
