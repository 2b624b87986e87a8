// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/clui"
	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DefaultFormat is the color target format used when the provider does not
// report a surface format.
var DefaultFormat = gputypes.TextureFormatRGBA8Unorm

// Descriptor is the render pipeline state for drawing a DrawSet.
// Field values map one to one onto a WebGPU render pipeline descriptor.
type Descriptor struct {
	Label string

	VertexEntryPoint   string
	FragmentEntryPoint string

	// Buffers is the vertex buffer layout of drawlist.Vertex.
	Buffers []gputypes.VertexBufferLayout

	// Targets holds one color target with premultiplied alpha blending.
	Targets []gputypes.ColorTargetState

	Primitive   gputypes.PrimitiveState
	Multisample gputypes.MultisampleState

	// IndexFormat is the format passed to SetIndexBuffer.
	IndexFormat gputypes.IndexFormat

	// UniformLayout describes bind group 0: the viewport uniform.
	UniformLayout []gputypes.BindGroupLayoutEntry
}

// NewDescriptor returns the pipeline state for rendering into the surface of
// provider. A nil provider, or one without a surface format, selects
// DefaultFormat.
func NewDescriptor(provider gpucontext.DeviceProvider) Descriptor {
	format := DefaultFormat
	if provider != nil {
		if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			format = f
		}
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	d := Descriptor{
		Label:              "clui_window_pipeline",
		VertexEntryPoint:   VertexEntryPoint,
		FragmentEntryPoint: FragmentEntryPoint,
		Buffers:            drawlist.VertexLayout(),
		Targets: []gputypes.ColorTargetState{
			{
				Format:    format,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		IndexFormat: drawlist.IndexFormat,
		UniformLayout: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	}

	clui.Logger().Debug("pipeline: descriptor built", "format", format)
	return d
}
