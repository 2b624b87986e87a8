// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline describes the GPU side of a clui draw list: the WGSL
// shader that consumes drawlist vertices, its SPIR-V compilation, and the
// render pipeline state a host needs to submit a DrawSet.
//
// The package creates no GPU objects. A host that owns a device (through
// gpucontext.DeviceProvider) builds a Descriptor with NewDescriptor, creates
// the shader module, bind group layout and render pipeline from it, then per
// DrawSet:
//
//	queue.WriteBuffer(uniformBuf, 0, pipeline.Uniforms(set.Viewport))
//	queue.WriteBuffer(vertexBuf, 0, set.VertexBytes())
//	queue.WriteBuffer(indexBuf, 0, set.IndexBytes())
//
//	pass.SetPipeline(p)
//	pass.SetBindGroup(0, uniforms, nil)
//	pass.SetVertexBuffer(0, vertexBuf, 0)
//	pass.SetIndexBuffer(indexBuf, desc.IndexFormat, 0)
//	sc := pipeline.ScissorRect(&set)
//	pass.SetScissorRect(sc.X, sc.Y, sc.Width, sc.Height)
//	for _, d := range set.Draws {
//	    pass.DrawIndexed(d.IndexCount, 1, d.IndexOffset, int32(d.VertexOffset), 0)
//	}
package pipeline
