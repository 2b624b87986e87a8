// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package drawlist defines the flattened, GPU-facing output of the toolkit.
//
// A DrawList holds one DrawSet per viewport. Each DrawSet carries a shared
// vertex buffer and index buffer plus one DrawInstruction per painted
// surface. Indices are relative to the instruction's VertexOffset, so a
// renderer issues
//
//	DrawIndexed(IndexCount, firstIndex=IndexOffset, baseVertex=VertexOffset)
//
// for each instruction, in order. Instructions are already sorted back to
// front.
//
// Vertices are laid out as position (vec2<f32>) followed by color
// (vec4<f32>); see VertexLayout for the matching GPU description.
package drawlist

import "github.com/gogpu/clui/geom"

// Vertex is a single colored corner of a quad.
type Vertex struct {
	Position [2]float32
	Color    [4]float32
}

// DrawInstruction selects the index range of one surface.
type DrawInstruction struct {
	IndexOffset  uint32
	IndexCount   uint32
	VertexOffset uint32
}

// DrawSet is the geometry of one viewport.
type DrawSet struct {
	// Viewport is the render-target size.
	Viewport geom.Size

	// Scissor is the clip rect shared by all draws. It covers the whole
	// viewport unless narrowed by the producer.
	Scissor geom.Rect

	Draws    []DrawInstruction
	Vertices []Vertex
	Indices  []uint32
}

// IsEmpty reports whether the set contains no draws.
func (s *DrawSet) IsEmpty() bool {
	return len(s.Draws) == 0
}

// Triangles returns the number of triangles referenced by all draws.
func (s *DrawSet) Triangles() int {
	n := 0
	for _, d := range s.Draws {
		n += int(d.IndexCount) / 3
	}
	return n
}

// DrawList is the complete render data of one frame.
type DrawList struct {
	Sets []DrawSet
}

// VertexCount returns the total number of vertices across all sets.
func (l *DrawList) VertexCount() int {
	n := 0
	for i := range l.Sets {
		n += len(l.Sets[i].Vertices)
	}
	return n
}

// IndexCount returns the total number of indices across all sets.
func (l *DrawList) IndexCount() int {
	n := 0
	for i := range l.Sets {
		n += len(l.Sets[i].Indices)
	}
	return n
}
