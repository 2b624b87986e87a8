// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import "github.com/gogpu/clui/geom"

// Quad geometry: four corners, two triangles.
const (
	QuadVertices = 4
	QuadIndices  = 6
)

// quadIndices are the two triangles TL,TR,BL and TR,BR,BL, relative to the
// quad's first vertex (TL=0, TR=1, BL=2, BR=3). Both wind the same way.
var quadIndices = [QuadIndices]uint32{0, 1, 2, 1, 3, 2}

// Builder accumulates quads into the buffers of a DrawSet.
// The buffers are reused across Reset calls, so a long-lived Builder stops
// allocating once it has seen its largest frame.
//
// Usage:
//
//	var b drawlist.Builder
//	b.Reset()
//	b.AddQuad(rect, color)
//	set := b.Build(viewport)
type Builder struct {
	draws    []DrawInstruction
	vertices []Vertex
	indices  []uint32
}

// Reset clears the builder for reuse, keeping allocated capacity.
func (b *Builder) Reset() {
	b.draws = b.draws[:0]
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Reserve grows the buffers to hold at least quads quads without
// reallocating.
func (b *Builder) Reserve(quads int) {
	if quads <= 0 {
		return
	}
	if cap(b.draws)-len(b.draws) < quads {
		b.draws = append(make([]DrawInstruction, 0, len(b.draws)+quads), b.draws...)
	}
	if v := quads * QuadVertices; cap(b.vertices)-len(b.vertices) < v {
		b.vertices = append(make([]Vertex, 0, len(b.vertices)+v), b.vertices...)
	}
	if n := quads * QuadIndices; cap(b.indices)-len(b.indices) < n {
		b.indices = append(make([]uint32, 0, len(b.indices)+n), b.indices...)
	}
}

// AddQuad appends the four corners of r in the given color and records one
// draw instruction for them.
func (b *Builder) AddQuad(r geom.Rect, color [4]float32) DrawInstruction {
	d := DrawInstruction{
		IndexOffset:  uint32(len(b.indices)),  //nolint:gosec // buffer sizes fit in uint32
		IndexCount:   QuadIndices,
		VertexOffset: uint32(len(b.vertices)), //nolint:gosec // buffer sizes fit in uint32
	}

	b.vertices = append(b.vertices,
		Vertex{Position: point(r.Corner(geom.TopLeft)), Color: color},
		Vertex{Position: point(r.Corner(geom.TopRight)), Color: color},
		Vertex{Position: point(r.Corner(geom.BottomLeft)), Color: color},
		Vertex{Position: point(r.Corner(geom.BottomRight)), Color: color},
	)
	b.indices = append(b.indices, quadIndices[:]...)
	b.draws = append(b.draws, d)
	return d
}

// Len returns the number of draws recorded since the last Reset.
func (b *Builder) Len() int {
	return len(b.draws)
}

// Build returns a DrawSet for the given viewport. The scissor covers the
// whole viewport. The returned set owns copies of the buffers, so the
// builder may be reset and reused immediately.
func (b *Builder) Build(viewport geom.Size) DrawSet {
	return DrawSet{
		Viewport: viewport,
		Scissor:  geom.FromPosAndSize(geom.Point{}, viewport),
		Draws:    clone(b.draws),
		Vertices: clone(b.vertices),
		Indices:  clone(b.indices),
	}
}

func point(p geom.Point) [2]float32 {
	return [2]float32{p.X, p.Y}
}

// clone copies s into a slice of exactly its length. Empty input yields an
// empty, non-nil slice so output for identical input compares equal.
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
