// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/clui"
	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/clui/pipeline"
	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU reference implementation of the GPU pipeline.
//
// It walks each DrawSet the way an indexed draw call would: for every
// DrawInstruction it reads IndexCount indices starting at IndexOffset, adds
// VertexOffset to each, and fills the resulting triangles with source-over
// blending. Pixels outside the set's scissor are left untouched.
//
// Each draw is filled with the color of its first vertex. Window quads are
// flat colored, so this matches the GPU output for them.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	renderer.Render(dst, &list)
type SoftwareRenderer struct {
	// rasterizer is reused between draws.
	rasterizer *vector.Rasterizer

	// lastWidth and lastHeight track the rasterizer dimensions.
	lastWidth, lastHeight int
}

var _ CapableRenderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render draws list onto dst.
//
// Draw list coordinates are relative to dst.Bounds().Min. Indices that point
// past the vertex buffer end the current draw; a malformed list never panics.
func (r *SoftwareRenderer) Render(dst *image.RGBA, list *drawlist.DrawList) error {
	if dst == nil {
		return ErrNilTarget
	}
	if list == nil {
		return nil
	}

	for i := range list.Sets {
		r.renderSet(dst, &list.Sets[i])
	}
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
		SupportsVertexColors: false,
	}
}

// renderSet draws one set clipped to its scissor.
func (r *SoftwareRenderer) renderSet(dst *image.RGBA, set *drawlist.DrawSet) {
	if set.IsEmpty() {
		return
	}

	origin := dst.Bounds().Min
	clip := scissorBounds(set).Add(origin).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	r.ensureRasterizer(clip.Dx(), clip.Dy())

	// Rasterizer coordinates are relative to the clip rectangle.
	dx := float32(clip.Min.X - origin.X)
	dy := float32(clip.Min.Y - origin.Y)

	drawn := 0
	for _, d := range set.Draws {
		if r.renderDraw(dst, clip, set, d, dx, dy) {
			drawn++
		}
	}

	clui.Logger().Debug("render: set rasterized",
		"draws", drawn,
		"clip", clip,
	)
}

// renderDraw fills the triangles of one draw instruction. It reports whether
// anything was rasterized.
func (r *SoftwareRenderer) renderDraw(dst *image.RGBA, clip image.Rectangle, set *drawlist.DrawSet, d drawlist.DrawInstruction, dx, dy float32) bool {
	start := int(d.IndexOffset)
	end := start + int(d.IndexCount)
	if start >= len(set.Indices) {
		return false
	}
	end = min(end, len(set.Indices))

	r.rasterizer.Reset(clip.Dx(), clip.Dy())

	var fill *drawlist.Vertex
	for i := start; i+2 < end; i += 3 {
		a, okA := vertexAt(set, d, set.Indices[i])
		b, okB := vertexAt(set, d, set.Indices[i+1])
		c, okC := vertexAt(set, d, set.Indices[i+2])
		if !okA || !okB || !okC {
			break
		}
		if fill == nil {
			fill = a
		}
		r.rasterizer.MoveTo(a.Position[0]-dx, a.Position[1]-dy)
		r.rasterizer.LineTo(b.Position[0]-dx, b.Position[1]-dy)
		r.rasterizer.LineTo(c.Position[0]-dx, c.Position[1]-dy)
		r.rasterizer.ClosePath()
	}
	if fill == nil {
		return false
	}

	r.rasterizer.DrawOp = draw.Over
	r.rasterizer.Draw(dst, clip, image.NewUniform(toNRGBA(fill.Color)), image.Point{})
	return true
}

// vertexAt resolves index relative to the draw's vertex offset.
func vertexAt(set *drawlist.DrawSet, d drawlist.DrawInstruction, index uint32) (*drawlist.Vertex, bool) {
	i := uint64(d.VertexOffset) + uint64(index)
	if i >= uint64(len(set.Vertices)) {
		return nil, false
	}
	return &set.Vertices[i], true
}

// ensureRasterizer sizes the rasterizer for the clip dimensions.
func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.rasterizer == nil || r.lastWidth != width || r.lastHeight != height {
		r.rasterizer = vector.NewRasterizer(width, height)
		r.lastWidth = width
		r.lastHeight = height
	}
}

// scissorBounds is the set scissor in whole pixels, computed exactly as the
// GPU path computes it for SetScissorRect.
func scissorBounds(set *drawlist.DrawSet) image.Rectangle {
	sc := pipeline.ScissorRect(set)
	x, y := int(sc.X), int(sc.Y)
	return image.Rect(x, y, x+int(sc.Width), y+int(sc.Height))
}

// toNRGBA converts a straight-alpha float color to 8-bit.
func toNRGBA(c [4]float32) color.NRGBA {
	return color.NRGBA{
		R: unit8(c[0]),
		G: unit8(c[1]),
		B: unit8(c[2]),
		A: unit8(c[3]),
	}
}

func unit8(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
