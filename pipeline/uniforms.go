// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/clui/geom"
)

// UniformSize is the byte size of the viewport uniform.
// Layout: viewport width and height as f32, then 8 bytes of padding.
const UniformSize = 16

// Uniforms encodes the viewport uniform for a DrawSet of the given viewport.
func Uniforms(viewport geom.Size) []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(viewport.Width))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(viewport.Height))
	return buf
}

// Scissor is an integer scissor rectangle in framebuffer pixels.
type Scissor struct {
	X, Y, Width, Height uint32
}

// ScissorRect converts the scissor of set to framebuffer pixels. The rect is
// expanded to whole pixels and clamped to the viewport.
func ScissorRect(set *drawlist.DrawSet) Scissor {
	vw := clampPixel(math.Floor(float64(set.Viewport.Width)), math.MaxUint32)
	vh := clampPixel(math.Floor(float64(set.Viewport.Height)), math.MaxUint32)

	r := set.Scissor
	x0 := clampPixel(math.Floor(float64(r.Left())), vw)
	y0 := clampPixel(math.Floor(float64(r.Top())), vh)
	x1 := clampPixel(math.Ceil(float64(r.Right())), vw)
	y1 := clampPixel(math.Ceil(float64(r.Bottom())), vh)

	s := Scissor{X: x0, Y: y0}
	if x1 > x0 {
		s.Width = x1 - x0
	}
	if y1 > y0 {
		s.Height = y1 - y0
	}
	return s
}

func clampPixel(v float64, hi uint32) uint32 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= float64(hi):
		return hi
	default:
		return uint32(v)
	}
}
