// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/clui/drawlist"
)

// NewImage allocates an RGBA image large enough for every viewport in list.
func NewImage(list *drawlist.DrawList) *image.RGBA {
	var w, h int
	if list != nil {
		for i := range list.Sets {
			vp := list.Sets[i].Viewport
			w = max(w, int(math.Ceil(float64(vp.Width))))
			h = max(h, int(math.Ceil(float64(vp.Height))))
		}
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Clear fills dst with c.
func Clear(dst *image.RGBA, c color.Color) {
	if dst == nil {
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
