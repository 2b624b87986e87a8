// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides a CPU renderer for clui draw lists.
//
// SoftwareRenderer rasterizes a drawlist.DrawList into an *image.RGBA with
// the same semantics the GPU pipeline applies: indexed triangles, base
// vertex offsets, the per-set scissor rectangle and source-over blending in
// draw order. It serves as the reference for tests, headless hosts and
// screenshot tooling.
//
// # Usage
//
//	tk.Update()
//	list := tk.DrawList()
//
//	dst := render.NewImage(&list)
//	render.Clear(dst, color.Black)
//	if err := render.NewSoftwareRenderer().Render(dst, &list); err != nil {
//	    return err
//	}
//
// # Coordinate System
//
// Draw list coordinates are pixels with the origin at the top-left of the
// destination image, X increasing right and Y increasing down.
package render
