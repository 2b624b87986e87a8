// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"github.com/gogpu/clui/drawlist"
)

// ErrNilTarget is returned when Render is called without a destination image.
var ErrNilTarget = errors.New("render: nil target")

// Renderer executes a compiled draw list against an image.
//
// Renderers are stateless between Render calls apart from scratch buffers,
// so the same renderer can be used with different targets and lists.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	dst := render.NewImage(&list)
//	render.Clear(dst, color.White)
//
//	if err := renderer.Render(dst, &list); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
type Renderer interface {
	// Render draws every set of list, in order, onto dst.
	//
	// The list is not modified and can be rendered multiple times.
	Render(dst *image.RGBA, list *drawlist.DrawList) error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if edges are anti-aliased.
	SupportsAntialiasing bool

	// SupportsVertexColors indicates if colors are interpolated across a
	// triangle. When false, each draw uses the color of its first vertex.
	SupportsVertexColors bool
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
