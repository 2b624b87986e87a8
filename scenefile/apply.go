// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenefile

import (
	"fmt"

	"github.com/gogpu/clui"
	"github.com/gogpu/clui/geom"
)

// Position modes accepted in Window.Position.
const (
	PositionAbsolute = "absolute"
	PositionRelative = "relative"
)

// AppliedLayer reports the handles created for one scene layer.
type AppliedLayer struct {
	Handle clui.LayerHandle

	// Windows maps window ids to handles. Windows without an id are not
	// listed.
	Windows map[string]clui.WindowHandle
}

// Validate checks colors, ids, parents and position modes.
func (s *Scene) Validate() error {
	for li := range s.Layers {
		l := &s.Layers[li]
		ids := make(map[string]bool, len(l.Windows))
		for _, w := range l.Windows {
			if w.ID == "" {
				continue
			}
			if ids[w.ID] {
				return fmt.Errorf("%w: layer %d: duplicate window id %q", ErrInvalidScene, li, w.ID)
			}
			ids[w.ID] = true
		}

		for wi, w := range l.Windows {
			if w.Parent != "" && !ids[w.Parent] {
				return fmt.Errorf("%w: layer %d window %d: %q", ErrUnknownParent, li, wi, w.Parent)
			}
			if _, err := w.color(); err != nil {
				return fmt.Errorf("%w: layer %d window %d: %v", ErrInvalidScene, li, wi, err)
			}
			if _, err := w.positioning(); err != nil {
				return fmt.Errorf("%w: layer %d window %d: %v", ErrInvalidScene, li, wi, err)
			}
		}
	}
	return nil
}

// Apply creates the scene's layers and windows in tk, in file order. The
// scene is validated first, so an invalid scene leaves tk unchanged.
func (s *Scene) Apply(tk *clui.Toolkit) ([]AppliedLayer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	applied := make([]AppliedLayer, 0, len(s.Layers))
	for li := range s.Layers {
		applied = append(applied, applyLayer(tk, &s.Layers[li]))
	}

	clui.Logger().Debug("scenefile: scene applied", "layers", len(applied))
	return applied, nil
}

func applyLayer(tk *clui.Toolkit, l *Layer) AppliedLayer {
	lh := tk.CreateLayer()
	layer := tk.MustLayer(lh)
	if l.Viewport != nil {
		layer.UpdateViewport(l.Viewport.Width, l.Viewport.Height)
	}

	out := AppliedLayer{Handle: lh, Windows: make(map[string]clui.WindowHandle, len(l.Windows))}
	handles := make([]clui.WindowHandle, len(l.Windows))

	// Parents may be declared after their children, so link in a second pass.
	for i, w := range l.Windows {
		c, _ := w.color()
		pos, _ := w.positioning()
		handles[i] = layer.AddWindow(clui.Window{
			Rect:            geom.FromValues(w.X, w.Y, w.Width, w.Height),
			BackgroundColor: c,
			ZIndex:          w.Z,
			Positioning:     pos,
		})
		if w.ID != "" {
			out.Windows[w.ID] = handles[i]
		}
	}
	for i, w := range l.Windows {
		if w.Parent != "" {
			layer.MustMutWindow(handles[i]).Parent = out.Windows[w.Parent]
		}
	}
	return out
}

func (w *Window) color() (clui.Color, error) {
	if w.Color == "" {
		return clui.Transparent, nil
	}
	c, ok := clui.Hex(w.Color)
	if !ok {
		return c, fmt.Errorf("malformed color %q", w.Color)
	}
	return c, nil
}

func (w *Window) positioning() (clui.Positioning, error) {
	switch w.Position {
	case "":
		if w.Parent != "" {
			return clui.PositionRelative, nil
		}
		return clui.PositionAbsolute, nil
	case PositionAbsolute:
		return clui.PositionAbsolute, nil
	case PositionRelative:
		return clui.PositionRelative, nil
	default:
		return clui.PositionAbsolute, fmt.Errorf("unknown position %q", w.Position)
	}
}
