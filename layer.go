package clui

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/gogpu/clui/arena"
	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/clui/geom"
)

// Layer is a collection of windows sharing one viewport and paint order.
// A layer owns its windows exclusively; their handles are meaningless to
// any other layer.
//
// Per frame, a host typically calls UpdateViewport when the render target
// is resized, then Update, then DrawSet:
//
//	layer.UpdateViewport(float32(w), float32(h))
//	layer.Update()
//	set := layer.DrawSet()
//
// A Layer is not safe for concurrent use.
type Layer struct {
	windows  arena.Arena[Window]
	viewport geom.Size

	// screen holds the absolute rect of every window as of the last
	// Update. It is never written back into Window.Rect.
	screen map[WindowHandle]geom.Rect

	builder drawlist.Builder
}

// NewLayer creates an empty layer with the given viewport.
// Layers created through a Toolkit use its configured viewport instead.
func NewLayer(viewport geom.Size) *Layer {
	l := newLayer(viewport)
	return &l
}

func newLayer(viewport geom.Size) Layer {
	return Layer{viewport: viewport}
}

// UpdateViewport replaces the viewport size.
func (l *Layer) UpdateViewport(width, height geom.Scalar) {
	l.viewport = geom.Size{Width: width, Height: height}
}

// Viewport returns the current viewport size.
func (l *Layer) Viewport() geom.Size {
	return l.viewport
}

// AddWindow stores w and returns its handle.
func (l *Layer) AddWindow(w Window) WindowHandle {
	return l.windows.Insert(w)
}

// AddDefaultWindow adds a DefaultWindow.
func (l *Layer) AddDefaultWindow() WindowHandle {
	return l.AddWindow(DefaultWindow())
}

// RemoveWindow deletes the window h refers to and returns its content.
// Relative windows parented to it fall back to the viewport origin.
func (l *Layer) RemoveWindow(h WindowHandle) (Window, bool) {
	return l.windows.Remove(h)
}

// Window returns a copy of the window h refers to.
func (l *Layer) Window(h WindowHandle) (Window, bool) {
	w, ok := l.windows.Get(h)
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// MutWindow returns the window h refers to for in-place modification.
// The pointer stays valid until the window is removed; changes made through
// it are picked up by the next ScreenRect, WindowAt or DrawSet call.
func (l *Layer) MutWindow(h WindowHandle) (*Window, bool) {
	return l.windows.Get(h)
}

// MustWindow is like Window but panics when h is stale.
func (l *Layer) MustWindow(h WindowHandle) Window {
	w, ok := l.Window(h)
	if !ok {
		panic(fmt.Errorf("clui: window %v: %w", h, ErrStaleHandle))
	}
	return w
}

// MustMutWindow is like MutWindow but panics when h is stale.
func (l *Layer) MustMutWindow(h WindowHandle) *Window {
	w, ok := l.MutWindow(h)
	if !ok {
		panic(fmt.Errorf("clui: window %v: %w", h, ErrStaleHandle))
	}
	return w
}

// WindowCount returns the number of live windows.
func (l *Layer) WindowCount() int {
	return l.windows.Len()
}

// Windows iterates over copies of all windows in insertion order.
func (l *Layer) Windows() iter.Seq2[WindowHandle, Window] {
	return func(yield func(WindowHandle, Window) bool) {
		for h, w := range l.windows.All() {
			if !yield(h, *w) {
				return
			}
		}
	}
}

// Update resolves every window to an absolute screen rect.
//
// Absolute windows keep their Rect. Relative windows are offset by their
// parent's resolved origin; a window whose parent is nil, removed, or part
// of a parent cycle is offset by the viewport origin instead.
//
// Update derives everything from window content, so calling it again
// without intervening changes yields the same result. ScreenRect, WindowAt
// and DrawSet run it themselves, since windows may change through pointers
// obtained from MutWindow at any time.
func (l *Layer) Update() {
	if l.screen == nil {
		l.screen = make(map[WindowHandle]geom.Rect, l.windows.Len())
	} else {
		clear(l.screen)
	}
	visiting := make(map[WindowHandle]bool)
	for h, w := range l.windows.All() {
		l.resolve(h, w, l.screen, visiting)
	}
}

func (l *Layer) resolve(h WindowHandle, w *Window, screen map[WindowHandle]geom.Rect, visiting map[WindowHandle]bool) geom.Rect {
	if r, ok := screen[h]; ok {
		return r
	}
	r := w.Rect
	if w.Positioning == PositionRelative {
		r = r.MoveTo(l.parentOrigin(h, w, screen, visiting).Add(w.Rect.Point))
	}
	screen[h] = r
	return r
}

func (l *Layer) parentOrigin(h WindowHandle, w *Window, screen map[WindowHandle]geom.Rect, visiting map[WindowHandle]bool) geom.Point {
	if w.Parent.IsNil() {
		return geom.Point{}
	}
	parent, ok := l.windows.Get(w.Parent)
	if !ok {
		return geom.Point{}
	}

	visiting[h] = true
	defer delete(visiting, h)

	if visiting[w.Parent] {
		Logger().Warn("clui: window parent cycle, using viewport origin",
			"window", h, "parent", w.Parent)
		return geom.Point{}
	}
	return l.resolve(w.Parent, parent, screen, visiting).Point
}

// ScreenRect returns the resolved absolute rect of the window h refers to.
func (l *Layer) ScreenRect(h WindowHandle) (geom.Rect, bool) {
	if !l.windows.Contains(h) {
		return geom.Rect{}, false
	}
	l.Update()
	r, ok := l.screen[h]
	return r, ok
}

type paintEntry struct {
	handle WindowHandle
	z      int32
	seq    uint64
}

// PaintOrder returns window handles back to front: ascending ZIndex, ties
// broken by insertion order.
func (l *Layer) PaintOrder() []WindowHandle {
	entries := make([]paintEntry, 0, l.windows.Len())
	for h, w := range l.windows.All() {
		seq, _ := l.windows.Seq(h)
		entries = append(entries, paintEntry{handle: h, z: w.ZIndex, seq: seq})
	}
	slices.SortStableFunc(entries, func(a, b paintEntry) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	order := make([]WindowHandle, len(entries))
	for i, e := range entries {
		order[i] = e.handle
	}
	return order
}

// WindowAt returns the topmost window whose screen rect contains p.
// Boundaries count as inside.
func (l *Layer) WindowAt(p geom.Point) (WindowHandle, bool) {
	l.Update()
	order := l.PaintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if l.screen[order[i]].ContainsPoint(p) {
			return order[i], true
		}
	}
	return WindowHandle{}, false
}

// DrawSet compiles the layer into GPU-ready geometry: one quad and one
// draw instruction per window, in paint order. The viewport and scissor
// cover the layer's viewport. A layer without windows yields an empty set.
//
// Compiling the same layer state twice yields identical output.
func (l *Layer) DrawSet() drawlist.DrawSet {
	l.Update()

	order := l.PaintOrder()
	l.builder.Reset()
	l.builder.Reserve(len(order))
	for _, h := range order {
		w, _ := l.windows.Get(h)
		l.builder.AddQuad(l.screen[h], w.BackgroundColor.Array())
	}

	set := l.builder.Build(l.viewport)
	Logger().Debug("clui: layer compiled",
		"draws", len(set.Draws),
		"vertices", len(set.Vertices),
		"indices", len(set.Indices))
	return set
}
