package clui

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/clui/drawlist"
	"github.com/gogpu/clui/geom"
)

func newTestLayer(t *testing.T) (*Toolkit, *Layer) {
	t.Helper()
	tk := New()
	layer, ok := tk.Layer(tk.CreateLayer())
	if !ok {
		t.Fatal("Layer(CreateLayer()) missed")
	}
	return tk, layer
}

func TestLayerBasics(t *testing.T) {
	_, layer := newTestLayer(t)
	layer.UpdateViewport(800, 600)

	rect := geom.FromValues(10, 11, 100, 110)
	wk := layer.AddWindow(Window{Rect: rect})

	w, ok := layer.Window(wk)
	if !ok {
		t.Fatal("Window() missed a live handle")
	}
	if w.Rect != rect {
		t.Errorf("Rect = %v, want %v", w.Rect, rect)
	}
	if w.BackgroundColor != (Color{}) {
		t.Errorf("BackgroundColor = %v, want zero", w.BackgroundColor)
	}

	removed, ok := layer.RemoveWindow(wk)
	if !ok {
		t.Fatal("RemoveWindow() missed a live handle")
	}
	if removed != w {
		t.Errorf("RemoveWindow() = %+v, want %+v", removed, w)
	}
	if _, ok := layer.Window(wk); ok {
		t.Error("Window() resolved a removed handle")
	}
	if _, ok := layer.RemoveWindow(wk); ok {
		t.Error("second RemoveWindow() should miss")
	}
}

func TestLayerDefaultViewport(t *testing.T) {
	_, layer := newTestLayer(t)
	if layer.Viewport() != geom.Sz(800, 600) {
		t.Errorf("Viewport() = %v, want {800 600}", layer.Viewport())
	}

	tk := New(WithViewport(1280, 720))
	l := tk.MustLayer(tk.CreateLayer())
	if l.Viewport() != geom.Sz(1280, 720) {
		t.Errorf("Viewport() = %v, want {1280 720}", l.Viewport())
	}
}

func TestAddDefaultWindow(t *testing.T) {
	_, layer := newTestLayer(t)
	h := layer.AddDefaultWindow()

	w := layer.MustWindow(h)
	if w != DefaultWindow() {
		t.Errorf("default window = %+v", w)
	}
	if w.Rect != geom.FromValues(0, 0, 0, 0) || w.ZIndex != 0 || w.Positioning != PositionAbsolute {
		t.Errorf("default window fields = %+v", w)
	}
}

func TestMutWindow(t *testing.T) {
	_, layer := newTestLayer(t)
	h := layer.AddDefaultWindow()

	w, ok := layer.MutWindow(h)
	if !ok {
		t.Fatal("MutWindow() missed")
	}
	w.Rect = geom.FromValues(1, 2, 3, 4)
	w.BackgroundColor = Red

	got := layer.MustWindow(h)
	if got.Rect != geom.FromValues(1, 2, 3, 4) || got.BackgroundColor != Red {
		t.Errorf("mutation not visible: %+v", got)
	}
	if r, _ := layer.ScreenRect(h); r != geom.FromValues(1, 2, 3, 4) {
		t.Errorf("ScreenRect() = %v after mutation", r)
	}
}

func TestMustWindowPanics(t *testing.T) {
	_, layer := newTestLayer(t)
	h := layer.AddDefaultWindow()
	layer.RemoveWindow(h)

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrStaleHandle) {
			t.Errorf("panic = %v, want ErrStaleHandle", err)
		}
	}()
	layer.MustMutWindow(h)
}

func TestForeignWindowHandle(t *testing.T) {
	tk := New()
	a := tk.MustLayer(tk.CreateLayer())
	b := tk.MustLayer(tk.CreateLayer())

	ha := a.AddDefaultWindow()
	b.AddDefaultWindow()

	if _, ok := b.Window(ha); ok {
		t.Error("window handle from another layer resolved")
	}
	if _, ok := b.RemoveWindow(ha); ok {
		t.Error("RemoveWindow(foreign) succeeded")
	}
	if b.WindowCount() != 1 {
		t.Errorf("WindowCount() = %d, want 1", b.WindowCount())
	}
}

func TestWindowsIteration(t *testing.T) {
	_, layer := newTestLayer(t)
	h1 := layer.AddWindow(Window{ZIndex: 5})
	h2 := layer.AddWindow(Window{ZIndex: 1})

	var got []WindowHandle
	for h := range layer.Windows() {
		got = append(got, h)
	}
	if !reflect.DeepEqual(got, []WindowHandle{h1, h2}) {
		t.Errorf("Windows() order = %v, want [%v %v]", got, h1, h2)
	}
}

func TestUpdateRelative(t *testing.T) {
	_, layer := newTestLayer(t)

	parent := layer.AddWindow(Window{Rect: geom.FromValues(100, 50, 300, 200)})
	child := layer.AddWindow(Window{
		Rect:        geom.FromValues(10, 20, 30, 40),
		Positioning: PositionRelative,
		Parent:      parent,
	})
	grandchild := layer.AddWindow(Window{
		Rect:        geom.FromValues(1, 1, 5, 5),
		Positioning: PositionRelative,
		Parent:      child,
	})
	orphan := layer.AddWindow(Window{
		Rect:        geom.FromValues(7, 8, 9, 10),
		Positioning: PositionRelative,
	})

	layer.Update()

	tests := []struct {
		name string
		h    WindowHandle
		want geom.Rect
	}{
		{"parent", parent, geom.FromValues(100, 50, 300, 200)},
		{"child", child, geom.FromValues(110, 70, 30, 40)},
		{"grandchild", grandchild, geom.FromValues(111, 71, 5, 5)},
		{"orphan", orphan, geom.FromValues(7, 8, 9, 10)},
	}
	for _, tt := range tests {
		got, ok := layer.ScreenRect(tt.h)
		if !ok || got != tt.want {
			t.Errorf("ScreenRect(%s) = %v, %v, want %v", tt.name, got, ok, tt.want)
		}
	}

	// Content is left untouched.
	if w := layer.MustWindow(child); w.Rect != geom.FromValues(10, 20, 30, 40) {
		t.Errorf("Update rewrote child Rect to %v", w.Rect)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	_, layer := newTestLayer(t)
	p := layer.AddWindow(Window{Rect: geom.FromValues(5, 5, 10, 10)})
	layer.AddWindow(Window{Rect: geom.FromValues(1, 1, 2, 2), Positioning: PositionRelative, Parent: p})
	layer.AddWindow(Window{Rect: geom.FromValues(3, 3, 2, 2), ZIndex: -1})

	snapshot := func() map[WindowHandle]geom.Rect {
		out := make(map[WindowHandle]geom.Rect)
		for h := range layer.Windows() {
			out[h], _ = layer.ScreenRect(h)
		}
		return out
	}

	layer.Update()
	first := snapshot()
	layer.Update()
	second := snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Update not idempotent: %v then %v", first, second)
	}
}

func TestUpdateRemovedParent(t *testing.T) {
	_, layer := newTestLayer(t)
	p := layer.AddWindow(Window{Rect: geom.FromValues(50, 50, 10, 10)})
	c := layer.AddWindow(Window{Rect: geom.FromValues(1, 2, 3, 4), Positioning: PositionRelative, Parent: p})

	if r, _ := layer.ScreenRect(c); r != geom.FromValues(51, 52, 3, 4) {
		t.Fatalf("ScreenRect() = %v before removal", r)
	}
	layer.RemoveWindow(p)
	if r, _ := layer.ScreenRect(c); r != geom.FromValues(1, 2, 3, 4) {
		t.Errorf("ScreenRect() = %v after parent removal, want viewport-relative", r)
	}
}

func TestUpdateParentCycle(t *testing.T) {
	_, layer := newTestLayer(t)
	a := layer.AddWindow(Window{Rect: geom.FromValues(10, 10, 1, 1), Positioning: PositionRelative})
	b := layer.AddWindow(Window{Rect: geom.FromValues(5, 5, 1, 1), Positioning: PositionRelative, Parent: a})
	layer.MustMutWindow(a).Parent = b

	self := layer.AddWindow(Window{Rect: geom.FromValues(2, 2, 1, 1), Positioning: PositionRelative})
	layer.MustMutWindow(self).Parent = self

	layer.Update()

	// a is visited first, so the cycle is cut at b.
	if r, _ := layer.ScreenRect(b); r != geom.FromValues(5, 5, 1, 1) {
		t.Errorf("ScreenRect(b) = %v", r)
	}
	if r, _ := layer.ScreenRect(a); r != geom.FromValues(15, 15, 1, 1) {
		t.Errorf("ScreenRect(a) = %v", r)
	}
	if r, _ := layer.ScreenRect(self); r != geom.FromValues(2, 2, 1, 1) {
		t.Errorf("ScreenRect(self) = %v", r)
	}
}

func TestScreenRectStale(t *testing.T) {
	_, layer := newTestLayer(t)
	h := layer.AddDefaultWindow()
	layer.RemoveWindow(h)
	if _, ok := layer.ScreenRect(h); ok {
		t.Error("ScreenRect() resolved a removed handle")
	}
}

func TestPaintOrder(t *testing.T) {
	_, layer := newTestLayer(t)
	a := layer.AddWindow(Window{ZIndex: 1})
	b := layer.AddWindow(Window{ZIndex: 0})
	c := layer.AddWindow(Window{ZIndex: 1})
	d := layer.AddWindow(Window{ZIndex: -3})

	want := []WindowHandle{d, b, a, c}
	if got := layer.PaintOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("PaintOrder() = %v, want %v", got, want)
	}

	// Reusing a's slot must not move the new window ahead of c.
	layer.RemoveWindow(a)
	e := layer.AddWindow(Window{ZIndex: 1})
	want = []WindowHandle{d, b, c, e}
	if got := layer.PaintOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("PaintOrder() after reuse = %v, want %v", got, want)
	}
}

func TestWindowAt(t *testing.T) {
	_, layer := newTestLayer(t)
	back := layer.AddWindow(Window{Rect: geom.FromValues(0, 0, 100, 100)})
	front := layer.AddWindow(Window{Rect: geom.FromValues(50, 50, 100, 100), ZIndex: 2})
	layer.AddWindow(Window{Rect: geom.FromValues(60, 60, 10, 10), ZIndex: 1})

	tests := []struct {
		p    geom.Point
		want WindowHandle
		ok   bool
	}{
		{geom.Pt(10, 10), back, true},
		{geom.Pt(65, 65), front, true},
		{geom.Pt(100, 100), front, true},
		{geom.Pt(0, 0), back, true},
		{geom.Pt(151, 10), WindowHandle{}, false},
	}
	for _, tt := range tests {
		got, ok := layer.WindowAt(tt.p)
		if ok != tt.ok || got != tt.want {
			t.Errorf("WindowAt(%v) = %v, %v, want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRetainedMutWindowPointer(t *testing.T) {
	_, layer := newTestLayer(t)
	h := layer.AddWindow(Window{Rect: geom.FromValues(10, 10, 20, 20), BackgroundColor: Red})

	w, ok := layer.MutWindow(h)
	if !ok {
		t.Fatal("MutWindow() missed")
	}
	layer.DrawSet()

	w.Rect = geom.FromValues(100, 100, 20, 20)
	w.BackgroundColor = Green

	set := layer.DrawSet()
	v := set.Vertices[set.Draws[0].VertexOffset]
	if v.Position != [2]float32{100, 100} || v.Color != Green.Array() {
		t.Errorf("vertex 0 = %v %v, want [100 100] %v", v.Position, v.Color, Green.Array())
	}
	if r, _ := layer.ScreenRect(h); r != geom.FromValues(100, 100, 20, 20) {
		t.Errorf("ScreenRect() = %v, want {{100 100} {20 20}}", r)
	}
	if got, ok := layer.WindowAt(geom.Pt(105, 105)); !ok || got != h {
		t.Errorf("WindowAt(105, 105) = %v, %v, want %v, true", got, ok, h)
	}
	if _, ok := layer.WindowAt(geom.Pt(15, 15)); ok {
		t.Error("WindowAt(15, 15) hit the old position")
	}
}

func TestDrawSetFollowsMutation(t *testing.T) {
	_, layer := newTestLayer(t)
	parent := layer.AddWindow(Window{Rect: geom.FromValues(0, 0, 50, 50), BackgroundColor: Red})
	child := layer.AddWindow(Window{
		Rect:            geom.FromValues(5, 5, 10, 10),
		BackgroundColor: Green,
		ZIndex:          1,
		Positioning:     PositionRelative,
		Parent:          parent,
	})
	other := layer.AddWindow(Window{Rect: geom.FromValues(60, 60, 5, 5), BackgroundColor: Blue, ZIndex: 2})

	pw := layer.MustMutWindow(parent)
	ow := layer.MustMutWindow(other)
	before := layer.DrawSet()

	tests := []struct {
		name   string
		mutate func()
		check  func(t *testing.T, set drawlist.DrawSet)
	}{
		{
			name:   "rect",
			mutate: func() { pw.Rect = geom.FromValues(200, 100, 50, 50) },
			check: func(t *testing.T, set drawlist.DrawSet) {
				// The child follows its parent's new origin.
				if got := set.Vertices[set.Draws[1].VertexOffset].Position; got != [2]float32{205, 105} {
					t.Errorf("child TL = %v, want [205 105]", got)
				}
			},
		},
		{
			name:   "color",
			mutate: func() { pw.BackgroundColor = White },
			check: func(t *testing.T, set drawlist.DrawSet) {
				if got := set.Vertices[set.Draws[0].VertexOffset].Color; got != White.Array() {
					t.Errorf("parent color = %v, want white", got)
				}
			},
		},
		{
			name:   "z-index",
			mutate: func() { ow.ZIndex = -1 },
			check: func(t *testing.T, set drawlist.DrawSet) {
				if got := set.Vertices[set.Draws[0].VertexOffset].Color; got != Blue.Array() {
					t.Errorf("first draw color = %v, want blue after lowering z", got)
				}
				want := []WindowHandle{other, parent, child}
				if got := layer.PaintOrder(); !reflect.DeepEqual(got, want) {
					t.Errorf("PaintOrder() = %v, want %v", got, want)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mutate()
			tt.check(t, layer.DrawSet())
		})
	}

	after := layer.DrawSet()
	if bytes.Equal(before.VertexBytes(), after.VertexBytes()) {
		t.Error("vertex bytes unchanged after mutation")
	}
}
