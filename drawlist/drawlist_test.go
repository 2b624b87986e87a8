// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/clui/geom"
)

func TestBuilderEmpty(t *testing.T) {
	var b Builder
	set := b.Build(geom.Sz(800, 600))

	if !set.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if set.Draws == nil || set.Vertices == nil || set.Indices == nil {
		t.Error("empty set should have non-nil buffers")
	}
	if set.Viewport != geom.Sz(800, 600) {
		t.Errorf("Viewport = %v, want {800 600}", set.Viewport)
	}
	if set.Scissor != geom.FromValues(0, 0, 800, 600) {
		t.Errorf("Scissor = %v, want full viewport", set.Scissor)
	}
}

func TestBuilderAddQuad(t *testing.T) {
	var b Builder
	red := [4]float32{1, 0, 0, 1}
	blue := [4]float32{0, 0, 1, 0.5}

	d0 := b.AddQuad(geom.FromValues(10, 20, 30, 40), red)
	d1 := b.AddQuad(geom.FromValues(0, 0, 5, 5), blue)

	if d0 != (DrawInstruction{IndexOffset: 0, IndexCount: 6, VertexOffset: 0}) {
		t.Errorf("first draw = %+v", d0)
	}
	if d1 != (DrawInstruction{IndexOffset: 6, IndexCount: 6, VertexOffset: 4}) {
		t.Errorf("second draw = %+v", d1)
	}

	set := b.Build(geom.Sz(100, 100))
	if len(set.Vertices) != 8 || len(set.Indices) != 12 || len(set.Draws) != 2 {
		t.Fatalf("sizes = %d/%d/%d, want 8/12/2", len(set.Vertices), len(set.Indices), len(set.Draws))
	}

	wantPos := [][2]float32{{10, 20}, {40, 20}, {10, 60}, {40, 60}}
	for i, p := range wantPos {
		if set.Vertices[i].Position != p {
			t.Errorf("Vertices[%d].Position = %v, want %v", i, set.Vertices[i].Position, p)
		}
		if set.Vertices[i].Color != red {
			t.Errorf("Vertices[%d].Color = %v, want %v", i, set.Vertices[i].Color, red)
		}
	}
	if set.Vertices[4].Color != blue {
		t.Errorf("Vertices[4].Color = %v, want %v", set.Vertices[4].Color, blue)
	}

	wantIdx := []uint32{0, 1, 2, 1, 3, 2, 0, 1, 2, 1, 3, 2}
	for i, idx := range wantIdx {
		if set.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, set.Indices[i], idx)
		}
	}
	if set.Triangles() != 4 {
		t.Errorf("Triangles() = %d, want 4", set.Triangles())
	}
}

func TestBuilderReuse(t *testing.T) {
	var b Builder
	b.Reserve(4)
	b.AddQuad(geom.FromValues(0, 0, 1, 1), [4]float32{1, 1, 1, 1})
	first := b.Build(geom.Sz(10, 10))

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
	b.AddQuad(geom.FromValues(5, 5, 1, 1), [4]float32{0, 0, 0, 1})

	// The earlier set must not observe later builder writes.
	if first.Vertices[0].Position != [2]float32{0, 0} {
		t.Errorf("built set aliased builder buffers: %v", first.Vertices[0].Position)
	}
}

func TestVertexBytesLayout(t *testing.T) {
	var b Builder
	b.AddQuad(geom.FromValues(1.5, 2.5, 3, 4), [4]float32{0.1, 0.2, 0.3, 0.4})
	set := b.Build(geom.Sz(10, 10))

	vb := set.VertexBytes()
	if len(vb) != 4*VertexStride {
		t.Fatalf("len(VertexBytes()) = %d, want %d", len(vb), 4*VertexStride)
	}

	layout := VertexLayout()
	if len(layout) != 1 || layout[0].ArrayStride != VertexStride {
		t.Fatalf("VertexLayout() = %+v", layout)
	}
	attrs := layout[0].Attributes
	if attrs[0].Format != gputypes.VertexFormatFloat32x2 || attrs[1].Format != gputypes.VertexFormatFloat32x4 {
		t.Errorf("attribute formats = %v, %v", attrs[0].Format, attrs[1].Format)
	}

	// Decode the second vertex (TR) through the declared attribute offsets.
	v := vb[VertexStride:]
	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(v[off:]))
	}
	posOff, colorOff := int(attrs[0].Offset), int(attrs[1].Offset)
	if x, y := f(posOff), f(posOff+4); x != 4.5 || y != 2.5 {
		t.Errorf("position = (%v, %v), want (4.5, 2.5)", x, y)
	}
	for i, want := range []float32{0.1, 0.2, 0.3, 0.4} {
		if got := f(colorOff + i*4); got != want {
			t.Errorf("color[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestIndexBytes(t *testing.T) {
	set := DrawSet{Indices: []uint32{0, 1, 2, 0x01020304}}
	want := []byte{0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 4, 3, 2, 1}
	if got := set.IndexBytes(); !bytes.Equal(got, want) {
		t.Errorf("IndexBytes() = %v, want %v", got, want)
	}
	if IndexFormat != gputypes.IndexFormatUint32 {
		t.Errorf("IndexFormat = %v, want Uint32", IndexFormat)
	}
}

func TestDrawListCounts(t *testing.T) {
	var b Builder
	b.AddQuad(geom.FromValues(0, 0, 1, 1), [4]float32{})
	s1 := b.Build(geom.Sz(1, 1))
	b.AddQuad(geom.FromValues(0, 0, 1, 1), [4]float32{})
	s2 := b.Build(geom.Sz(1, 1))

	l := DrawList{Sets: []DrawSet{s1, s2}}
	if l.VertexCount() != 12 {
		t.Errorf("VertexCount() = %d, want 12", l.VertexCount())
	}
	if l.IndexCount() != 18 {
		t.Errorf("IndexCount() = %d, want 18", l.IndexCount())
	}
}
