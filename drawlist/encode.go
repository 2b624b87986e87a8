// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawlist

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// IndexSize is the byte size of one index.
const IndexSize = 4

// IndexFormat is the format of DrawSet.Indices.
var IndexFormat = gputypes.IndexFormatUint32

// VertexLayout returns the vertex buffer layout matching VertexBytes.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// VertexBytes encodes the vertex buffer little-endian, VertexStride bytes
// per vertex, ready for a GPU buffer upload.
func (s *DrawSet) VertexBytes() []byte {
	return AppendVertexBytes(nil, s.Vertices)
}

// IndexBytes encodes the index buffer little-endian, IndexSize bytes per
// index.
func (s *DrawSet) IndexBytes() []byte {
	buf := make([]byte, len(s.Indices)*IndexSize)
	for i, idx := range s.Indices {
		binary.LittleEndian.PutUint32(buf[i*IndexSize:], idx)
	}
	return buf
}

// AppendVertexBytes appends the encoding of vertices to buf and returns the
// extended buffer.
func AppendVertexBytes(buf []byte, vertices []Vertex) []byte {
	offset := len(buf)
	buf = append(buf, make([]byte, len(vertices)*VertexStride)...)
	for i := range vertices {
		writeVertex(buf[offset:], &vertices[i])
		offset += VertexStride
	}
	return buf
}

func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[3]))
}
