package terrain

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUTerrainVertexSource is the canonical WGSL definition of the VertexInput
// struct for terrain pipelines. Matches GPUTerrainVertex layout exactly
// (32 bytes, tightly packed vertex stride).
//
//go:embed assets/terrain_vertex.wgsl
var GPUTerrainVertexSource string

// GPUTerrainVertex is the per-vertex attribute record for terrain meshes: a
// reduced general vertex without the color channel, since terrain shading
// derives surface color from texture splatting rather than per-vertex color.
// Matches the WGSL VertexInput struct layout exactly (see
// GPUTerrainVertexSource). Field order is part of the binary contract and
// must not change. Size: 32 bytes, tightly packed.
type GPUTerrainVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUTerrainVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUTerrainVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTerrainVertex struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUTerrainVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.marshalInto(buf)
	return buf
}

// marshalInto writes the vertex at offset 0 of buf, which must hold at least
// Size() bytes.
func (g *GPUTerrainVertex) marshalInto(buf []byte) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.TexCoord[1]))
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// receiver, reading each field at its documented offset.
//
// Parameters:
//   - buf: the source buffer (must hold at least Size() bytes)
//
// Returns:
//   - error: an error if the buffer is too short, nil otherwise
func (g *GPUTerrainVertex) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("terrain vertex buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	for i := range 3 {
		g.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		g.Normal[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[12+i*4:]))
	}
	g.TexCoord[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[24:]))
	g.TexCoord[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[28:]))
	return nil
}

// VertexBufferLayout returns the wgpu vertex buffer layout describing
// GPUTerrainVertex to a render pipeline: one tightly packed buffer with
// position, normal, and texCoord at shader locations 0-2.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout descriptor for GPUTerrainVertex buffers
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64((&GPUTerrainVertex{}).Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 2, Offset: 24, Format: wgpu.VertexFormatFloat32x2},
		},
	}
}

// MarshalVertexBuffer marshals a slice of terrain vertices into a contiguous
// byte buffer suitable for GPU vertex buffer upload.
//
// Parameters:
//   - vertices: the vertex data to marshal
//
// Returns:
//   - []byte: the marshaled buffer, len(vertices) × 32 bytes
func MarshalVertexBuffer(vertices []GPUTerrainVertex) []byte {
	stride := (&GPUTerrainVertex{}).Size()
	buf := make([]byte, len(vertices)*stride)
	for i := range vertices {
		vertices[i].marshalInto(buf[i*stride:])
	}
	return buf
}
