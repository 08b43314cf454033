package model

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/auxon/FactoryForge/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct
// for general 3D mesh pipelines. Matches GPUVertex layout exactly (48 bytes,
// tightly packed vertex stride).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the per-vertex attribute record for general 3D meshes. Vertex
// buffers are tightly packed, so unlike the uniform records there are no
// alignment pads: the stride is exactly the sum of the attribute sizes.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Field order is part of the binary contract and must not change.
// Size: 48 bytes.
//
// Normal is expected unit length and TexCoord/Color are typically in [0,1];
// neither is enforced here.
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.marshalInto(buf)
	return buf
}

// marshalInto writes the vertex at offset 0 of buf, which must hold at least
// Size() bytes.
func (g *GPUVertex) marshalInto(buf []byte) {
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.TexCoord[1]))
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Color[i]))
	}
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// receiver, reading each field at its documented offset.
//
// Parameters:
//   - buf: the source buffer (must hold at least Size() bytes)
//
// Returns:
//   - error: an error if the buffer is too short, nil otherwise
func (g *GPUVertex) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("vertex buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	for i := range 3 {
		g.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		g.Normal[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[12+i*4:]))
	}
	g.TexCoord[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[24:]))
	g.TexCoord[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[28:]))
	for i := range 4 {
		g.Color[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[32+i*4:]))
	}
	return nil
}

// VertexBufferLayout returns the wgpu vertex buffer layout describing GPUVertex
// to a render pipeline: one tightly packed buffer with position, normal,
// texCoord, and color at shader locations 0-3.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout descriptor for GPUVertex buffers
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64((&GPUVertex{}).Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
			{ShaderLocation: 2, Offset: 24, Format: wgpu.VertexFormatFloat32x2},
			{ShaderLocation: 3, Offset: 32, Format: wgpu.VertexFormatFloat32x4},
		},
	}
}

// MarshalVertexBuffer marshals a slice of vertices into a contiguous byte
// buffer suitable for GPU vertex buffer upload.
//
// Parameters:
//   - vertices: the vertex data to marshal
//
// Returns:
//   - []byte: the marshaled buffer, len(vertices) × 48 bytes
func MarshalVertexBuffer(vertices []GPUVertex) []byte {
	stride := (&GPUVertex{}).Size()
	buf := make([]byte, len(vertices)*stride)
	for i := range vertices {
		vertices[i].marshalInto(buf[i*stride:])
	}
	return buf
}

// GPUModelUniformsSource is the canonical WGSL definition of the ModelUniforms struct.
// Matches GPUModelUniforms layout exactly (112 bytes, std140 aligned).
//
//go:embed assets/model_uniforms.wgsl
var GPUModelUniformsSource string

// GPUModelUniforms is the GPU-aligned representation of the per-object
// transform uniform buffer. Matches the WGSL ModelUniforms struct layout
// exactly (see GPUModelUniformsSource). Field order is part of the binary
// contract and must not change. Size: 112 bytes (mat4x4 + mat3x3, where the
// mat3x3 occupies three 16-byte columns).
//
// NormalMatrix is a derived field: it caches the inverse-transpose of the
// upper-left 3x3 of Model, the matrix that transforms normals correctly under
// non-uniform scale. Producers must call RecomputeNormalMatrix after changing
// Model; this layer does not detect stale values.
type GPUModelUniforms struct {
	Model        [16]float32 // offset  0: object-to-world matrix (mat4x4<f32>)
	NormalMatrix [9]float32  // offset 64: inverse-transpose of Model's 3x3, derived; columns at 64/80/96
	_pad         [3]float32  // padding so the Go size matches the 112-byte GPU size
}

// Size returns the size of the GPUModelUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (112)
func (g *GPUModelUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// RecomputeNormalMatrix recomputes the derived NormalMatrix field from the
// current Model field. Must be called by the producer whenever Model changes,
// before the struct is marshaled for upload. If Model is singular the normal
// matrix is left unchanged and false is returned.
//
// Returns:
//   - bool: true if the normal matrix was recomputed, false if Model is singular
func (g *GPUModelUniforms) RecomputeNormalMatrix() bool {
	return common.NormalMatrix3(g.NormalMatrix[:], g.Model[:])
}

// Marshal serializes the GPUModelUniforms struct into a byte buffer suitable
// for GPU uniform upload. Each normal matrix column is written at a 16-byte
// stride (WGSL mat3x3 column alignment) with the trailing pad word zeroed.
//
// Returns:
//   - []byte: 112-byte buffer ready for GPU upload
func (g *GPUModelUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for c := range 3 {
		for r := range 3 {
			binary.LittleEndian.PutUint32(buf[64+c*16+r*4:], math.Float32bits(g.NormalMatrix[c*3+r]))
		}
		binary.LittleEndian.PutUint32(buf[64+c*16+12:], 0) // column pad
	}
	return buf
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// receiver, reading each field at its documented offset.
//
// Parameters:
//   - buf: the source buffer (must hold at least Size() bytes)
//
// Returns:
//   - error: an error if the buffer is too short, nil otherwise
func (g *GPUModelUniforms) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("model uniforms buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	for i := range 16 {
		g.Model[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	for c := range 3 {
		for r := range 3 {
			g.NormalMatrix[c*3+r] = math.Float32frombits(binary.LittleEndian.Uint32(buf[64+c*16+r*4:]))
		}
	}
	return nil
}
