package material

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// GPUMaterialUniformsSource is the canonical WGSL definition of the MaterialUniforms struct.
// Matches GPUMaterialUniforms layout exactly (48 bytes, std140 aligned).
//
//go:embed assets/material_uniforms.wgsl
var GPUMaterialUniformsSource string

// GPUMaterialUniforms is the GPU-aligned representation of the per-material
// surface parameter uniform buffer. Matches the WGSL MaterialUniforms struct
// layout exactly (see GPUMaterialUniformsSource). Field order is part of the
// binary contract and must not change. Size: 48 bytes (std140 / WGSL aligned).
//
// Shininess is expected > 0 and Metallic/Roughness in [0, 1], but no range is
// enforced here; a consuming shader may clamp or misbehave on out-of-range
// input.
type GPUMaterialUniforms struct {
	DiffuseColor  [3]float32 // offset  0: diffuse/albedo RGB
	_pad0         float32    // offset 12: vec3 alignment padding
	SpecularColor [3]float32 // offset 16: specular RGB
	Shininess     float32    // offset 28: specular exponent
	Metallic      float32    // offset 32: 0 = dielectric, 1 = metal
	Roughness     float32    // offset 36: 0 = smooth, 1 = rough
	_pad1         [2]float32 // offset 40: padding to 48-byte struct size
}

// Size returns the size of the GPUMaterialUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUMaterialUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialUniforms struct into a byte buffer
// suitable for GPU uniform upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUMaterialUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.DiffuseColor[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.SpecularColor[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad0
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.Shininess))
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(g.Metallic))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(g.Roughness))
	binary.LittleEndian.PutUint32(buf[40:], 0) // _pad1
	binary.LittleEndian.PutUint32(buf[44:], 0)
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
func (g *GPUMaterialUniforms) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("material uniforms buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	for i := range 3 {
		g.DiffuseColor[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		g.SpecularColor[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[16+i*4:]))
	}
	g.Shininess = math.Float32frombits(binary.LittleEndian.Uint32(buf[28:]))
	g.Metallic = math.Float32frombits(binary.LittleEndian.Uint32(buf[32:]))
	g.Roughness = math.Float32frombits(binary.LittleEndian.Uint32(buf[36:]))
	return nil
}
