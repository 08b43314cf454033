package camera

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/auxon/FactoryForge/common"
)

// GPUCameraUniformsSource is the canonical WGSL definition of the CameraUniforms struct.
// Matches GPUCameraUniforms layout exactly (208 bytes, std140 aligned).
//
//go:embed assets/camera_uniforms.wgsl
var GPUCameraUniformsSource string

// GPUCameraUniforms is the GPU-aligned representation of the per-frame camera
// uniform buffer. Matches the WGSL CameraUniforms struct layout exactly (see
// GPUCameraUniformsSource). Field order is part of the binary contract and
// must not change. Size: 208 bytes (std140 / WGSL aligned).
//
// ViewProjection is a derived field: it caches Projection * View so shaders
// avoid the per-invocation multiply. Producers must call
// RecomputeViewProjection after changing View or Projection; this layer does
// not detect stale values.
type GPUCameraUniforms struct {
	View           [16]float32 // offset   0: world-to-view matrix (mat4x4<f32>)
	Projection     [16]float32 // offset  64: view-to-clip matrix (mat4x4<f32>)
	ViewProjection [16]float32 // offset 128: Projection * View, derived (mat4x4<f32>)
	CameraPosition [3]float32  // offset 192: world-space camera position (vec3<f32>)
	_pad           float32     // offset 204: padding to 208 bytes
}

// Size returns the size of the GPUCameraUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUCameraUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// RecomputeViewProjection recomputes the derived ViewProjection field from the
// current View and Projection fields. Must be called by the producer whenever
// either source matrix changes, before the struct is marshaled for upload.
func (g *GPUCameraUniforms) RecomputeViewProjection() {
	common.Mul4(g.ViewProjection[:], g.Projection[:], g.View[:])
}

// Marshal serializes the GPUCameraUniforms struct into a byte buffer suitable
// for GPU uniform upload.
//
// Returns:
//   - []byte: 208-byte buffer ready for GPU upload
func (g *GPUCameraUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.ViewProjection[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[204:], 0) // _pad
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
func (g *GPUCameraUniforms) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("camera uniforms buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	for i := range 16 {
		g.View[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		g.Projection[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		g.ViewProjection[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[128+i*4:]))
	}
	for i := range 3 {
		g.CameraPosition[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[192+i*4:]))
	}
	return nil
}
