package light

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// MaxSceneLights is the fixed capacity of the GPU light list. The uniform
// buffer holds exactly this many Light slots; the count field says how many
// are live. The cap exists because uniform buffers cannot hold
// dynamically-sized arrays without indirection, so the shader-side array
// length must be known at pipeline creation.
const MaxSceneLights = 4

// ErrLightCapacity is returned when a scene's enabled light count exceeds
// MaxSceneLights. The producing path rejects rather than clamps: the caller
// owns light priority and this layer never silently drops a light.
var ErrLightCapacity = errors.New("scene light capacity exceeded")

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (80 bytes, std140 aligned).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of a single light source.
// Matches the WGSL Light struct layout exactly (see GPULightSource). Field
// order is part of the binary contract and must not change.
// Size: 80 bytes (std140 / WGSL aligned).
//
// LightType selects which of the remaining fields the shader reads; fields
// irrelevant to the type are still present and must be zero so no slot ever
// carries uninitialized bytes. SpotAngle is the cone half-angle in radians
// (shaders compare cos(SpotAngle) against the cone-axis dot product). Range is
// a hard attenuation cutoff: falloff is scaled to reach zero at Range.
type GPULight struct {
	LightType uint32     // offset  0: 0 = directional, 1 = point, 2 = spot, 3 = ambient
	_pad0     [3]uint32  // offset  4: vec3 alignment padding
	Position  [3]float32 // offset 16: world-space position (point/spot)
	_pad1     uint32     // offset 28: vec3 alignment padding
	Direction [3]float32 // offset 32: normalized direction (directional/spot)
	_pad2     uint32     // offset 44: vec3 alignment padding
	Color     [3]float32 // offset 48: RGB color
	Intensity float32    // offset 60: scalar multiplier
	Range     float32    // offset 64: attenuation cutoff distance (point/spot)
	SpotAngle float32    // offset 68: cone half-angle in radians (spot)
	_pad3     [2]uint32  // offset 72: padding to 80-byte array stride
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.marshalInto(buf)
	return buf
}

// marshalInto writes the light at offset 0 of buf, which must hold at least
// Size() bytes. Padding regions are written as zero.
func (g *GPULight) marshalInto(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], g.LightType)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[4+i*4:], 0) // _pad0
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Direction[i]))
		binary.LittleEndian.PutUint32(buf[48+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], 0) // _pad1
	binary.LittleEndian.PutUint32(buf[44:], 0) // _pad2
	binary.LittleEndian.PutUint32(buf[60:], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.Range))
	binary.LittleEndian.PutUint32(buf[68:], math.Float32bits(g.SpotAngle))
	binary.LittleEndian.PutUint32(buf[72:], 0) // _pad3
	binary.LittleEndian.PutUint32(buf[76:], 0)
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// receiver, reading each field at its documented offset.
//
// Parameters:
//   - buf: the source buffer (must hold at least Size() bytes)
//
// Returns:
//   - error: an error if the buffer is too short, nil otherwise
func (g *GPULight) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("light buffer too short: got %d bytes, need %d", len(buf), g.Size())
	}
	g.unmarshalFrom(buf)
	return nil
}

// unmarshalFrom reads the light from offset 0 of buf, which must hold at
// least Size() bytes.
func (g *GPULight) unmarshalFrom(buf []byte) {
	g.LightType = binary.LittleEndian.Uint32(buf[0:4])
	for i := range 3 {
		g.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[16+i*4:]))
		g.Direction[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[32+i*4:]))
		g.Color[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[48+i*4:]))
	}
	g.Intensity = math.Float32frombits(binary.LittleEndian.Uint32(buf[60:]))
	g.Range = math.Float32frombits(binary.LittleEndian.Uint32(buf[64:]))
	g.SpotAngle = math.Float32frombits(binary.LittleEndian.Uint32(buf[68:]))
}

// GPULightUniformsSource is the canonical WGSL definition of the LightUniforms struct.
// Matches GPULightUniforms layout exactly (336 bytes, std140 aligned).
//
//go:embed assets/light_uniforms.wgsl
var GPULightUniformsSource string

// GPULightUniforms is the GPU-aligned representation of the scene light list
// uniform buffer: an active-light count followed by a fixed array of
// MaxSceneLights Light slots. Slots at index >= LightCount are unused padding
// and are kept zero-valued. Matches the WGSL LightUniforms struct layout
// exactly (see GPULightUniformsSource).
// Size: 336 bytes (16-byte header + 4 × 80-byte lights).
type GPULightUniforms struct {
	LightCount uint32                   // offset  0: number of live entries in Lights (0..4)
	_pad0      [3]uint32                // offset  4: array alignment padding
	Lights     [MaxSceneLights]GPULight // offset 16: fixed light slots, stride 80
}

// Size returns the size of the GPULightUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (336)
func (u *GPULightUniforms) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the GPULightUniforms struct into a byte buffer suitable
// for GPU uniform upload. All MaxSceneLights slots are written, including the
// unused zero-valued ones, so the buffer is always full-size.
//
// Returns:
//   - []byte: 336-byte buffer ready for GPU upload
func (u *GPULightUniforms) Marshal() []byte {
	buf := make([]byte, u.Size())
	binary.LittleEndian.PutUint32(buf[0:4], u.LightCount)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[4+i*4:], 0) // _pad0
	}
	stride := (&GPULight{}).Size()
	for i := range u.Lights {
		u.Lights[i].marshalInto(buf[16+i*stride:])
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
func (u *GPULightUniforms) Unmarshal(buf []byte) error {
	if len(buf) < u.Size() {
		return fmt.Errorf("light uniforms buffer too short: got %d bytes, need %d", len(buf), u.Size())
	}
	u.LightCount = binary.LittleEndian.Uint32(buf[0:4])
	stride := (&GPULight{}).Size()
	for i := range u.Lights {
		u.Lights[i].unmarshalFrom(buf[16+i*stride:])
	}
	return nil
}

// ToGPULight converts a Light interface value into the GPU-aligned GPULight
// struct. Fields the light's kind does not use come back zero from the
// interface accessors, so every irrelevant field lands as zero in the record.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPULight(l Light) GPULight {
	return GPULight{
		LightType: uint32(l.Type()),
		Position:  l.Position(),
		Direction: l.Direction(),
		Color:     l.Color(),
		Intensity: l.Intensity(),
		Range:     l.Range(),
		SpotAngle: l.SpotAngle(),
	}
}

// BuildLightUniforms assembles the scene light list uniform from the enabled
// lights in the provided slice. Disabled lights are skipped and do not count
// against the capacity. An empty result (LightCount == 0) is valid and
// represents an unlit or ambient-only scene.
//
// Parameters:
//   - lights: the full slice of scene lights (only enabled lights are included)
//
// Returns:
//   - GPULightUniforms: the assembled uniform data with unused slots zeroed
//   - error: ErrLightCapacity (wrapped) if more than MaxSceneLights lights are enabled
func BuildLightUniforms(lights []Light) (GPULightUniforms, error) {
	var u GPULightUniforms
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		if u.LightCount >= MaxSceneLights {
			return GPULightUniforms{}, fmt.Errorf("%w: capacity %d", ErrLightCapacity, MaxSceneLights)
		}
		u.Lights[u.LightCount] = ToGPULight(l)
		u.LightCount++
	}
	return u, nil
}
