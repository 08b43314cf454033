package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readF32(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUMaterialUniformsSize(t *testing.T) {
	u := GPUMaterialUniforms{}
	assert.Equal(t, 48, u.Size())
}

func TestGPUMaterialUniformsMarshalOffsets(t *testing.T) {
	u := GPUMaterialUniforms{
		DiffuseColor:  [3]float32{0.8, 0.6, 0.4},
		SpecularColor: [3]float32{1, 0.9, 0.8},
		Shininess:     64,
		Metallic:      0.9,
		Roughness:     0.15,
	}

	buf := u.Marshal()
	require.Len(t, buf, 48)

	assert.Equal(t, float32(0.8), readF32(t, buf, 0))
	assert.Equal(t, float32(0.4), readF32(t, buf, 8))
	assert.Equal(t, float32(1), readF32(t, buf, 16))
	assert.Equal(t, float32(0.8), readF32(t, buf, 24))
	assert.Equal(t, float32(64), readF32(t, buf, 28))
	assert.Equal(t, float32(0.9), readF32(t, buf, 32))
	assert.Equal(t, float32(0.15), readF32(t, buf, 36))

	for _, offset := range []int{12, 40, 44} {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[offset:]), "pad at offset %d", offset)
	}
}

func TestGPUMaterialUniformsRoundTrip(t *testing.T) {
	u := GPUMaterialUniforms{
		DiffuseColor:  [3]float32{0.1, 0.2, 0.3},
		SpecularColor: [3]float32{0.4, 0.5, 0.6},
		Shininess:     128,
		Metallic:      1,
		Roughness:     0,
	}

	var decoded GPUMaterialUniforms
	require.NoError(t, decoded.Unmarshal(u.Marshal()))
	assert.Equal(t, u, decoded)
}

func TestGPUMaterialUniformsUnmarshalShortBuffer(t *testing.T) {
	var u GPUMaterialUniforms
	assert.Error(t, u.Unmarshal(make([]byte, 47)))
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	assert.Equal(t, [3]float32{1, 1, 1}, m.DiffuseColor())
	assert.Equal(t, [3]float32{1, 1, 1}, m.SpecularColor())
	assert.Equal(t, float32(32), m.Shininess())
	assert.Equal(t, float32(0), m.Metallic())
	assert.Equal(t, float32(0.5), m.Roughness())
}

func TestNewMaterialWithOptions(t *testing.T) {
	m := NewMaterial(
		WithName("brushed_steel"),
		WithDiffuseColor(0.6, 0.6, 0.65),
		WithSpecularColor(0.95, 0.95, 1),
		WithShininess(96),
		WithMetallic(1),
		WithRoughness(0.3),
	)

	assert.Equal(t, "brushed_steel", m.Name())
	assert.Equal(t, [3]float32{0.6, 0.6, 0.65}, m.DiffuseColor())
	assert.Equal(t, [3]float32{0.95, 0.95, 1}, m.SpecularColor())
	assert.Equal(t, float32(96), m.Shininess())
	assert.Equal(t, float32(1), m.Metallic())
	assert.Equal(t, float32(0.3), m.Roughness())
}

func TestMaterialUniformsSnapshot(t *testing.T) {
	m := NewMaterial(
		WithDiffuseColor(0.2, 0.4, 0.6),
		WithShininess(16),
		WithRoughness(0.8),
	)

	u := m.Uniforms()
	assert.Equal(t, [3]float32{0.2, 0.4, 0.6}, u.DiffuseColor)
	assert.Equal(t, [3]float32{1, 1, 1}, u.SpecularColor)
	assert.Equal(t, float32(16), u.Shininess)
	assert.Equal(t, float32(0), u.Metallic)
	assert.Equal(t, float32(0.8), u.Roughness)
}

// Out-of-range parameters pass through untouched: this layer is a pure data
// carrier and never clamps.
func TestMaterialDoesNotClamp(t *testing.T) {
	m := NewMaterial(
		WithDiffuseColor(2, -1, 5),
		WithShininess(-3),
		WithMetallic(7),
		WithRoughness(-0.5),
	)

	u := m.Uniforms()
	assert.Equal(t, [3]float32{2, -1, 5}, u.DiffuseColor)
	assert.Equal(t, float32(-3), u.Shininess)
	assert.Equal(t, float32(7), u.Metallic)
	assert.Equal(t, float32(-0.5), u.Roughness)
}
