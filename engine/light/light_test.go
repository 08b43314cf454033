package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auxon/FactoryForge/engine/model"
)

const tolerance = 1e-5

func TestConstructorsSetTypeAndEnable(t *testing.T) {
	tests := []struct {
		name     string
		light    Light
		expected LightType
	}{
		{"directional", NewDirectionalLight([3]float32{0, -1, 0}, [3]float32{1, 1, 1}, 1), LightTypeDirectional},
		{"point", NewPointLight([3]float32{1, 2, 3}, [3]float32{1, 1, 1}, 1, 10), LightTypePoint},
		{"spot", NewSpotLight([3]float32{0, 5, 0}, [3]float32{0, -1, 0}, [3]float32{1, 1, 1}, 1, 10, 0.5), LightTypeSpot},
		{"ambient", NewAmbientLight([3]float32{0.1, 0.1, 0.1}, 0.3), LightTypeAmbient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.light.Type())
			assert.True(t, tt.light.Enabled())
		})
	}
}

func TestDirectionIsNormalized(t *testing.T) {
	l := NewDirectionalLight([3]float32{0, -3, 4}, [3]float32{1, 1, 1}, 1)
	d := l.Direction()
	assert.InDelta(t, 0.0, d[0], tolerance)
	assert.InDelta(t, -0.6, d[1], tolerance)
	assert.InDelta(t, 0.8, d[2], tolerance)

	s := NewSpotLight([3]float32{0, 1, 0}, [3]float32{2, 0, 0}, [3]float32{1, 1, 1}, 1, 5, 0.4)
	assert.Equal(t, [3]float32{1, 0, 0}, s.Direction())
}

func TestSetEnabled(t *testing.T) {
	l := NewPointLight([3]float32{0, 1, 0}, [3]float32{1, 1, 1}, 1, 5)
	l.SetEnabled(false)
	assert.False(t, l.Enabled())
	l.SetEnabled(true)
	assert.True(t, l.Enabled())
}

// TestDirectionalLambertFromStoredValues exercises the cross-record scenario a
// lit shader evaluates every frame: a white directional light shining straight
// down onto an upward-facing vertex. The diffuse term must be reproducible
// deterministically from the marshaled bytes alone.
func TestDirectionalLambertFromStoredValues(t *testing.T) {
	vertex := model.GPUVertex{
		Position: [3]float32{0, 0, 0},
		Normal:   [3]float32{0, 1, 0},
	}
	light := ToGPULight(NewDirectionalLight([3]float32{0, -1, 0}, [3]float32{1, 1, 1}, 1.0))

	// Round-trip both records through their byte layouts first; the shader
	// only ever sees the stored bytes.
	var storedVertex model.GPUVertex
	require.NoError(t, storedVertex.Unmarshal(vertex.Marshal()))
	var storedLight GPULight
	require.NoError(t, storedLight.Unmarshal(light.Marshal()))

	n := storedVertex.Normal
	d := storedLight.Direction
	nDotL := n[0]*-d[0] + n[1]*-d[1] + n[2]*-d[2]
	require.InDelta(t, 1.0, nDotL, tolerance)

	for i := range 3 {
		diffuse := storedLight.Color[i] * storedLight.Intensity * nDotL
		assert.InDelta(t, 1.0, diffuse, tolerance, "channel %d", i)
	}
}
