package light

import "math"

// NewDirectionalLight creates an enabled directional light. The direction is
// normalized before storing. Position, range, and spot angle do not apply to
// directional lights and remain zero.
//
// Parameters:
//   - direction: the direction the light points, as (x, y, z)
//   - color: the RGB color of the light
//   - intensity: the scalar intensity multiplier
//
// Returns:
//   - Light: the newly created directional light
func NewDirectionalLight(direction, color [3]float32, intensity float32) Light {
	return &lightImpl{
		lightType: LightTypeDirectional,
		direction: normalize3(direction[0], direction[1], direction[2]),
		color:     color,
		intensity: intensity,
		enabled:   true,
	}
}

// NewPointLight creates an enabled point light. Direction and spot angle do
// not apply to point lights and remain zero.
//
// Parameters:
//   - position: the world-space position of the light
//   - color: the RGB color of the light
//   - intensity: the scalar intensity multiplier
//   - lightRange: the attenuation cutoff distance in world units
//
// Returns:
//   - Light: the newly created point light
func NewPointLight(position, color [3]float32, intensity, lightRange float32) Light {
	return &lightImpl{
		lightType:  LightTypePoint,
		position:   position,
		color:      color,
		intensity:  intensity,
		lightRange: lightRange,
		enabled:    true,
	}
}

// NewSpotLight creates an enabled spot light. The direction is normalized
// before storing.
//
// Parameters:
//   - position: the world-space position of the light
//   - direction: the cone axis, as (x, y, z)
//   - color: the RGB color of the light
//   - intensity: the scalar intensity multiplier
//   - lightRange: the attenuation cutoff distance in world units
//   - spotAngle: the cone half-angle in radians
//
// Returns:
//   - Light: the newly created spot light
func NewSpotLight(position, direction, color [3]float32, intensity, lightRange, spotAngle float32) Light {
	return &lightImpl{
		lightType:  LightTypeSpot,
		position:   position,
		direction:  normalize3(direction[0], direction[1], direction[2]),
		color:      color,
		intensity:  intensity,
		lightRange: lightRange,
		spotAngle:  spotAngle,
		enabled:    true,
	}
}

// NewAmbientLight creates an enabled ambient light. Only color and intensity
// are meaningful for ambient lights; all positional fields remain zero.
//
// Parameters:
//   - color: the RGB color of the ambient term
//   - intensity: the scalar intensity multiplier
//
// Returns:
//   - Light: the newly created ambient light
func NewAmbientLight(color [3]float32, intensity float32) Light {
	return &lightImpl{
		lightType: LightTypeAmbient,
		color:     color,
		intensity: intensity,
		enabled:   true,
	}
}

// normalize3 returns the normalized (x, y, z) vector. A zero vector is
// returned unchanged.
func normalize3(x, y, z float32) [3]float32 {
	lenSq := float64(x*x + y*y + z*z)
	if lenSq == 0 {
		return [3]float32{}
	}
	invLen := 1.0 / float32(math.Sqrt(lenSq))
	return [3]float32{x * invLen, y * invLen, z * invLen}
}
