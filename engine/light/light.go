package light

// LightType identifies the kind of light source. The numeric values are part
// of the GPU binary contract: they are written verbatim into the light_type
// discriminant field read by the lit fragment shader.
type LightType uint32

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position.
	// Used for bare bulbs, lanterns, and machine glow. Attenuates with distance
	// up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position along
	// a direction. Used for flashlights and directed lamps. Attenuates with both
	// distance and angle from the cone axis.
	LightTypeSpot

	// LightTypeAmbient represents a uniform base illumination with no position,
	// direction, or falloff. Only color and intensity are meaningful.
	LightTypeAmbient
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType  LightType
	position   [3]float32
	direction  [3]float32
	color      [3]float32
	intensity  float32
	lightRange float32
	spotAngle  float32
	enabled    bool
}

// Light defines the interface for a light source in the scene.
//
// Lights are host-side values behind a per-kind constructor: application code
// builds a directional, point, spot, or ambient light through the constructor
// for that kind and can never populate a field the kind does not use. The flat
// discriminant-tagged record only appears at the upload boundary, where
// ToGPULight converts a Light into its GPU layout with all irrelevant fields
// zeroed.
//
// Type-specific accessors (Range, SpotAngle, Position, Direction) return zero
// values when not applicable to the light's kind.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional, point, spot, or ambient)
	Type() LightType

	// Position returns the world-space position of the light.
	// Zero for directional and ambient lights.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized direction of the light.
	// For directional lights this is the light direction; for spot lights the
	// cone axis. Zero for point and ambient lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Range returns the attenuation cutoff distance in world units. Shaders
	// scale falloff to reach zero at this distance; fragments beyond it receive
	// no contribution. Zero for directional and ambient lights.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// SpotAngle returns the spot cone half-angle in radians. Zero for
	// non-spot lights.
	//
	// Returns:
	//   - float32: the cone half-angle in radians
	SpotAngle() float32

	// Enabled returns whether the light contributes to the scene. Disabled
	// lights are skipped when building the GPU light list.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetEnabled toggles whether the light contributes to the scene.
	//
	// Parameters:
	//   - enabled: true to include the light in the GPU light list
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Range() float32 {
	return l.lightRange
}

func (l *lightImpl) SpotAngle() float32 {
	return l.spotAngle
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
