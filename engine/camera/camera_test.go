package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireDerivedCurrent asserts the camera's combined matrix equals
// projection * view for its current state.
func requireDerivedCurrent(t *testing.T, c Camera) {
	t.Helper()
	expected := mgl32.Mat4(c.ProjectionMatrix()).Mul4(mgl32.Mat4(c.ViewMatrix()))
	actual := c.ViewProjectionMatrix()
	for i := range 16 {
		require.InDelta(t, expected[i], actual[i], tolerance, "element %d", i)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.InDelta(t, 45.0*math.Pi/180.0, c.Fov(), tolerance)
	assert.InDelta(t, 1.0, c.Aspect(), tolerance)
	assert.InDelta(t, 0.1, c.Near(), tolerance)
	assert.InDelta(t, 100.0, c.Far(), tolerance)

	x, y, z := c.Position()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{x, y, z})
	x, y, z = c.Up()
	assert.Equal(t, [3]float32{0, 1, 0}, [3]float32{x, y, z})

	requireDerivedCurrent(t, c)
}

func TestNewCameraWithOptions(t *testing.T) {
	c := NewCamera(
		WithPosition(1, 2, 3),
		WithTarget(0, 0, -10),
		WithUp(0, 1, 0),
		WithFov(1.2),
		WithAspect(16.0/9.0),
		WithNear(0.5),
		WithFar(500),
	)

	x, y, z := c.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
	x, y, z = c.Target()
	assert.Equal(t, [3]float32{0, 0, -10}, [3]float32{x, y, z})
	assert.InDelta(t, 1.2, c.Fov(), tolerance)
	assert.InDelta(t, 16.0/9.0, c.Aspect(), tolerance)
	assert.InDelta(t, 0.5, c.Near(), tolerance)
	assert.InDelta(t, 500.0, c.Far(), tolerance)

	requireDerivedCurrent(t, c)
}

func TestCameraSettersKeepDerivedCurrent(t *testing.T) {
	c := NewCamera()

	c.SetPosition(4, 5, 6)
	requireDerivedCurrent(t, c)

	c.SetTarget(-1, 0, 2)
	requireDerivedCurrent(t, c)

	c.SetUp(0, 0, 1)
	requireDerivedCurrent(t, c)

	c.SetFov(0.9)
	requireDerivedCurrent(t, c)

	c.SetAspect(2.0)
	requireDerivedCurrent(t, c)

	c.SetNear(1.0)
	requireDerivedCurrent(t, c)

	c.SetFar(250)
	requireDerivedCurrent(t, c)
}

func TestCameraUniformsSnapshot(t *testing.T) {
	c := NewCamera(WithPosition(3, 1, -2), WithTarget(0, 0, 0))

	u := c.Uniforms()
	assert.Equal(t, c.ViewMatrix(), u.View)
	assert.Equal(t, c.ProjectionMatrix(), u.Projection)
	assert.Equal(t, c.ViewProjectionMatrix(), u.ViewProjection)
	assert.Equal(t, [3]float32{3, 1, -2}, u.CameraPosition)

	// The snapshot's derived field must already be current without the caller
	// invoking RecomputeViewProjection.
	expected := mgl32.Mat4(u.Projection).Mul4(mgl32.Mat4(u.View))
	for i := range 16 {
		assert.InDelta(t, expected[i], u.ViewProjection[i], tolerance, "element %d", i)
	}
}
