package model

import "github.com/auxon/FactoryForge/common"

// Transform is the host-side producer for per-object transform state. It holds
// the decomposed position/rotation/scale an application mutates, and builds a
// GPUModelUniforms snapshot with the model matrix and its derived normal
// matrix recomputed together, so the two can never be observed out of sync
// through this path.
type Transform struct {
	// Position is the object's translation in world space.
	Position [3]float32

	// Rotation holds Euler angles in radians around each axis, applied in
	// Y * X * Z (yaw-pitch-roll) order.
	Rotation [3]float32

	// Scale is the scale factor along each axis.
	Scale [3]float32
}

// NewTransform creates a Transform at the origin with no rotation and unit scale.
//
// Returns:
//   - Transform: the identity transform
func NewTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// ModelMatrix builds the object-to-world matrix for the current
// position/rotation/scale.
//
// Returns:
//   - [16]float32: the column-major model matrix
func (t *Transform) ModelMatrix() [16]float32 {
	var m [16]float32
	common.BuildModelMatrix(m[:],
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation[0], t.Rotation[1], t.Rotation[2],
		t.Scale[0], t.Scale[1], t.Scale[2],
	)
	return m
}

// Uniforms snapshots the transform into a GPUModelUniforms value with the
// normal matrix recomputed from the freshly built model matrix. If the model
// matrix is singular (a zero scale axis) the normal matrix is left as the 3x3
// identity, which keeps the record zero-surprise for upload even though the
// object is degenerate.
//
// Returns:
//   - GPUModelUniforms: the per-object uniform data
func (t *Transform) Uniforms() GPUModelUniforms {
	u := GPUModelUniforms{Model: t.ModelMatrix()}
	if !u.RecomputeNormalMatrix() {
		common.Identity3(u.NormalMatrix[:])
	}
	return u
}
