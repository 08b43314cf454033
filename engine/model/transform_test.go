package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auxon/FactoryForge/common"
)

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	u := tr.Uniforms()

	var identity [16]float32
	common.Identity(identity[:])
	assert.Equal(t, identity, u.Model)
	assert.Equal(t, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, u.NormalMatrix)
}

func TestTransformModelMatrix(t *testing.T) {
	tr := Transform{
		Position: [3]float32{1, 2, 3},
		Rotation: [3]float32{0.5, -0.2, 0.8},
		Scale:    [3]float32{2, 2, 2},
	}

	var expected [16]float32
	common.BuildModelMatrix(expected[:], 1, 2, 3, 0.5, -0.2, 0.8, 2, 2, 2)
	assert.Equal(t, expected, tr.ModelMatrix())
}

func TestTransformUniformsDerivedCurrent(t *testing.T) {
	tr := Transform{
		Position: [3]float32{-2, 0, 7},
		Rotation: [3]float32{0, 1.1, 0},
		Scale:    [3]float32{1, 3, 0.5},
	}
	u := tr.Uniforms()

	var expected [9]float32
	require.True(t, common.NormalMatrix3(expected[:], u.Model[:]))
	for i := range 9 {
		assert.InDelta(t, expected[i], u.NormalMatrix[i], tolerance, "element %d", i)
	}
}

func TestTransformUniformsSingularScale(t *testing.T) {
	tr := Transform{Scale: [3]float32{0, 1, 1}}
	u := tr.Uniforms()

	// A degenerate transform still produces an uploadable record: the normal
	// matrix falls back to identity rather than carrying stale garbage.
	assert.Equal(t, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, u.NormalMatrix)
}
