package terrain

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func readF32(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUTerrainVertexSize(t *testing.T) {
	v := GPUTerrainVertex{}
	assert.Equal(t, 32, v.Size())
}

func TestGPUTerrainVertexMarshalOffsets(t *testing.T) {
	v := GPUTerrainVertex{
		Position: [3]float32{4, 5, 6},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.5, 0.25},
	}

	buf := v.Marshal()
	require.Len(t, buf, 32)

	assert.Equal(t, float32(4), readF32(t, buf, 0))
	assert.Equal(t, float32(6), readF32(t, buf, 8))
	assert.Equal(t, float32(1), readF32(t, buf, 16))
	assert.Equal(t, float32(0.5), readF32(t, buf, 24))
	assert.Equal(t, float32(0.25), readF32(t, buf, 28))
}

func TestGPUTerrainVertexRoundTrip(t *testing.T) {
	v := GPUTerrainVertex{
		Position: [3]float32{-3, 1.5, 8},
		Normal:   [3]float32{0.1, 0.9, -0.2},
		TexCoord: [2]float32{1, 0},
	}

	var decoded GPUTerrainVertex
	require.NoError(t, decoded.Unmarshal(v.Marshal()))
	assert.Equal(t, v, decoded)
}

func TestTerrainVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(32), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	expected := []wgpu.VertexAttribute{
		{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
		{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
		{ShaderLocation: 2, Offset: 24, Format: wgpu.VertexFormatFloat32x2},
	}
	assert.Equal(t, expected, layout.Attributes)
}

func TestBuildGridMeshDimensions(t *testing.T) {
	mesh, err := BuildGridMesh(4, 3, 1.0, nil)
	require.NoError(t, err)

	assert.Len(t, mesh.Vertices, 5*4)
	assert.Len(t, mesh.Indices, 4*3*6)

	for _, idx := range mesh.Indices {
		assert.Less(t, idx, uint32(len(mesh.Vertices)))
	}

	// First cell: two CCW triangles over vertex rows of width 5.
	assert.Equal(t, []uint32{0, 5, 1, 1, 5, 6}, mesh.Indices[:6])
}

func TestBuildGridMeshFlat(t *testing.T) {
	mesh, err := BuildGridMesh(2, 2, 2.0, nil)
	require.NoError(t, err)

	for i, v := range mesh.Vertices {
		assert.Equal(t, float32(0), v.Position[1], "vertex %d height", i)
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal, "vertex %d normal", i)
	}

	// UVs span [0,1] across the grid.
	first := mesh.Vertices[0]
	last := mesh.Vertices[len(mesh.Vertices)-1]
	assert.Equal(t, [2]float32{0, 0}, first.TexCoord)
	assert.Equal(t, [2]float32{1, 1}, last.TexCoord)
	assert.Equal(t, [3]float32{4, 0, 4}, last.Position)
}

func TestBuildGridMeshSlopeNormals(t *testing.T) {
	// Height rises 0.5 per world unit of x, so the surface normal is
	// normalize(-0.5, 1, 0) everywhere.
	slope := func(x, z float32) float32 { return 0.5 * x }
	mesh, err := BuildGridMesh(3, 3, 1.0, slope)
	require.NoError(t, err)

	invLen := 1.0 / float32(math.Sqrt(0.25+1))
	expected := [3]float32{-0.5 * invLen, invLen, 0}
	for i, v := range mesh.Vertices {
		for c := range 3 {
			assert.InDelta(t, expected[c], v.Normal[c], tolerance, "vertex %d component %d", i, c)
		}
	}
}

func TestBuildGridMeshUVScale(t *testing.T) {
	mesh, err := BuildGridMesh(2, 2, 1.0, nil, WithUVScale(8))
	require.NoError(t, err)

	last := mesh.Vertices[len(mesh.Vertices)-1]
	assert.Equal(t, [2]float32{8, 8}, last.TexCoord)
}

func TestBuildGridMeshInvalidArgs(t *testing.T) {
	_, err := BuildGridMesh(0, 3, 1.0, nil)
	assert.Error(t, err)

	_, err = BuildGridMesh(3, 0, 1.0, nil)
	assert.Error(t, err)

	_, err = BuildGridMesh(3, 3, 0, nil)
	assert.Error(t, err)

	_, err = BuildGridMesh(3, 3, -1, nil)
	assert.Error(t, err)
}

func TestBuildGridMeshParallelMatchesSerial(t *testing.T) {
	hills := func(x, z float32) float32 {
		return float32(math.Sin(float64(x)*0.3)) + float32(math.Cos(float64(z)*0.4))
	}

	// 80 rows clears the parallel threshold; worker count 1 forces the serial path.
	serial, err := BuildGridMesh(80, 80, 0.5, hills, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := BuildGridMesh(80, 80, 0.5, hills, WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, serial.Vertices, parallel.Vertices)
	assert.Equal(t, serial.Indices, parallel.Indices)
}

func TestGridMeshMarshalBuffers(t *testing.T) {
	mesh, err := BuildGridMesh(2, 2, 1.0, nil)
	require.NoError(t, err)

	vbuf := mesh.MarshalVertexBuffer()
	assert.Len(t, vbuf, len(mesh.Vertices)*32)
	// Second vertex position.x lands at stride 32.
	assert.Equal(t, mesh.Vertices[1].Position[0], readF32(t, vbuf, 32))

	ibuf := mesh.MarshalIndexBuffer()
	assert.Len(t, ibuf, len(mesh.Indices)*4)
}
