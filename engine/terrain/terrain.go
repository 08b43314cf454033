package terrain

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/auxon/FactoryForge/common"
)

// parallelRowThreshold is the minimum number of vertex rows before grid
// generation fans out to the worker pool. Below this the pool overhead
// outweighs the sampling work.
const parallelRowThreshold = 64

// HeightFunc samples the terrain height at a world-space (x, z) coordinate.
// It must be safe for concurrent calls: large grids sample rows in parallel.
type HeightFunc func(x, z float32) float32

// GridMesh holds generated terrain geometry ready for GPU upload: a vertex
// grid of (cols+1) × (rows+1) GPUTerrainVertex records and a triangle index
// list with two triangles per cell, counter-clockwise winding viewed from +Y.
type GridMesh struct {
	// Vertices is the vertex grid in row-major order (x varies fastest).
	Vertices []GPUTerrainVertex

	// Indices is the uint32 triangle index list, 6 entries per grid cell.
	Indices []uint32
}

// MarshalVertexBuffer marshals the mesh's vertices into a contiguous byte
// buffer suitable for GPU vertex buffer upload.
//
// Returns:
//   - []byte: the marshaled vertex buffer
func (m *GridMesh) MarshalVertexBuffer() []byte {
	return MarshalVertexBuffer(m.Vertices)
}

// MarshalIndexBuffer returns the raw bytes of the index list for GPU index
// buffer upload. The returned slice shares memory with Indices - do not modify.
//
// Returns:
//   - []byte: byte view of the index list
func (m *GridMesh) MarshalIndexBuffer() []byte {
	return common.SliceToBytes(m.Indices)
}

type gridConfig struct {
	uvScale float32
	workers int
}

// GridMeshOption is a function that configures terrain grid generation.
type GridMeshOption func(*gridConfig)

// WithUVScale is an option builder that sets how many times the terrain
// texture tiles across the full grid in each axis. Defaults to 1 (the UV
// rectangle [0,1]² stretched over the whole grid).
//
// Parameters:
//   - scale: the tiling factor
//
// Returns:
//   - GridMeshOption: a function that applies the uv scale option
func WithUVScale(scale float32) GridMeshOption {
	return func(c *gridConfig) {
		c.uvScale = scale
	}
}

// WithWorkers is an option builder that sets the worker count for parallel
// row sampling. Defaults to NumCPU-1 (minimum 1). A value of 1 forces serial
// generation regardless of grid size.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - GridMeshOption: a function that applies the worker count option
func WithWorkers(workers int) GridMeshOption {
	return func(c *gridConfig) {
		c.workers = workers
	}
}

// BuildGridMesh generates a regular terrain grid of cols × rows cells with
// cellSize spacing, sampling height from the provided HeightFunc. The grid
// origin is at (0, 0); x grows with columns and z with rows. Normals are
// derived analytically from central differences of the height field, so they
// stay consistent across cell boundaries. Rows are sampled on a worker pool
// when the grid is large enough to benefit.
//
// Parameters:
//   - cols, rows: the number of grid cells in each axis (must be >= 1)
//   - cellSize: the world-space spacing between adjacent vertices (must be > 0)
//   - height: the height field to sample; nil means flat terrain at height 0
//   - options: functional options to configure generation
//
// Returns:
//   - *GridMesh: the generated mesh
//   - error: an error if the grid dimensions or cell size are invalid
func BuildGridMesh(cols, rows int, cellSize float32, height HeightFunc, options ...GridMeshOption) (*GridMesh, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("terrain grid must have at least 1x1 cells, got %dx%d", cols, rows)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("terrain cell size must be positive, got %g", cellSize)
	}
	if height == nil {
		height = func(x, z float32) float32 { return 0 }
	}

	cfg := gridConfig{
		uvScale: 1,
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(&cfg)
	}

	vertexCols := cols + 1
	vertexRows := rows + 1
	mesh := &GridMesh{
		Vertices: make([]GPUTerrainVertex, vertexCols*vertexRows),
		Indices:  make([]uint32, 0, cols*rows*6),
	}

	fillRow := func(row int) {
		z := float32(row) * cellSize
		for col := 0; col < vertexCols; col++ {
			x := float32(col) * cellSize
			mesh.Vertices[row*vertexCols+col] = GPUTerrainVertex{
				Position: [3]float32{x, height(x, z), z},
				Normal:   sampleNormal(height, x, z, cellSize),
				TexCoord: [2]float32{
					float32(col) / float32(cols) * cfg.uvScale,
					float32(row) / float32(rows) * cfg.uvScale,
				},
			}
		}
	}

	if cfg.workers > 1 && vertexRows >= parallelRowThreshold {
		// Each row writes a disjoint slice of the vertex array, so rows can be
		// sampled concurrently with only a barrier at the end. The pool's own
		// Wait() blocks until workers idle-exit, so a WaitGroup provides the
		// per-build barrier instead.
		pool := worker.NewDynamicWorkerPool(cfg.workers, vertexRows, 1*time.Second)
		var wg sync.WaitGroup
		for row := 0; row < vertexRows; row++ {
			wg.Add(1)
			r := row // capture for closure
			pool.SubmitTask(worker.Task{
				ID: r,
				Do: func() (any, error) {
					defer wg.Done()
					fillRow(r)
					return nil, nil
				},
			})
		}
		wg.Wait()
	} else {
		for row := 0; row < vertexRows; row++ {
			fillRow(row)
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topLeft := uint32(row*vertexCols + col)
			topRight := topLeft + 1
			bottomLeft := uint32((row+1)*vertexCols + col)
			bottomRight := bottomLeft + 1
			mesh.Indices = append(mesh.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return mesh, nil
}

// sampleNormal derives the surface normal at (x, z) from central differences
// of the height field with step size equal to the cell size. For a flat field
// this yields exactly (0, 1, 0).
func sampleNormal(height HeightFunc, x, z, step float32) [3]float32 {
	dhdx := (height(x+step, z) - height(x-step, z)) / (2 * step)
	dhdz := (height(x, z+step) - height(x, z-step)) / (2 * step)

	nx := -dhdx
	ny := float32(1)
	nz := -dhdz
	invLen := 1.0 / float32(math.Sqrt(float64(nx*nx+ny*ny+nz*nz)))
	return [3]float32{nx * invLen, ny * invLen, nz * invLen}
}
