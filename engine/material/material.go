package material

// material is the implementation of the Material interface.
type material struct {
	name          string
	diffuseColor  [3]float32
	specularColor [3]float32
	shininess     float32
	metallic      float32
	roughness     float32
}

// Material defines the interface for a surface material, encapsulating the
// physically-inspired shading parameters a draw call binds alongside its
// geometry. Properties are set at construction and read-only through this
// interface; Uniforms snapshots them into the GPU layout for upload.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseColor retrieves the diffuse/albedo RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the diffuse color
	DiffuseColor() [3]float32

	// SpecularColor retrieves the specular RGB color of the material.
	//
	// Returns:
	//   - [3]float32: the specular color
	SpecularColor() [3]float32

	// Shininess retrieves the specular exponent of the material.
	//
	// Returns:
	//   - float32: the shininess value
	Shininess() float32

	// Metallic retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Uniforms snapshots the material parameters into a GPUMaterialUniforms
	// value ready for upload.
	//
	// Returns:
	//   - GPUMaterialUniforms: the per-material uniform data
	Uniforms() GPUMaterialUniforms
}

var _ Material = &material{}

// NewMaterial creates a new Material with neutral defaults: white diffuse and
// specular, shininess 32, dielectric (metallic 0), roughness 0.5.
//
// Parameters:
//   - options: functional options to configure the material
//
// Returns:
//   - Material: the newly created material
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		diffuseColor:  [3]float32{1, 1, 1},
		specularColor: [3]float32{1, 1, 1},
		shininess:     32,
		metallic:      0,
		roughness:     0.5,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseColor() [3]float32 {
	return m.diffuseColor
}

func (m *material) SpecularColor() [3]float32 {
	return m.specularColor
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) Uniforms() GPUMaterialUniforms {
	return GPUMaterialUniforms{
		DiffuseColor:  m.diffuseColor,
		SpecularColor: m.specularColor,
		Shininess:     m.shininess,
		Metallic:      m.metallic,
		Roughness:     m.roughness,
	}
}
