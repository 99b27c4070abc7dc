package render_object

import (
	"sync"

	"github.com/rinsyan0518/stereo360/engine/geometry"
	"github.com/rinsyan0518/stereo360/engine/material"
)

type meshObject struct {
	mu *sync.RWMutex

	name     string
	layer    Layer
	geom     *geometry.Geometry
	buffered *geometry.BufferedGeometry
	mat      material.Material
}

// MeshObject is a mesh render object: geometry plus layer membership and an
// optional material. The geometry is held in face-indexed form until a
// behavior (or the host uploader) replaces it with the buffered form.
type MeshObject interface {
	RenderObject

	// Geometry returns the face-indexed geometry, or nil if the mesh has been
	// converted to buffered-only form.
	//
	// Returns:
	//   - *geometry.Geometry: the geometry or nil
	Geometry() *geometry.Geometry

	// SetGeometry replaces the face-indexed geometry and clears any previously
	// set buffered form.
	//
	// Parameters:
	//   - g: the geometry to set
	SetGeometry(g *geometry.Geometry)

	// BufferedGeometry returns the GPU-ready buffered geometry, or nil if the
	// mesh has not been converted yet.
	//
	// Returns:
	//   - *geometry.BufferedGeometry: the buffered geometry or nil
	BufferedGeometry() *geometry.BufferedGeometry

	// SetBufferedGeometry replaces the mesh's renderable geometry with the
	// given buffered form. The face-indexed geometry is retained for
	// inspection but the buffered form is what a host uploader consumes.
	//
	// Parameters:
	//   - b: the buffered geometry to set
	SetBufferedGeometry(b *geometry.BufferedGeometry)

	// Material returns the material attached to this mesh, or nil.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// SetMaterial attaches a material to this mesh.
	//
	// Parameters:
	//   - m: the material to attach, or nil to detach
	SetMaterial(m material.Material)
}

var _ MeshObject = &meshObject{}

// NewMeshObject creates a new MeshObject configured with the given options.
// The object starts on LayerDefault with no geometry or material.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - MeshObject: the newly created mesh object
func NewMeshObject(options ...MeshObjectBuilderOption) MeshObject {
	m := &meshObject{
		mu:   &sync.RWMutex{},
		name: "mesh",
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *meshObject) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

func (m *meshObject) TypeTag() string {
	return TypeTagMesh
}

func (m *meshObject) Layer() Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.layer
}

func (m *meshObject) SetLayer(l Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layer = l
}

func (m *meshObject) Geometry() *geometry.Geometry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.geom
}

func (m *meshObject) SetGeometry(g *geometry.Geometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.geom = g
	m.buffered = nil
}

func (m *meshObject) BufferedGeometry() *geometry.BufferedGeometry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buffered
}

func (m *meshObject) SetBufferedGeometry(b *geometry.BufferedGeometry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffered = b
}

func (m *meshObject) Material() material.Material {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mat
}

func (m *meshObject) SetMaterial(mat material.Material) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mat = mat
}
