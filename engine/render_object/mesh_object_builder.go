package render_object

import (
	"github.com/rinsyan0518/stereo360/engine/geometry"
	"github.com/rinsyan0518/stereo360/engine/material"
)

// MeshObjectBuilderOption is a functional option for configuring a MeshObject during construction.
type MeshObjectBuilderOption func(*meshObject)

// WithMeshName sets the mesh object's identifier.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - MeshObjectBuilderOption: functional option to set the name
func WithMeshName(name string) MeshObjectBuilderOption {
	return func(m *meshObject) {
		m.name = name
	}
}

// WithLayer sets the visibility layer the mesh starts on.
//
// Parameters:
//   - l: the layer to assign
//
// Returns:
//   - MeshObjectBuilderOption: functional option to set the layer
func WithLayer(l Layer) MeshObjectBuilderOption {
	return func(m *meshObject) {
		m.layer = l
	}
}

// WithGeometry sets the mesh's face-indexed geometry.
//
// Parameters:
//   - g: the geometry to set
//
// Returns:
//   - MeshObjectBuilderOption: functional option to set the geometry
func WithGeometry(g *geometry.Geometry) MeshObjectBuilderOption {
	return func(m *meshObject) {
		m.geom = g
	}
}

// WithMaterial attaches a material to the mesh.
//
// Parameters:
//   - mat: the material to attach
//
// Returns:
//   - MeshObjectBuilderOption: functional option to set the material
func WithMaterial(mat material.Material) MeshObjectBuilderOption {
	return func(m *meshObject) {
		m.mat = mat
	}
}
