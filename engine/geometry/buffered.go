package geometry

import (
	"github.com/rinsyan0518/stereo360/common"
)

// BufferedGeometry is the GPU-ready form of a Geometry: a flat interleaved
// vertex stream with one entry per face corner. Corners are expanded rather
// than shared because per-face UV remapping can assign different texture
// coordinates to a vertex on adjacent faces.
type BufferedGeometry struct {
	// Name is carried over from the source Geometry.
	Name string

	// Kind is the shape family of the source Geometry.
	Kind Kind

	// Vertices is the expanded vertex stream, three entries per face.
	Vertices []GPUVertex
}

// VertexCount returns the number of vertices in the expanded stream.
//
// Returns:
//   - int: the vertex count
func (b *BufferedGeometry) VertexCount() int {
	return len(b.Vertices)
}

// VertexData returns the interleaved vertex stream as a byte slice view for
// GPU buffer uploads. The slice shares memory with Vertices.
//
// Returns:
//   - []byte: byte view of the vertex stream, or nil if empty
func (b *BufferedGeometry) VertexData() []byte {
	return common.SliceToBytes(b.Vertices)
}

// Buffered converts the face-indexed geometry to its buffered form, expanding
// shared vertices into one GPUVertex per face corner and applying the per-face
// UVs. The source geometry is not modified.
//
// Returns:
//   - *BufferedGeometry: the GPU-ready expanded form
func (g *Geometry) Buffered() *BufferedGeometry {
	verts := make([]GPUVertex, 0, len(g.Faces)*3)
	for i, f := range g.Faces {
		corners := [3]uint32{f.A, f.B, f.C}
		for c, vi := range corners {
			verts = append(verts, GPUVertex{
				Position: g.Positions[vi],
				Normal:   g.Normals[vi],
				TexCoord: g.FaceUVs[i][c],
			})
		}
	}
	return &BufferedGeometry{
		Name:     g.Name,
		Kind:     g.Kind,
		Vertices: verts,
	}
}
