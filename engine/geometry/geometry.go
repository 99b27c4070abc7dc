// package geometry provides the face-indexed mesh representation mutated by
// scene behaviors, along with shape constructors and the conversion to the
// GPU-ready buffered form a host renderer uploads.
package geometry

// Kind identifies the shape family a Geometry was built from.
// Behaviors use it as a compatibility guard: a behavior that only understands
// sphere-like shapes checks the kind before touching the geometry.
type Kind string

const (
	// KindSphere is a full or partial UV sphere in face-indexed form.
	KindSphere Kind = "Sphere"

	// KindBufferedSphere is a sphere that has already been converted to its
	// buffered (GPU-ready) form and re-wrapped as a Geometry.
	KindBufferedSphere Kind = "BufferedSphere"
)

// Face is a single triangle referencing three vertex indices.
type Face struct {
	// A, B, C are indices into the geometry's vertex arrays, in counter-clockwise winding order.
	A, B, C uint32
}

// Geometry is a mesh in face-indexed form: shared vertex positions and normals,
// triangle faces, and texture coordinates stored per face corner. Storing UVs
// per corner rather than per vertex lets a behavior remap the texture mapping
// of individual faces without splitting shared vertices first; vertex splitting
// happens once, during the Buffered conversion.
type Geometry struct {
	// Name is the geometry identifier.
	Name string

	// Kind is the shape family tag used for behavior compatibility checks.
	Kind Kind

	// Positions are the shared vertex positions in model space.
	Positions [][3]float32

	// Normals are the shared per-vertex normals, parallel to Positions.
	Normals [][3]float32

	// Faces are the triangle faces referencing Positions/Normals by index.
	Faces []Face

	// FaceUVs holds one UV coordinate per face corner, parallel to Faces.
	// FaceUVs[i][0] belongs to Faces[i].A, [1] to .B, [2] to .C.
	FaceUVs [][3][2]float32

	// Radius is the generating radius for sphere-like kinds (0 for others).
	Radius float32

	// WidthSegs and HeightSegs are the segment counts the shape was generated with.
	WidthSegs, HeightSegs int

	// LonStart and LonLen describe the longitude sector in radians
	// (LonLen = 2π for a full sphere).
	LonStart, LonLen float32

	// LatStart and LatLen describe the latitude sector in radians
	// (LatStart 0 = top pole, LatLen = π for a full sphere).
	LatStart, LatLen float32
}

// VertexCount returns the number of shared vertices.
//
// Returns:
//   - int: the vertex count
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// FaceCount returns the number of triangle faces.
//
// Returns:
//   - int: the face count
func (g *Geometry) FaceCount() int {
	return len(g.Faces)
}
