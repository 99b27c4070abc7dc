// package render_object defines the host-engine 3D objects owned by scene
// nodes: meshes and cameras. Behaviors mutate these in place; the objects
// themselves carry no scene-graph logic.
package render_object

// Type tags identifying the concrete kind of a RenderObject. Behaviors that
// search a node's children compare against these tags rather than
// type-asserting, matching how declarative scene descriptions name objects.
const (
	// TypeTagMesh identifies mesh render objects.
	TypeTagMesh = "Mesh"

	// TypeTagPerspectiveCamera identifies perspective camera render objects.
	TypeTagPerspectiveCamera = "PerspectiveCamera"
)

// RenderObject is a 3D object owned by a SceneNode as one of its children.
// A mesh object carries geometry and a layer membership; a camera object
// carries an enabled-layer bitset. Both are mutated in place by behaviors.
type RenderObject interface {
	// Name returns the object's identifier.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// TypeTag returns the object's type tag (TypeTagMesh, TypeTagPerspectiveCamera).
	//
	// Returns:
	//   - string: the type tag
	TypeTag() string

	// Layer returns the visibility layer this object belongs to.
	// An object belongs to exactly one layer at a time.
	//
	// Returns:
	//   - Layer: the object's layer membership
	Layer() Layer

	// SetLayer sets the visibility layer this object belongs to.
	//
	// Parameters:
	//   - l: the layer to assign
	SetLayer(l Layer)
}
