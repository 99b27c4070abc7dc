package node

import (
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

// SceneNodeBuilderOption is a functional option for configuring a SceneNode during construction.
type SceneNodeBuilderOption func(*sceneNode)

// WithName sets the node's identifier string.
//
// Parameters:
//   - name: the node name
//
// Returns:
//   - SceneNodeBuilderOption: functional option to set the name
func WithName(name string) SceneNodeBuilderOption {
	return func(n *sceneNode) {
		n.name = name
	}
}

// WithAttribute declares an attribute on the node.
//
// Parameters:
//   - name: the attribute name
//   - value: the attribute value
//
// Returns:
//   - SceneNodeBuilderOption: functional option to set the attribute
func WithAttribute(name, value string) SceneNodeBuilderOption {
	return func(n *sceneNode) {
		n.attrs[name] = value
	}
}

// WithObject appends a child render object to the node.
//
// Parameters:
//   - obj: the render object to add
//
// Returns:
//   - SceneNodeBuilderOption: functional option to add the object
func WithObject(obj render_object.RenderObject) SceneNodeBuilderOption {
	return func(n *sceneNode) {
		if obj != nil {
			n.objects = append(n.objects, obj)
		}
	}
}
