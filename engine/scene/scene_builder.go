package scene

import (
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithActive sets whether the scene is active for ticking.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.active = active
	}
}

// WithCamera sets the scene's camera for visibility queries.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam render_object.PerspectiveCamera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = cam
	}
}

// WithNodes registers initial nodes in the scene, assigning IDs in order.
//
// Parameters:
//   - nodes: the nodes to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithNodes(nodes ...node.SceneNode) SceneBuilderOption {
	return func(s *sceneImpl) {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			id := s.nextID
			s.nextID++
			n.SetID(id)
			s.registry[id] = n
			s.order = append(s.order, id)
		}
	}
}
