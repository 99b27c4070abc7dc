package stereo

import (
	"github.com/rinsyan0518/stereo360/engine/behavior"
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

func init() {
	behavior.Register("stereocam", func() behavior.Behavior { return &DefaultEyeSelector{} })
}

// DefaultEyeSelector configures which eye a monoscopic camera shows. The
// camera's underlying render object may not exist yet when the behavior
// attaches, so the search runs on the tick loop: on each tick until the first
// configuration pass, the node's immediate children are scanned for a
// PerspectiveCamera and the layer(s) for the configured eye are enabled on it.
//
// The configured flag flips on the first tick whether or not a camera child
// was found; a camera that only appears on a later tick is never configured.
// Eye attribute changes after the flag is set have no effect.
type DefaultEyeSelector struct {
	configured bool
}

var _ behavior.Behavior = &DefaultEyeSelector{}

// Attach resets the per-attachment configured flag. The camera search is
// deferred to Tick because the camera object may not exist yet.
//
// Parameters:
//   - n: the camera node
func (s *DefaultEyeSelector) Attach(node.SceneNode) {
	s.configured = false
}

// Reconfigure is a no-op: the eye attribute is read once, on the first tick.
func (s *DefaultEyeSelector) Reconfigure(node.SceneNode, node.AttributeSnapshot) {}

// Tick performs the one-time camera discovery and eye-layer enablement.
//
// Parameters:
//   - n: the camera node
//   - deltaTime: elapsed time since the previous tick (unused)
func (s *DefaultEyeSelector) Tick(n node.SceneNode, _ float32) {
	if s.configured {
		return
	}

	cfg := ReadEyeSelectorConfig(n)
	if cam, ok := n.FindObjectByTypeTag(render_object.TypeTagPerspectiveCamera).(render_object.PerspectiveCamera); ok {
		if cfg.Eye == EyeBoth {
			cam.EnableLayer(render_object.LayerLeftEye)
			cam.EnableLayer(render_object.LayerRightEye)
		} else {
			cam.EnableLayer(cfg.Eye.Layer())
		}
	}

	s.configured = true
}
