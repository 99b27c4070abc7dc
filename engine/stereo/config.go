// package stereo implements the behaviors that turn a spherical video mesh
// into stereoscopic 360° playback: an eye mapper that restricts a mesh to one
// half of the source frame and one eye's visibility layer, and a default-eye
// selector that configures which eye a monoscopic camera shows.
package stereo

import (
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

// Eye selects which output eye a behavior targets.
type Eye string

const (
	// EyeLeft targets the left-eye layer and the primary half of the frame.
	EyeLeft Eye = "left"

	// EyeRight targets the right-eye layer and the secondary half of the frame.
	EyeRight Eye = "right"

	// EyeBoth disables eye restriction: the full frame on the default layer.
	EyeBoth Eye = "both"
)

// Mode selects the generated sphere coverage.
type Mode string

const (
	// ModeFull generates a full sphere for 360° content.
	ModeFull Mode = "full"

	// ModeHalf generates a half dome for 180° content.
	ModeHalf Mode = "half"
)

// Split selects the axis along which the source frame packs the two eyes.
type Split string

const (
	// SplitHorizontal packs the eyes side by side (left eye in the left half).
	SplitHorizontal Split = "horizontal"

	// SplitVertical packs the eyes top and bottom (left eye in the top half).
	SplitVertical Split = "vertical"
)

// Node attribute names the stereo behaviors read their configuration from.
const (
	// AttrMaterial marks a node as carrying a material; the mapper is a no-op without it.
	AttrMaterial = "material"

	// AttrGeometryRadius is the sphere radius attribute on the node's geometry.
	AttrGeometryRadius = "geometry.radius"

	// AttrGeometrySegmentsWidth is the longitude segment count attribute.
	AttrGeometrySegmentsWidth = "geometry.segmentsWidth"

	// AttrGeometrySegmentsHeight is the latitude segment count attribute.
	AttrGeometrySegmentsHeight = "geometry.segmentsHeight"

	// AttrEye is the mapper's eye selection attribute.
	AttrEye = "stereo.eye"

	// AttrMode is the mapper's sphere coverage attribute.
	AttrMode = "stereo.mode"

	// AttrSplit is the mapper's frame packing attribute.
	AttrSplit = "stereo.split"

	// AttrCamEye is the default-eye selector's eye attribute.
	AttrCamEye = "stereocam.eye"
)

// Geometry attribute defaults applied when the node leaves them unspecified.
const (
	// DefaultRadius is the sphere radius used when geometry.radius is absent.
	DefaultRadius float32 = 100

	// DefaultSegments is the segment count used when a segment attribute is absent.
	DefaultSegments = 64
)

// Config is the mapper's configuration as read from node attributes.
type Config struct {
	// Eye selects which eye's layer and frame half the mesh is restricted to.
	Eye Eye

	// Mode selects full-sphere or half-dome geometry.
	Mode Mode

	// Split selects the frame packing axis.
	Split Split
}

// EyeSelectorConfig is the default-eye selector's configuration.
type EyeSelectorConfig struct {
	// Eye selects which eye layer(s) to enable on the discovered camera.
	Eye Eye
}

// ReadConfig reads the mapper configuration from the node's attributes,
// applying defaults (left / full / horizontal) and rejecting values outside
// the enumerated choices.
//
// Parameters:
//   - n: the node to read from
//
// Returns:
//   - Config: the resolved configuration
func ReadConfig(n node.SceneNode) Config {
	return Config{
		Eye:   Eye(n.AttrString(AttrEye, string(EyeLeft), string(EyeLeft), string(EyeRight), string(EyeBoth))),
		Mode:  Mode(n.AttrString(AttrMode, string(ModeFull), string(ModeFull), string(ModeHalf))),
		Split: Split(n.AttrString(AttrSplit, string(SplitHorizontal), string(SplitHorizontal), string(SplitVertical))),
	}
}

// ReadEyeSelectorConfig reads the default-eye selector configuration from the
// node's attributes, defaulting to the left eye.
//
// Parameters:
//   - n: the node to read from
//
// Returns:
//   - EyeSelectorConfig: the resolved configuration
func ReadEyeSelectorConfig(n node.SceneNode) EyeSelectorConfig {
	return EyeSelectorConfig{
		Eye: Eye(n.AttrString(AttrCamEye, string(EyeLeft), string(EyeLeft), string(EyeRight), string(EyeBoth))),
	}
}

// Layer maps an eye to its visibility layer: both on the default layer,
// left on layer 1, right on layer 2.
//
// Returns:
//   - render_object.Layer: the layer for this eye
func (e Eye) Layer() render_object.Layer {
	switch e {
	case EyeLeft:
		return render_object.LayerLeftEye
	case EyeRight:
		return render_object.LayerRightEye
	default:
		return render_object.LayerDefault
	}
}
