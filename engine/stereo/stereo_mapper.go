package stereo

import (
	"github.com/chewxy/math32"

	"github.com/rinsyan0518/stereo360/engine/behavior"
	"github.com/rinsyan0518/stereo360/engine/geometry"
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

func init() {
	behavior.Register("stereo", func() behavior.Behavior { return &Mapper{} })
}

// Mapper restricts a spherical video mesh to one eye: it rebuilds the sphere
// from the node's geometry attributes, remaps the texture coordinates to the
// configured half of the source frame, replaces the mesh geometry with the
// buffered form, and moves the mesh onto the eye's visibility layer.
//
// Geometry and UV work happen once, at attach time. Reconfiguration only
// re-applies the layer assignment: a change of mode or split after attach has
// no effect on the already-built geometry.
//
// All precondition failures (no material attribute, no mesh child, geometry
// not sphere-like) are silent no-ops.
type Mapper struct{}

var _ behavior.Behavior = &Mapper{}

// Attach rebuilds the node's sphere mesh for the configured eye.
// See the Mapper type comment for the full contract.
//
// Parameters:
//   - n: the node carrying the video sphere
func (m *Mapper) Attach(n node.SceneNode) {
	if !n.HasAttribute(AttrMaterial) {
		return
	}
	mesh, ok := n.FirstObject().(render_object.MeshObject)
	if !ok {
		return
	}
	geom := mesh.Geometry()
	if geom == nil || !sphereLike(geom.Kind) {
		return
	}

	cfg := ReadConfig(n)
	radius := n.AttrFloat(AttrGeometryRadius, DefaultRadius)
	widthSegs := n.AttrInt(AttrGeometrySegmentsWidth, DefaultSegments)
	heightSegs := n.AttrInt(AttrGeometrySegmentsHeight, DefaultSegments)

	var sphere *geometry.Geometry
	if cfg.Mode == ModeHalf {
		// 180° content: a half dome covering the longitude sector [π/2, 3π/2].
		sphere = geometry.NewSphereSector(radius, widthSegs, heightSegs,
			math32.Pi/2, math32.Pi, 0, math32.Pi)
	} else {
		sphere = geometry.NewSphere(radius, widthSegs, heightSegs)
	}

	remapEyeUVs(sphere, cfg.Eye, cfg.Split)

	mesh.SetGeometry(sphere)
	mesh.SetBufferedGeometry(sphere.Buffered())
	mesh.SetLayer(cfg.Eye.Layer())
}

// Reconfigure re-applies the layer assignment from the current eye attribute.
// Geometry and UVs are never rebuilt here.
//
// Parameters:
//   - n: the attached node
//   - old: the attribute values before the change (unused; only the current eye matters)
func (m *Mapper) Reconfigure(n node.SceneNode, _ node.AttributeSnapshot) {
	mesh, ok := n.FirstObject().(render_object.MeshObject)
	if !ok {
		return
	}
	cfg := ReadConfig(n)
	mesh.SetLayer(cfg.Eye.Layer())
}

// Tick is a no-op; the mapper does all its work at attach and reconfigure time.
func (m *Mapper) Tick(node.SceneNode, float32) {}

// sphereLike reports whether the geometry kind is one the mapper knows how to rebuild.
func sphereLike(k geometry.Kind) bool {
	return k == geometry.KindSphere || k == geometry.KindBufferedSphere
}

// remapEyeUVs rescales every face corner's UV on the split axis so the mesh
// samples only the configured eye's half of the source frame:
//
//	horizontal + left  -> u in [0, 0.5]   (left half)
//	horizontal + right -> u in [0.5, 1]   (right half)
//	vertical   + left  -> v in [0.5, 1]   (top half)
//	vertical   + right -> v in [0, 0.5]   (bottom half)
//
// EyeBoth leaves the UVs untouched.
func remapEyeUVs(g *geometry.Geometry, eye Eye, split Split) {
	if eye == EyeBoth {
		return
	}
	axis := 0
	if split == SplitVertical {
		axis = 1
	}
	offset := float32(0)
	if (eye == EyeRight && split == SplitHorizontal) || (eye == EyeLeft && split == SplitVertical) {
		offset = 0.5
	}
	for i := range g.FaceUVs {
		for c := range g.FaceUVs[i] {
			g.FaceUVs[i][c][axis] = g.FaceUVs[i][c][axis]*0.5 + offset
		}
	}
}
