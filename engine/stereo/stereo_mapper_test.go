package stereo

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinsyan0518/stereo360/engine/geometry"
	"github.com/rinsyan0518/stereo360/engine/node"
	"github.com/rinsyan0518/stereo360/engine/render_object"
)

const tol = 1e-4

// videoNode builds a node with a sphere mesh and the material marker plus any
// extra attributes, the shape the mapper expects to find at attach time.
func videoNode(attrs map[string]string) (node.SceneNode, render_object.MeshObject) {
	mesh := render_object.NewMeshObject(
		render_object.WithMeshName("video_sphere"),
		render_object.WithGeometry(geometry.NewSphere(100, 16, 16)),
	)
	opts := []node.SceneNodeBuilderOption{
		node.WithName("video"),
		node.WithAttribute(AttrMaterial, "video_material"),
		node.WithObject(mesh),
	}
	for k, v := range attrs {
		opts = append(opts, node.WithAttribute(k, v))
	}
	return node.NewSceneNode(opts...), mesh
}

// uvBounds returns the min and max UV over every face corner on the given axis.
func uvBounds(g *geometry.Geometry, axis int) (lo, hi float32) {
	lo, hi = 1, 0
	for _, fuv := range g.FaceUVs {
		for _, uv := range fuv {
			lo = min(lo, uv[axis])
			hi = max(hi, uv[axis])
		}
	}
	return lo, hi
}

func TestMapper_AttachDefaults(t *testing.T) {
	n, mesh := videoNode(nil)

	(&Mapper{}).Attach(n)

	g := mesh.Geometry()
	require.NotNil(t, g)
	assert.InDelta(t, DefaultRadius, g.Radius, tol)
	assert.Equal(t, DefaultSegments, g.WidthSegs)
	assert.Equal(t, DefaultSegments, g.HeightSegs)
	assert.InDelta(t, 2*math32.Pi, g.LonLen, tol)

	// Default eye is left with a horizontal split: left half of the frame.
	lo, hi := uvBounds(g, 0)
	assert.InDelta(t, 0, lo, tol)
	assert.InDelta(t, 0.5, hi, tol)

	assert.Equal(t, render_object.LayerLeftEye, mesh.Layer())
	require.NotNil(t, mesh.BufferedGeometry())
	assert.Equal(t, g.FaceCount()*3, mesh.BufferedGeometry().VertexCount())
}

func TestMapper_RightEyeHorizontal(t *testing.T) {
	n, mesh := videoNode(map[string]string{AttrEye: "right"})

	(&Mapper{}).Attach(n)

	lo, hi := uvBounds(mesh.Geometry(), 0)
	assert.InDelta(t, 0.5, lo, tol)
	assert.InDelta(t, 1, hi, tol)
	assert.Equal(t, render_object.LayerRightEye, mesh.Layer())
}

func TestMapper_LeftEyeVertical(t *testing.T) {
	n, mesh := videoNode(map[string]string{AttrSplit: "vertical"})

	(&Mapper{}).Attach(n)

	// Left eye content sits in the top half of an over/under frame.
	lo, hi := uvBounds(mesh.Geometry(), 1)
	assert.InDelta(t, 0.5, lo, tol)
	assert.InDelta(t, 1, hi, tol)
}

func TestMapper_RightEyeVertical(t *testing.T) {
	n, mesh := videoNode(map[string]string{AttrEye: "right", AttrSplit: "vertical"})

	(&Mapper{}).Attach(n)

	lo, hi := uvBounds(mesh.Geometry(), 1)
	assert.InDelta(t, 0, lo, tol)
	assert.InDelta(t, 0.5, hi, tol)
}

func TestMapper_BothEyesKeepsFullFrame(t *testing.T) {
	n, mesh := videoNode(map[string]string{AttrEye: "both"})

	(&Mapper{}).Attach(n)

	g := mesh.Geometry()
	reference := geometry.NewSphere(DefaultRadius, DefaultSegments, DefaultSegments)
	assert.Equal(t, reference.FaceUVs, g.FaceUVs)
	assert.Equal(t, render_object.LayerDefault, mesh.Layer())
}

func TestMapper_HalfModeBuildsDome(t *testing.T) {
	n, mesh := videoNode(map[string]string{AttrMode: "half"})

	(&Mapper{}).Attach(n)

	g := mesh.Geometry()
	assert.InDelta(t, math32.Pi/2, g.LonStart, tol)
	assert.InDelta(t, math32.Pi, g.LonLen, tol)
}

func TestMapper_GeometryAttributes(t *testing.T) {
	n, mesh := videoNode(map[string]string{
		AttrGeometryRadius:         "5",
		AttrGeometrySegmentsWidth:  "8",
		AttrGeometrySegmentsHeight: "6",
	})

	(&Mapper{}).Attach(n)

	g := mesh.Geometry()
	assert.InDelta(t, 5, g.Radius, tol)
	assert.Equal(t, 8, g.WidthSegs)
	assert.Equal(t, 6, g.HeightSegs)
}

func TestMapper_NoMaterialAttributeIsNoOp(t *testing.T) {
	original := geometry.NewSphere(100, 16, 16)
	mesh := render_object.NewMeshObject(render_object.WithGeometry(original))
	n := node.NewSceneNode(node.WithObject(mesh))

	(&Mapper{}).Attach(n)

	assert.Same(t, original, mesh.Geometry())
	assert.Equal(t, render_object.LayerDefault, mesh.Layer())
}

func TestMapper_NoMeshChildIsNoOp(t *testing.T) {
	n := node.NewSceneNode(node.WithAttribute(AttrMaterial, "video_material"))

	assert.NotPanics(t, func() {
		(&Mapper{}).Attach(n)
	})
}

func TestMapper_NonSphereGeometryIsNoOp(t *testing.T) {
	box := &geometry.Geometry{Name: "box", Kind: "Box"}
	mesh := render_object.NewMeshObject(render_object.WithGeometry(box))
	n := node.NewSceneNode(
		node.WithAttribute(AttrMaterial, "video_material"),
		node.WithObject(mesh),
	)

	(&Mapper{}).Attach(n)

	assert.Same(t, box, mesh.Geometry())
	assert.Equal(t, render_object.LayerDefault, mesh.Layer())
}

func TestMapper_ReconfigureOnlyReappliesLayer(t *testing.T) {
	n, mesh := videoNode(nil)
	m := &Mapper{}
	m.Attach(n)

	built := mesh.Geometry()
	old := n.Snapshot()
	n.SetAttribute(AttrEye, "right")
	m.Reconfigure(n, old)

	// Layer follows the new eye, but the geometry and its left-half UVs stay.
	assert.Equal(t, render_object.LayerRightEye, mesh.Layer())
	assert.Same(t, built, mesh.Geometry())
	lo, hi := uvBounds(mesh.Geometry(), 0)
	assert.InDelta(t, 0, lo, tol)
	assert.InDelta(t, 0.5, hi, tol)
}

func TestMapper_ReconfigureWithoutMeshIsNoOp(t *testing.T) {
	n := node.NewSceneNode(node.WithAttribute(AttrMaterial, "video_material"))

	assert.NotPanics(t, func() {
		(&Mapper{}).Reconfigure(n, node.AttributeSnapshot{})
	})
}

func TestMapper_InvalidAttributeValuesFallBack(t *testing.T) {
	n, mesh := videoNode(map[string]string{
		AttrEye:   "middle",
		AttrMode:  "quarter",
		AttrSplit: "diagonal",
	})

	(&Mapper{}).Attach(n)

	// Out-of-choice values resolve to left / full / horizontal.
	g := mesh.Geometry()
	assert.InDelta(t, 2*math32.Pi, g.LonLen, tol)
	lo, hi := uvBounds(g, 0)
	assert.InDelta(t, 0, lo, tol)
	assert.InDelta(t, 0.5, hi, tol)
	assert.Equal(t, render_object.LayerLeftEye, mesh.Layer())
}
