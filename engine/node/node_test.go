package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinsyan0518/stereo360/engine/render_object"
)

func TestSceneNode_Attributes(t *testing.T) {
	n := NewSceneNode(
		WithName("sphere"),
		WithAttribute("stereo.eye", "left"),
	)

	assert.Equal(t, "sphere", n.Name())
	assert.True(t, n.HasAttribute("stereo.eye"))
	v, ok := n.Attribute("stereo.eye")
	assert.True(t, ok)
	assert.Equal(t, "left", v)

	_, ok = n.Attribute("missing")
	assert.False(t, ok)

	n.SetAttribute("stereo.eye", "right")
	v, _ = n.Attribute("stereo.eye")
	assert.Equal(t, "right", v)
}

func TestSceneNode_AttrString(t *testing.T) {
	n := NewSceneNode(WithAttribute("mode", "half"))

	assert.Equal(t, "half", n.AttrString("mode", "full"))
	assert.Equal(t, "full", n.AttrString("absent", "full"))

	// Enumerated choices reject values outside the set.
	assert.Equal(t, "half", n.AttrString("mode", "full", "full", "half"))
	n.SetAttribute("mode", "quarter")
	assert.Equal(t, "full", n.AttrString("mode", "full", "full", "half"))
}

func TestSceneNode_AttrFloat(t *testing.T) {
	n := NewSceneNode(WithAttribute("radius", "2.5"))

	assert.InDelta(t, 2.5, n.AttrFloat("radius", 100), 1e-6)
	assert.InDelta(t, 100, n.AttrFloat("absent", 100), 1e-6)

	n.SetAttribute("radius", "not-a-number")
	assert.InDelta(t, 100, n.AttrFloat("radius", 100), 1e-6)
}

func TestSceneNode_AttrInt(t *testing.T) {
	n := NewSceneNode(WithAttribute("segments", "32"))

	assert.Equal(t, 32, n.AttrInt("segments", 64))
	assert.Equal(t, 64, n.AttrInt("absent", 64))

	n.SetAttribute("segments", "32.5")
	assert.Equal(t, 64, n.AttrInt("segments", 64))
}

func TestSceneNode_SnapshotIsIsolated(t *testing.T) {
	n := NewSceneNode(WithAttribute("eye", "left"))

	snap := n.Snapshot()
	n.SetAttribute("eye", "right")

	assert.Equal(t, "left", snap["eye"])
	v, _ := n.Attribute("eye")
	assert.Equal(t, "right", v)
}

func TestSceneNode_Objects(t *testing.T) {
	mesh := render_object.NewMeshObject(render_object.WithMeshName("m"))
	cam := render_object.NewPerspectiveCamera(render_object.WithCameraName("c"))
	n := NewSceneNode(WithObject(mesh), WithObject(cam))

	objs := n.Objects()
	require.Len(t, objs, 2)
	assert.Same(t, mesh, objs[0])
	assert.Same(t, cam, objs[1])
	assert.Same(t, mesh, n.FirstObject())

	found := n.FindObjectByTypeTag(render_object.TypeTagPerspectiveCamera)
	assert.Same(t, cam, found)
	assert.Nil(t, n.FindObjectByTypeTag("Light"))
}

func TestSceneNode_EmptyNode(t *testing.T) {
	n := NewSceneNode()

	assert.Nil(t, n.FirstObject())
	assert.Empty(t, n.Objects())
	assert.Empty(t, n.Snapshot())
}

func TestSceneNode_AddObjectIgnoresNil(t *testing.T) {
	n := NewSceneNode()
	n.AddObject(nil)

	assert.Empty(t, n.Objects())
}

func TestSceneNode_ID(t *testing.T) {
	n := NewSceneNode()

	assert.Zero(t, n.ID())
	n.SetID(7)
	assert.Equal(t, uint64(7), n.ID())
}
