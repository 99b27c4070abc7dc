package render_object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rinsyan0518/stereo360/engine/geometry"
)

func newTestSphere() *geometry.Geometry {
	return geometry.NewSphere(1, 4, 4)
}

func TestLayerMask_EnableDisableHas(t *testing.T) {
	var m LayerMask

	m = m.Enable(LayerDefault)
	m = m.Enable(LayerLeftEye)

	assert.True(t, m.Has(LayerDefault))
	assert.True(t, m.Has(LayerLeftEye))
	assert.False(t, m.Has(LayerRightEye))

	m = m.Disable(LayerLeftEye)
	assert.False(t, m.Has(LayerLeftEye))
	assert.True(t, m.Has(LayerDefault))
}

func TestLayer_Bit(t *testing.T) {
	assert.Equal(t, LayerMask(1), LayerDefault.Bit())
	assert.Equal(t, LayerMask(2), LayerLeftEye.Bit())
	assert.Equal(t, LayerMask(4), LayerRightEye.Bit())
}

func TestPerspectiveCamera_DefaultLayers(t *testing.T) {
	cam := NewPerspectiveCamera()

	assert.Equal(t, LayerDefault.Bit(), cam.EnabledLayers())
	assert.True(t, cam.LayerEnabled(LayerDefault))
	assert.False(t, cam.LayerEnabled(LayerLeftEye))
}

func TestPerspectiveCamera_Sees(t *testing.T) {
	cam := NewPerspectiveCamera()
	mesh := NewMeshObject(WithLayer(LayerLeftEye))

	assert.False(t, cam.Sees(mesh))

	cam.EnableLayer(LayerLeftEye)
	assert.True(t, cam.Sees(mesh))

	cam.DisableLayer(LayerLeftEye)
	assert.False(t, cam.Sees(mesh))

	assert.False(t, cam.Sees(nil))
}

func TestPerspectiveCamera_OwnLayerIsFixed(t *testing.T) {
	cam := NewPerspectiveCamera()

	cam.SetLayer(LayerRightEye)
	assert.Equal(t, LayerDefault, cam.Layer())
}

func TestMeshObject_SetGeometryClearsBuffered(t *testing.T) {
	mesh := NewMeshObject()
	g := newTestSphere()
	mesh.SetGeometry(g)
	mesh.SetBufferedGeometry(g.Buffered())
	assert.NotNil(t, mesh.BufferedGeometry())

	mesh.SetGeometry(newTestSphere())
	assert.Nil(t, mesh.BufferedGeometry())
}
