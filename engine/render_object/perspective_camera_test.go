package render_object

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewPerspectiveCamera_Defaults(t *testing.T) {
	cam := NewPerspectiveCamera()

	assert.Equal(t, TypeTagPerspectiveCamera, cam.TypeTag())
	assert.InDelta(t, 60*math32.Pi/180, cam.Fov(), 1e-6)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)
	assert.InDelta(t, 0.1, cam.Near(), 1e-6)
	assert.InDelta(t, 1000, cam.Far(), 1e-6)

	x, y, z := cam.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
}

func TestPerspectiveCamera_ViewMatrixAtOrigin(t *testing.T) {
	cam := NewPerspectiveCamera()

	// Looking down -Z from the origin with +Y up is the identity view.
	view := cam.ViewMatrix()
	assert.InDelta(t, 1, view[0], 1e-5)
	assert.InDelta(t, 1, view[5], 1e-5)
	assert.InDelta(t, 1, view[10], 1e-5)
	assert.InDelta(t, 1, view[15], 1e-5)
	assert.InDelta(t, 0, view[12], 1e-5)
	assert.InDelta(t, 0, view[13], 1e-5)
	assert.InDelta(t, 0, view[14], 1e-5)
}

func TestPerspectiveCamera_SetAspectRecomputes(t *testing.T) {
	cam := NewPerspectiveCamera()
	before := cam.ProjectionMatrix()

	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()

	assert.InDelta(t, 2.0, cam.Aspect(), 1e-6)
	// The x scale term halves when the aspect doubles from a narrower ratio.
	assert.NotEqual(t, before[0], after[0])
	assert.InDelta(t, before[0]*(16.0/9.0)/2.0, after[0], 1e-5)
}

func TestPerspectiveCamera_SetPositionRecomputes(t *testing.T) {
	cam := NewPerspectiveCamera()

	cam.SetPosition(0, 0, 5)
	cam.SetTarget(0, 0, 0)

	view := cam.ViewMatrix()
	// Translation moves the world 5 units down -Z in view space.
	assert.InDelta(t, -5, view[14], 1e-5)
}
