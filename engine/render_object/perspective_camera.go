package render_object

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/rinsyan0518/stereo360/common"
)

type perspectiveCamera struct {
	mu *sync.Mutex

	name string

	up       [3]float32
	position [3]float32
	target   [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	enabledLayers LayerMask

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// PerspectiveCamera is a camera render object. Besides the usual perspective
// settings and view/projection matrices it carries the enabled-layer bitset
// that determines which render objects it can see. A freshly built camera has
// only LayerDefault enabled; the stereo behaviors enable eye layers on it.
type PerspectiveCamera interface {
	RenderObject

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Position returns the camera position in world space.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// EnabledLayers returns the camera's enabled-layer bitset.
	//
	// Returns:
	//   - LayerMask: the enabled layers
	EnabledLayers() LayerMask

	// SetEnabledLayers replaces the camera's enabled-layer bitset.
	//
	// Parameters:
	//   - m: the mask to set
	SetEnabledLayers(m LayerMask)

	// EnableLayer sets the given layer's bit on the camera.
	//
	// Parameters:
	//   - l: the layer to enable
	EnableLayer(l Layer)

	// DisableLayer clears the given layer's bit on the camera.
	//
	// Parameters:
	//   - l: the layer to disable
	DisableLayer(l Layer)

	// LayerEnabled reports whether the given layer is enabled on the camera.
	//
	// Parameters:
	//   - l: the layer to test
	//
	// Returns:
	//   - bool: true if enabled
	LayerEnabled(l Layer) bool

	// Sees reports whether this camera would render the given object:
	// the object's layer membership must be enabled on the camera.
	//
	// Parameters:
	//   - obj: the render object to test
	//
	// Returns:
	//   - bool: true if the object is visible to this camera
	Sees(obj RenderObject) bool

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetPosition sets the camera position and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at target and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetUp sets the camera's up vector and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)
}

var _ PerspectiveCamera = &perspectiveCamera{}

// NewPerspectiveCamera creates a new PerspectiveCamera with the given options.
// Defaults: 60° vertical FOV, 16:9 aspect, near 0.1, far 1000, positioned at
// the origin looking down -Z, with only LayerDefault enabled.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveCamera(options ...PerspectiveCameraBuilderOption) PerspectiveCamera {
	c := &perspectiveCamera{
		mu:            &sync.Mutex{},
		name:          "camera",
		up:            [3]float32{0, 1, 0},
		target:        [3]float32{0, 0, -1},
		fov:           60 * math32.Pi / 180,
		aspect:        16.0 / 9.0,
		near:          0.1,
		far:           1000,
		enabledLayers: LayerDefault.Bit(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

// updateMatrices recomputes the view, projection, and combined matrices.
// Callers must hold the mutex or have exclusive access during construction.
func (c *perspectiveCamera) updateMatrices() {
	common.LookAt(c.viewMatrix[:],
		c.position[0], c.position[1], c.position[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2])
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

func (c *perspectiveCamera) Name() string {
	return c.name
}

func (c *perspectiveCamera) TypeTag() string {
	return TypeTagPerspectiveCamera
}

// Layer returns the camera object's own layer membership, which is always
// LayerDefault: cameras are not subject to eye restriction themselves.
func (c *perspectiveCamera) Layer() Layer {
	return LayerDefault
}

// SetLayer is a no-op for cameras; a camera's visibility is governed by its
// enabled-layer bitset, not a membership layer.
func (c *perspectiveCamera) SetLayer(Layer) {}

func (c *perspectiveCamera) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *perspectiveCamera) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *perspectiveCamera) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *perspectiveCamera) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *perspectiveCamera) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *perspectiveCamera) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *perspectiveCamera) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *perspectiveCamera) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *perspectiveCamera) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *perspectiveCamera) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *perspectiveCamera) EnabledLayers() LayerMask {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabledLayers
}

func (c *perspectiveCamera) SetEnabledLayers(m LayerMask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabledLayers = m
}

func (c *perspectiveCamera) EnableLayer(l Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabledLayers = c.enabledLayers.Enable(l)
}

func (c *perspectiveCamera) DisableLayer(l Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabledLayers = c.enabledLayers.Disable(l)
}

func (c *perspectiveCamera) LayerEnabled(l Layer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabledLayers.Has(l)
}

func (c *perspectiveCamera) Sees(obj RenderObject) bool {
	if obj == nil {
		return false
	}
	return c.LayerEnabled(obj.Layer())
}

func (c *perspectiveCamera) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *perspectiveCamera) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *perspectiveCamera) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *perspectiveCamera) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *perspectiveCamera) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}
