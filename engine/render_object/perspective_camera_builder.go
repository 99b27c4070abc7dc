package render_object

// PerspectiveCameraBuilderOption is a functional option for configuring a PerspectiveCamera during construction.
type PerspectiveCameraBuilderOption func(*perspectiveCamera)

// WithCameraName sets the camera's identifier.
//
// Parameters:
//   - name: the camera name
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the name
func WithCameraName(name string) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.name = name
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the field of view
func WithFov(fov float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the aspect ratio
func WithAspect(aspect float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the near plane
func WithNear(near float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the far plane
func WithFar(far float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.far = far
	}
}

// WithPosition sets the camera's position in world space.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.position = [3]float32{x, y, z}
	}
}

// WithTarget sets the point the camera looks at.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the target
func WithTarget(x, y, z float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.target = [3]float32{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the up vector
func WithUp(x, y, z float32) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.up = [3]float32{x, y, z}
	}
}

// WithEnabledLayers sets the camera's initial enabled-layer bitset.
//
// Parameters:
//   - m: the layer mask to enable
//
// Returns:
//   - PerspectiveCameraBuilderOption: functional option to set the enabled layers
func WithEnabledLayers(m LayerMask) PerspectiveCameraBuilderOption {
	return func(c *perspectiveCamera) {
		c.enabledLayers = m
	}
}
