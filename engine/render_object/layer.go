package render_object

// Layer is a numbered visibility layer a render object belongs to.
// The renderer shows an object to a given output only when the output camera
// has the object's layer enabled.
type Layer int

// Layer numbering convention for stereoscopic rendering. The host VR renderer
// binds layer 1 to the left-eye camera and layer 2 to the right-eye camera;
// layer 0 is enabled on every camera.
const (
	// LayerDefault is visible to both eyes and to monoscopic cameras.
	LayerDefault Layer = 0

	// LayerLeftEye is visible only to cameras with the left-eye layer enabled.
	LayerLeftEye Layer = 1

	// LayerRightEye is visible only to cameras with the right-eye layer enabled.
	LayerRightEye Layer = 2
)

// LayerMask is a bitset of enabled layers on a camera.
// Layers combine via OR; bit n corresponds to Layer(n).
type LayerMask uint32

// Bit returns the mask bit for a single layer.
//
// Returns:
//   - LayerMask: a mask with only this layer's bit set
func (l Layer) Bit() LayerMask {
	return LayerMask(1) << uint(l)
}

// Enable returns the mask with the given layer's bit set.
//
// Parameters:
//   - l: the layer to enable
//
// Returns:
//   - LayerMask: the updated mask
func (m LayerMask) Enable(l Layer) LayerMask {
	return m | l.Bit()
}

// Disable returns the mask with the given layer's bit cleared.
//
// Parameters:
//   - l: the layer to disable
//
// Returns:
//   - LayerMask: the updated mask
func (m LayerMask) Disable(l Layer) LayerMask {
	return m &^ l.Bit()
}

// Has reports whether the given layer's bit is set.
//
// Parameters:
//   - l: the layer to test
//
// Returns:
//   - bool: true if the layer is enabled in the mask
func (m LayerMask) Has(l Layer) bool {
	return m&l.Bit() != 0
}
