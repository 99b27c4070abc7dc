package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rinsyan0518/stereo360/common"
)

// Window provides the preview window and its input event handling.
// Wraps the platform windowing implementation with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	// Dimensions are framebuffer pixels, not screen coordinates.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetDragStartCallback sets the callback for the start of a left-button drag.
	// Used for look-around control in the 360 preview.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetDragStartCallback(callback func(x, y int32))

	// SetDragEndCallback sets the callback for the end of a left-button drag.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetDragEndCallback(callback func(x, y int32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// previewWindow is the implementation of the Window interface.
// Holds window configuration, platform state, and event callbacks.
type previewWindow struct {
	title string

	// Resize limits enforced by the platform layer.
	minWidth  int
	minHeight int
	maxWidth  int
	maxHeight int

	// Current framebuffer dimensions in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onDragStart func(x, y int32)
	onDragEnd   func(x, y int32)
	onMouseMove func(x, y int32)
}

var _ Window = &previewWindow{}

// NewWindow creates a new preview Window with the specified options.
// Applies default values first, then each option in order. The initial
// dimensions are clamped to the configured min/max limits.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &previewWindow{
		title:     "Stereo 360 Preview",
		minWidth:  320,
		minHeight: 180,
		maxWidth:  3840,
		maxHeight: 2160,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.width = common.Clamp(w.width, w.minWidth, w.maxWidth)
	w.height = common.Clamp(w.height, w.minHeight, w.maxHeight)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *previewWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *previewWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *previewWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *previewWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *previewWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *previewWindow) SetDragStartCallback(callback func(x, y int32)) {
	w.onDragStart = callback
}

func (w *previewWindow) SetDragEndCallback(callback func(x, y int32)) {
	w.onDragEnd = callback
}

func (w *previewWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *previewWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *previewWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *previewWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *previewWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *previewWindow) Width() int {
	return w.width
}

func (w *previewWindow) Height() int {
	return w.height
}
