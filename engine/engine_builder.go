package engine

import (
	"time"

	"github.com/rinsyan0518/stereo360/engine/scene"
	"github.com/rinsyan0518/stereo360/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engineImpl)

// WithProfiling enables or disables tick profiling output.
//
// Parameters:
//   - enabled: if true, enables tick profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engineImpl) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// The scenes and tick callback are driven at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engineImpl) {
		if tps <= 0 {
			tps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(tps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than
// running headless.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engineImpl) {
		e.window = w
	}
}

// WithScene registers a scene at the given ordering key during engine construction.
// Scenes are ticked in ascending key order.
//
// Parameters:
//   - key: the ordering key (lower ticks first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engineImpl) {
		e.scenes[key] = s
	}
}
