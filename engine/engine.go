package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/rinsyan0518/stereo360/engine/profiler"
	"github.com/rinsyan0518/stereo360/engine/scene"
	"github.com/rinsyan0518/stereo360/engine/window"
)

// engineImpl implements the Engine interface.
// Coordinates the tick and window threads.
type engineImpl struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	scenes map[int]scene.Scene
}

// Engine is the main entry point for the library's host loop.
// It drives scene ticks at a fixed rate and optionally manages a preview
// window. The tick loop invokes Tick on every active scene in ascending key
// order, which is what delivers the per-cycle behavior callbacks.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance or nil
	Window() window.Window

	// EnableProfiler enables tick profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables tick profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// If the engine is running, the change takes effect immediately.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers a function called after the scenes have been
	// ticked each cycle. Use this for playback control, input processing, or
	// driving frames into video textures.
	//
	// Parameters:
	//   - callback: function to call each tick, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given key.
	// Scenes are ticked in ascending key order.
	//
	// Parameters:
	//   - key: the ordering key (lower ticks first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by ordering key.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the tick loop and blocks: with a window, until the window
	// closes; headless, until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick channel and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			for _, s := range e.scenes {
				if c := s.Camera(); c != nil && height > 0 {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engineImpl) Window() window.Window {
	return e.window
}

func (e *engineImpl) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engineImpl) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engineImpl) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engineImpl) handle() {
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Ticks active scenes in ascending key order, fires the tick callback, and
// listens for dynamic rate changes via tickRateChannel. Exits when the quit
// channel is closed.
func (e *engineImpl) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			keys := make([]int, 0, len(e.scenes))
			for k := range e.scenes {
				keys = append(keys, k)
			}
			sort.Ints(keys)

			tickStart := time.Now()
			for _, k := range keys {
				if s := e.scenes[k]; s.Active() {
					s.Tick(dt)
				}
			}
			dispatch := time.Since(tickStart)

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick(dispatch)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engineImpl) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables tick profiling output to the log.
func (e *engineImpl) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables tick profiling output.
func (e *engineImpl) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engineImpl) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	newRate := time.Second / time.Duration(tps)

	if e.running {
		// Send to channel for immediate update in running tick loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engineImpl) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engineImpl) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engineImpl) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engineImpl) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engineImpl) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
