package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinsyan0518/stereo360/engine/scene"
)

func TestEngine_SceneRegistry(t *testing.T) {
	s1 := scene.NewScene("first")
	s2 := scene.NewScene("second")
	e := NewEngine(WithScene(0, s1))

	e.AddScene(1, s2)
	assert.Same(t, s1, e.Scene(0))
	assert.Same(t, s2, e.Scene(1))
	assert.Nil(t, e.Scene(5))

	scenes := e.Scenes()
	assert.Len(t, scenes, 2)
	delete(scenes, 0)
	assert.NotNil(t, e.Scene(0), "Scenes must return a copy")

	e.RemoveScene(1)
	assert.Nil(t, e.Scene(1))
}

func TestEngine_HeadlessRunQuit(t *testing.T) {
	s := scene.NewScene("ticked", scene.WithActive(true))
	e := NewEngine(
		WithScene(0, s),
		WithTickRate(500),
	)

	ticks := 0
	e.SetTickCallback(func(deltaTime float32) {
		ticks++
		assert.Greater(t, deltaTime, float32(0))
		if ticks >= 3 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not shut down")
	}
	require.GreaterOrEqual(t, ticks, 3)
}

func TestEngine_QuitIsIdempotent(t *testing.T) {
	e := NewEngine()

	assert.NotPanics(t, func() {
		e.Quit()
		e.Quit()
	})
}

func TestEngine_NoWindowReturnsNil(t *testing.T) {
	e := NewEngine()
	assert.Nil(t, e.Window())
}
