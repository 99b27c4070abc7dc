package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Zero(t, Coalesce(0, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.InDelta(t, 1.5, Clamp(float32(1.5), 1.0, 2.0), 1e-6)
}
