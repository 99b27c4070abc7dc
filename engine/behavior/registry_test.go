package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinsyan0518/stereo360/engine/node"
)

type nopBehavior struct{}

func (nopBehavior) Attach(node.SceneNode) {}

func (nopBehavior) Reconfigure(node.SceneNode, node.AttributeSnapshot) {}

func (nopBehavior) Tick(node.SceneNode, float32) {}

func TestRegistry_RegisterAndNew(t *testing.T) {
	Register("test-nop", func() Behavior { return nopBehavior{} })

	inst, err := New("test-nop")
	require.NoError(t, err)
	assert.NotNil(t, inst)

	// Each New call produces a fresh instance from the factory.
	inst2, err := New("test-nop")
	require.NoError(t, err)
	assert.NotNil(t, inst2)
}

func TestRegistry_NewUnknownName(t *testing.T) {
	_, err := New("never-registered")
	assert.Error(t, err)
}

func TestRegistry_DuplicateRegisterPanics(t *testing.T) {
	Register("test-dup", func() Behavior { return nopBehavior{} })

	assert.Panics(t, func() {
		Register("test-dup", func() Behavior { return nopBehavior{} })
	})
}

func TestRegistry_NilFactoryPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("test-nil", nil)
	})
}

func TestRegistry_NamesSorted(t *testing.T) {
	Register("test-zz", func() Behavior { return nopBehavior{} })
	Register("test-aa", func() Behavior { return nopBehavior{} })

	names := Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "test-aa")
	assert.Contains(t, names, "test-zz")
}
