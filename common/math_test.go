package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 9
	}
	Identity(m)

	for i, v := range m {
		if i%5 == 0 {
			assert.Equal(t, float32(1), v, "diagonal at %d", i)
		} else {
			assert.Equal(t, float32(0), v, "off-diagonal at %d", i)
		}
	}
}

func TestMul4_IdentityIsNeutral(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, id, a)
	assert.Equal(t, a, out)

	Mul4(out, a, id)
	assert.Equal(t, a, out)
}

func TestMul4_AliasedOutput(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	want := make([]float32, 16)
	copy(want, a)

	// out may alias an input; results are buffered internally.
	Mul4(a, id, a)
	assert.Equal(t, want, a)
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	Perspective(out, math32.Pi/2, 2.0, 0.1, 100)

	f := float32(1.0) / math32.Tan(math32.Pi/4)
	assert.InDelta(t, f/2.0, out[0], 1e-5)
	assert.InDelta(t, f, out[5], 1e-5)
	assert.InDelta(t, -1, out[11], 1e-5)
	assert.InDelta(t, 0, out[15], 1e-5)
}

func TestLookAt_OriginLookingDownNegZ(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 0, 0, 0, 0, 0, -1, 0, 1, 0)

	id := make([]float32, 16)
	Identity(id)
	for i := range id {
		assert.InDelta(t, id[i], out[i], 1e-5, "element %d", i)
	}
}

func TestLookAt_TranslatesEye(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 3, 0, 0, 3, 0, -1, 0, 1, 0)

	assert.InDelta(t, -3, out[12], 1e-5)
	assert.InDelta(t, 0, out[13], 1e-5)
	assert.InDelta(t, 0, out[14], 1e-5)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)

	require.Len(t, b, 12)
	assert.Nil(t, SliceToBytes([]float32{}))
}
