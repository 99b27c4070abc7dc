package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestNewSphere_VertexAndFaceCounts(t *testing.T) {
	g := NewSphere(100, 64, 64)

	assert.Equal(t, KindSphere, g.Kind)
	assert.Equal(t, (64+1)*(64+1), g.VertexCount())
	// Two triangles per grid quad, minus one per quad in each pole row.
	assert.Equal(t, 64*64*2-64*2, g.FaceCount())
	assert.Len(t, g.FaceUVs, g.FaceCount())
}

func TestNewSphere_PositionsOnRadius(t *testing.T) {
	g := NewSphere(100, 8, 8)

	for _, p := range g.Positions {
		r := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		assert.InDelta(t, 100, r, 1e-2)
	}
}

func TestNewSphere_UVRange(t *testing.T) {
	g := NewSphere(100, 16, 16)

	for _, fuv := range g.FaceUVs {
		for _, uv := range fuv {
			assert.GreaterOrEqual(t, uv[0], float32(0))
			assert.LessOrEqual(t, uv[0], float32(1))
			assert.GreaterOrEqual(t, uv[1], float32(0))
			assert.LessOrEqual(t, uv[1], float32(1))
		}
	}
}

func TestNewSphere_PolesTopAndBottom(t *testing.T) {
	g := NewSphere(100, 8, 8)

	// First grid row is the top pole (+Y), last row the bottom pole (-Y).
	first := g.Positions[0]
	last := g.Positions[len(g.Positions)-1]
	assert.InDelta(t, 100, first[1], tol)
	assert.InDelta(t, -100, last[1], tol)
}

func TestNewSphereSector_HalfDome(t *testing.T) {
	g := NewSphereSector(100, 32, 32, math32.Pi/2, math32.Pi, 0, math32.Pi)

	assert.InDelta(t, math32.Pi/2, g.LonStart, tol)
	assert.InDelta(t, math32.Pi, g.LonLen, tol)

	// The [pi/2, 3pi/2] longitude sector maps entirely to x >= 0.
	for _, p := range g.Positions {
		assert.GreaterOrEqual(t, p[0], float32(-tol))
	}

	// UVs still span the full [0, 1] across the sector.
	var minU, maxU float32 = 1, 0
	for _, fuv := range g.FaceUVs {
		for _, uv := range fuv {
			minU = min(minU, uv[0])
			maxU = max(maxU, uv[0])
		}
	}
	assert.InDelta(t, 0, minU, tol)
	assert.InDelta(t, 1, maxU, tol)
}

func TestNewSphereSector_SegmentMinimums(t *testing.T) {
	g := NewSphereSector(1, 1, 1, 0, 2*math32.Pi, 0, math32.Pi)

	assert.Equal(t, 3, g.WidthSegs)
	assert.Equal(t, 2, g.HeightSegs)
}

func TestNewSphereSector_NoDegeneratePoleFaces(t *testing.T) {
	g := NewSphere(1, 4, 4)

	for _, f := range g.Faces {
		a := g.Positions[f.A]
		b := g.Positions[f.B]
		c := g.Positions[f.C]
		assert.False(t, a == b || b == c || a == c, "face with coincident corners")
	}
}

func TestGeometry_Buffered(t *testing.T) {
	g := NewSphere(100, 8, 8)
	b := g.Buffered()

	require.NotNil(t, b)
	assert.Equal(t, g.Name, b.Name)
	assert.Equal(t, g.Kind, b.Kind)
	assert.Equal(t, g.FaceCount()*3, b.VertexCount())

	// Corner UVs in the expanded stream come from the per-face table.
	for i, f := range g.Faces {
		assert.Equal(t, g.Positions[f.A], b.Vertices[i*3].Position)
		assert.Equal(t, g.FaceUVs[i][0], b.Vertices[i*3].TexCoord)
		assert.Equal(t, g.FaceUVs[i][2], b.Vertices[i*3+2].TexCoord)
	}
}

func TestBufferedGeometry_VertexData(t *testing.T) {
	g := NewSphere(1, 4, 4)
	b := g.Buffered()

	data := b.VertexData()
	assert.Len(t, data, b.VertexCount()*(&GPUVertex{}).Size())
}
