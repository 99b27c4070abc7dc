package geometry

import (
	"github.com/chewxy/math32"
)

// NewSphere builds a full UV sphere with the given radius and segment counts.
// Equivalent to NewSphereSector spanning the full 2π longitude and π latitude.
//
// Parameters:
//   - radius: sphere radius
//   - widthSegs: number of segments around the equator (minimum 3)
//   - heightSegs: number of segments from pole to pole (minimum 2)
//
// Returns:
//   - *Geometry: the generated sphere geometry
func NewSphere(radius float32, widthSegs, heightSegs int) *Geometry {
	return NewSphereSector(radius, widthSegs, heightSegs, 0, 2*math32.Pi, 0, math32.Pi)
}

// NewSphereSector builds a partial UV sphere covering the given longitude and
// latitude sector. Longitude runs counter-clockwise around the Y axis starting
// at lonStart; latitude runs from the top pole (latStart 0) downward. Faces
// that would collapse to a line at a pole are skipped.
//
// The UV layout follows the equirectangular video convention: u runs 0..1
// across the longitude sector, v is 1 at the top of the frame and 0 at the
// bottom, so the top half of the source frame occupies v in [0.5, 1].
//
// Parameters:
//   - radius: sphere radius
//   - widthSegs: number of longitude segments (minimum 3)
//   - heightSegs: number of latitude segments (minimum 2)
//   - lonStart: starting longitude angle in radians
//   - lonLen: longitude span in radians (2π for a full circle)
//   - latStart: starting latitude angle in radians (0 = top pole)
//   - latLen: latitude span in radians (π for top pole to bottom pole)
//
// Returns:
//   - *Geometry: the generated sector geometry
func NewSphereSector(radius float32, widthSegs, heightSegs int, lonStart, lonLen, latStart, latLen float32) *Geometry {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	latEnd := latStart + latLen

	nVtx := (widthSegs + 1) * (heightSegs + 1)
	positions := make([][3]float32, 0, nVtx)
	normals := make([][3]float32, 0, nVtx)
	uvs := make([][2]float32, 0, nVtx)

	// Vertex grid: rows top to bottom, columns along the longitude sector.
	grid := make([][]uint32, 0, heightSegs+1)
	idx := uint32(0)
	for y := 0; y <= heightSegs; y++ {
		row := make([]uint32, 0, widthSegs+1)
		v := float32(y) / float32(heightSegs)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			lon := lonStart + u*lonLen
			lat := latStart + v*latLen

			px := -radius * math32.Cos(lon) * math32.Sin(lat)
			py := radius * math32.Cos(lat)
			pz := radius * math32.Sin(lon) * math32.Sin(lat)

			positions = append(positions, [3]float32{px, py, pz})

			inv := float32(0)
			if radius != 0 {
				inv = 1 / radius
			}
			normals = append(normals, [3]float32{px * inv, py * inv, pz * inv})
			uvs = append(uvs, [2]float32{u, 1 - v})

			row = append(row, idx)
			idx++
		}
		grid = append(grid, row)
	}

	faces := make([]Face, 0, widthSegs*heightSegs*2)
	faceUVs := make([][3][2]float32, 0, widthSegs*heightSegs*2)
	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := grid[y][x+1]
			v2 := grid[y][x]
			v3 := grid[y+1][x]
			v4 := grid[y+1][x+1]

			// Quads touching a pole degenerate into a single triangle.
			if y != 0 || latStart > 0 {
				faces = append(faces, Face{A: v1, B: v2, C: v4})
				faceUVs = append(faceUVs, [3][2]float32{uvs[v1], uvs[v2], uvs[v4]})
			}
			if y != heightSegs-1 || latEnd < math32.Pi {
				faces = append(faces, Face{A: v2, B: v3, C: v4})
				faceUVs = append(faceUVs, [3][2]float32{uvs[v2], uvs[v3], uvs[v4]})
			}
		}
	}

	return &Geometry{
		Name:       "sphere",
		Kind:       KindSphere,
		Positions:  positions,
		Normals:    normals,
		Faces:      faces,
		FaceUVs:    faceUVs,
		Radius:     radius,
		WidthSegs:  widthSegs,
		HeightSegs: heightSegs,
		LonStart:   lonStart,
		LonLen:     lonLen,
		LatStart:   latStart,
		LatLen:     latLen,
	}
}
