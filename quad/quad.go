// Package quad holds the fixed geometry of the textured unit quad.
package quad

// FloatsPerVertex is the number of float32 values of a Vertex, and the
// stride of the vertex buffer in floats.
const FloatsPerVertex = 8

// Vertex is one corner of the quad.
type Vertex struct {
	Position [2]float32
	Color    [4]float32 // RGBA in [0,1].
	TexCoord [2]float32
}

var white = [4]float32{1, 1, 1, 1}

//  __________
// |3        0|
// |          |
// |          |
// |2        1|
// |__________|
var vertices = [4]Vertex{
	{Position: [2]float32{0.5, 0.5}, Color: white, TexCoord: [2]float32{1, 1}},
	{Position: [2]float32{0.5, -0.5}, Color: white, TexCoord: [2]float32{1, 0}},
	{Position: [2]float32{-0.5, -0.5}, Color: white, TexCoord: [2]float32{0, 0}},
	{Position: [2]float32{-0.5, 0.5}, Color: white, TexCoord: [2]float32{0, 1}},
}

var indices = [6]uint8{
	0, 1, 3,
	1, 2, 3,
}

// Vertices returns a copy of the quad corners.
func Vertices() [4]Vertex { return vertices }

// Indices returns a copy of the two triangles as narrow indices.
func Indices() [6]uint8 { return indices }

// IndexCount is the number of indices submitted by the draw call.
const IndexCount = len(indices)

// Indices16 widens the index list for drivers without 8 bit index support.
func Indices16() []uint16 {
	out := make([]uint16, 0, len(indices))
	for _, idx := range indices {
		out = append(out, uint16(idx))
	}
	return out
}

// Floats flattens the vertex table in buffer order.
func Floats() []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
		out = append(out, v.TexCoord[:]...)
	}
	return out
}

// Triangles returns the index triples.
func Triangles() [][3]uint8 {
	out := make([][3]uint8, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		out = append(out, [3]uint8{indices[i], indices[i+1], indices[i+2]})
	}
	return out
}

// Winding returns 1 for a counter-clockwise triangle, -1 for clockwise and 0
// for a degenerate one.
func Winding(t [3]uint8) int {
	a, b, c := vertices[t[0]].Position, vertices[t[1]].Position, vertices[t[2]].Position
	cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}
