package quad

// Attribute describes how one shader input is read from the vertex buffer.
// Sizes and offsets are expressed in float32 units.
type Attribute struct {
	Location uint32
	Name     string
	Size     int32
	Offset   int
}

// StrideBytes is the byte distance between two consecutive vertices.
const StrideBytes = FloatsPerVertex * 4

// OffsetBytes returns the attribute offset in bytes.
func (a Attribute) OffsetBytes() int { return a.Offset * 4 }

// Layout returns the vertex layout matching Vertex.
func Layout() []Attribute {
	return []Attribute{
		{Location: 0, Name: "a_Position", Size: 2, Offset: 0},
		{Location: 1, Name: "a_Color", Size: 4, Offset: 2},
		{Location: 2, Name: "a_TexCoords", Size: 2, Offset: 6},
	}
}
