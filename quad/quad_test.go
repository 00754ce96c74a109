package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices(t *testing.T) {
	idx := Indices()
	require.Len(t, idx, 6)
	assert.Equal(t, IndexCount, len(idx))

	unique := map[uint8]struct{}{}
	for _, i := range idx {
		require.Less(t, int(i), len(Vertices()))
		unique[i] = struct{}{}
	}
	assert.Len(t, unique, 4)
}

func TestTriangles(t *testing.T) {
	tris := Triangles()
	require.Equal(t, [][3]uint8{{0, 1, 3}, {1, 2, 3}}, tris)

	first := Winding(tris[0])
	require.NotZero(t, first)
	assert.Equal(t, first, Winding(tris[1]), "both triangles must share the same winding")
}

func TestIndices16(t *testing.T) {
	assert.Equal(t, []uint16{0, 1, 3, 1, 2, 3}, Indices16())
}

func TestFloats(t *testing.T) {
	f := Floats()
	require.Len(t, f, 4*FloatsPerVertex)

	// Second vertex starts at one stride.
	assert.Equal(t, []float32{0.5, -0.5, 1, 1, 1, 1, 1, 0}, f[FloatsPerVertex:2*FloatsPerVertex])
}

func TestLayout(t *testing.T) {
	l := Layout()
	require.Len(t, l, 3)

	total := int32(0)
	for i, a := range l {
		assert.Equal(t, uint32(i), a.Location)
		assert.Equal(t, int(total), a.Offset)
		total += a.Size
	}
	assert.Equal(t, int32(FloatsPerVertex), total)
	assert.Equal(t, 32, StrideBytes)
	assert.Equal(t, 24, l[2].OffsetBytes())
}

func TestVerticesIsACopy(t *testing.T) {
	v := Vertices()
	v[0].Position[0] = 42
	assert.Equal(t, float32(0.5), Vertices()[0].Position[0])
}
