package ebitenview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/texquad/camera"
)

type corner struct {
	dstX, dstY float32
	srcX, srcY float32
}

func TestScreenVertices(t *testing.T) {
	for _, tc := range []struct {
		name      string
		orthoSize float32
		view      camera.Viewport
		want      [4]corner
	}{
		{
			name:      "square",
			orthoSize: 1,
			view:      camera.FullViewport(100, 100),
			want: [4]corner{
				{75, 25, 16, 0}, // Top right, top row of the sprite.
				{75, 75, 16, 16},
				{25, 75, 0, 16},
				{25, 25, 0, 0},
			},
		},
		{
			name:      "wide",
			orthoSize: 1,
			view:      camera.FullViewport(200, 100),
			want: [4]corner{
				{125, 25, 16, 0},
				{125, 75, 16, 16},
				{75, 75, 0, 16},
				{75, 25, 0, 0},
			},
		},
		{
			name:      "zoomed out",
			orthoSize: 2,
			view:      camera.FullViewport(100, 100),
			want: [4]corner{
				{62.5, 37.5, 16, 0},
				{62.5, 62.5, 16, 16},
				{37.5, 62.5, 0, 16},
				{37.5, 37.5, 0, 0},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cam := camera.New(tc.orthoSize)
			got := screenVertices(cam.Projection(tc.view), tc.view, 16, 16)
			require.Len(t, got, 4)
			for i, want := range tc.want {
				assert.InDelta(t, want.dstX, got[i].DstX, 1e-3, "vertex %d DstX", i)
				assert.InDelta(t, want.dstY, got[i].DstY, 1e-3, "vertex %d DstY", i)
				assert.InDelta(t, want.srcX, got[i].SrcX, 1e-6, "vertex %d SrcX", i)
				assert.InDelta(t, want.srcY, got[i].SrcY, 1e-6, "vertex %d SrcY", i)
				assert.Equal(t, float32(1), got[i].ColorA)
			}
		})
	}
}

func TestScreenVerticesEmptyViewport(t *testing.T) {
	cam := camera.New(camera.DefaultOrthoSize)
	for _, v := range []camera.Viewport{
		camera.FullViewport(0, 0),
		camera.FullViewport(640, 0),
		camera.FullViewport(0, 495),
	} {
		assert.Nil(t, screenVertices(cam.Projection(v), v, 16, 16), "%+v", v)
	}
}

func TestLayout(t *testing.T) {
	g := &Game{cam: camera.New(camera.DefaultOrthoSize), view: camera.FullViewport(640, 495)}
	g.cam.Scroll(0.5)

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, camera.Viewport{Width: 800, Height: 600}, g.Viewport())
	assert.Equal(t, float32(1.5), g.OrthoSize())

	// Same size again keeps the viewport.
	g.Layout(800, 600)
	assert.Equal(t, camera.Viewport{Width: 800, Height: 600}, g.Viewport())
}

func TestHUDLine(t *testing.T) {
	assert.Equal(t, "zoom: 1.50  800x600", hudLine(1.5, camera.FullViewport(800, 600)))
}
