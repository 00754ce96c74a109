package ebitenview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"go.creack.net/texquad/camera"
	"go.creack.net/texquad/quad"
)

// screenVertices projects the quad into view pixels. The sprite is sw*sh
// texels with its top row first, so texture v is flipped. Nil when the
// viewport is empty.
func screenVertices(proj mgl32.Mat4, view camera.Viewport, sw, sh float32) []ebiten.Vertex {
	if view.Empty() {
		return nil
	}
	src := quad.Vertices()
	out := make([]ebiten.Vertex, 0, len(src))
	for _, v := range src {
		x, y := view.NDCToScreen(camera.Transform(proj, v.Position))
		out = append(out, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   v.TexCoord[0] * sw,
			SrcY:   (1 - v.TexCoord[1]) * sh,
			ColorR: v.Color[0],
			ColorG: v.Color[1],
			ColorB: v.Color[2],
			ColorA: v.Color[3],
		})
	}
	return out
}

func hudLine(orthoSize float32, view camera.Viewport) string {
	return fmt.Sprintf("zoom: %.2f  %dx%d", orthoSize, view.Width, view.Height)
}
