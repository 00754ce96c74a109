package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is the pixel rectangle the frame is drawn to.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// FullViewport covers a whole surface of the given size.
func FullViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// Aspect returns Width/Height. A non-positive height (minimized window)
// yields 1 so the projection stays finite.
func (v Viewport) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Empty reports whether nothing can be drawn to the viewport.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// NDCToScreen maps normalized device coordinates to pixel coordinates with
// the origin at the top-left corner, as used by pixel-space drivers.
func (v Viewport) NDCToScreen(p mgl32.Vec2) (x, y float32) {
	x = float32(v.X) + (p.X()+1)/2*float32(v.Width)
	y = float32(v.Y) + (1-p.Y())/2*float32(v.Height)
	return x, y
}

// Transform applies m to a 2D point in the z=0 plane and returns its
// normalized device coordinates.
func Transform(m mgl32.Mat4, p [2]float32) mgl32.Vec2 {
	out := m.Mul4x1(mgl32.Vec4{p[0], p[1], 0, 1})
	return mgl32.Vec2{out.X() / out.W(), out.Y() / out.W()}
}
