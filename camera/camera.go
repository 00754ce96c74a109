// Package camera implements the orthographic zoom camera of the quad demo.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultOrthoSize is the vertical half extent of the view at startup.
const DefaultOrthoSize = 2

// Near and far clip planes of the projection.
const (
	Near = -1
	Far  = 1
)

// Camera holds the zoom state.
//
// OrthoSize is mutated only by Scroll. MinOrthoSize, when positive, is the
// lowest value Scroll will leave in OrthoSize. The zero value disables the
// bound, so the size can reach zero or go negative and flip the image.
type Camera struct {
	OrthoSize    float32
	MinOrthoSize float32
}

// New returns a camera with the given ortho size and no lower bound.
func New(orthoSize float32) *Camera {
	return &Camera{OrthoSize: orthoSize}
}

// Scroll applies a vertical wheel delta. Scrolling up (positive) zooms in.
func (c *Camera) Scroll(dy float32) {
	c.OrthoSize -= dy
	if c.MinOrthoSize > 0 && c.OrthoSize < c.MinOrthoSize {
		c.OrthoSize = c.MinOrthoSize
	}
}

// HalfExtents returns the horizontal and vertical half extents of the view.
func (c *Camera) HalfExtents(v Viewport) (x, y float32) {
	return c.OrthoSize * v.Aspect(), c.OrthoSize
}

// Model is the model transform of the quad. It is an identity scale.
func Model() mgl32.Mat4 {
	return mgl32.Scale3D(1, 1, 1)
}

// Projection returns the model-projection matrix uploaded to the shader.
func (c *Camera) Projection(v Viewport) mgl32.Mat4 {
	hx, hy := c.HalfExtents(v)
	proj := mgl32.Ortho(-hx, hx, -hy, hy, Near, Far)
	return proj.Mul4(Model())
}
