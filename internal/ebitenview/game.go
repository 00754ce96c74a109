// Package ebitenview runs the quad demo on ebiten, drawing the sprite with a
// Kage shader instead of raw OpenGL.
package ebitenview

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/texquad/assets"
	"go.creack.net/texquad/camera"
	"go.creack.net/texquad/cli"
	"go.creack.net/texquad/quad"
	"go.creack.net/texquad/render"
	"go.creack.net/texquad/texture"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

var clearColor = color.RGBA{
	R: uint8(render.ClearColor[0]*255 + 0.5),
	G: uint8(render.ClearColor[1]*255 + 0.5),
	B: uint8(render.ClearColor[2]*255 + 0.5),
	A: uint8(render.ClearColor[3]*255 + 0.5),
}

// Game implements ebiten.Game interface.
type Game struct {
	cam  *camera.Camera
	view camera.Viewport

	sprite *ebiten.Image
	shader *ebiten.Shader

	indices []uint16
}

// New loads the sprite and compiles the shader. Both failures are fatal to
// startup.
func New(cfg cli.Config) (*Game, error) {
	// ebiten images have a top-left origin, no flip needed.
	img, err := texture.Load(cfg.TexturePath, texture.Options{})
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	log.Printf("Loaded %s texture %q (%dx%d).", img.Format, cfg.TexturePath, img.Width, img.Height)

	shader, err := ebiten.NewShader(assets.QuadKageShader)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	return &Game{
		cam:     &camera.Camera{OrthoSize: cfg.OrthoSize, MinOrthoSize: cfg.MinOrthoSize},
		view:    camera.FullViewport(cfg.Width, cfg.Height),
		sprite:  ebiten.NewImageFromImage(img.NRGBA()),
		shader:  shader,
		indices: quad.Indices16(),
	}, nil
}

// Update reads the wheel. Scrolling up zooms in.
func (g *Game) Update() error {
	_, dy := ebiten.Wheel()
	g.cam.Scroll(float32(dy))
	return nil
}

// Draw draws the quad, then the zoom line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	b := g.sprite.Bounds()
	vertices := screenVertices(g.cam.Projection(g.view), g.view, float32(b.Dx()), float32(b.Dy()))
	if vertices == nil {
		return
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = g.sprite
	op.Blend = ebiten.BlendSourceOver
	screen.DrawTrianglesShader(vertices, g.indices, g.shader, op)

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(4, 4)
	textOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudLine(g.cam.OrthoSize, g.view), fontFace, textOp)
}

// Layout is the resize hook: the viewport always covers the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.view.Width || outsideHeight != g.view.Height {
		g.view = camera.FullViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Viewport returns the viewport of the next frame.
func (g *Game) Viewport() camera.Viewport { return g.view }

// OrthoSize returns the current zoom.
func (g *Game) OrthoSize() float32 { return g.cam.OrthoSize }
