package render

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"go.creack.net/texquad/assets"
	"go.creack.net/texquad/camera"
	"go.creack.net/texquad/quad"
	"go.creack.net/texquad/texture"
)

// ClearColor is the background color of every frame.
var ClearColor = [4]float32{0.3, 0.2, 0.7, 1.0}

// Options configures a Window.
type Options struct {
	Width, Height int // Initial surface size in pixels.

	TexturePath string

	// OrthoSize is the initial zoom. Zero selects camera.DefaultOrthoSize,
	// so a window cannot start at a zero extent; Update can still reach it.
	OrthoSize    float32
	MinOrthoSize float32 // Zero disables the zoom bound.

	// Present swaps the display buffer. Called once per Render.
	Present func()

	// Logger defaults to the standard logger.
	Logger *log.Logger
}

// Window renders the textured quad. It owns exactly one vertex array, vertex
// buffer, index buffer, texture and program, created by Initialize and freed
// by Close.
//
// All methods must be called from the thread owning the GPU context.
type Window struct {
	dev     Device
	opts    Options
	log     *log.Logger
	cam     *camera.Camera
	view    camera.Viewport
	present func()

	vao     *VertexArray
	vbo     *Buffer
	ebo     *Buffer
	tex     *Texture
	program *Program

	projLoc int32
	proj    mgl32.Mat4
}

// NewWindow returns a window that is not yet initialized.
func NewWindow(dev Device, opts Options) *Window {
	if opts.OrthoSize == 0 {
		opts.OrthoSize = camera.DefaultOrthoSize
	}
	if opts.TexturePath == "" {
		opts.TexturePath = assets.DefaultTexturePath
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	present := opts.Present
	if present == nil {
		present = func() {}
	}
	return &Window{
		dev:     dev,
		opts:    opts,
		log:     opts.Logger,
		cam:     &camera.Camera{OrthoSize: opts.OrthoSize, MinOrthoSize: opts.MinOrthoSize},
		view:    camera.FullViewport(opts.Width, opts.Height),
		present: present,
		projLoc: -1,
	}
}

// DiscardLogger drops every message.
var DiscardLogger = log.New(io.Discard, "", 0)

// Initialize creates the GPU resources. It must be called once before any
// Update or Render. On error, everything acquired so far is released.
func (w *Window) Initialize() (err error) {
	defer func() {
		if err != nil {
			w.Close()
		}
	}()

	w.log.Printf("Surface %dx%d.", w.view.Width, w.view.Height)

	w.vao = NewVertexArray(w.dev)
	w.vao.Bind()

	w.vbo = NewBuffer(w.dev, ArrayBuffer, quad.Floats())
	for _, attr := range quad.Layout() {
		w.dev.VertexAttrib(attr, quad.StrideBytes)
	}

	indices := quad.Indices()
	w.ebo = NewBuffer(w.dev, ElementArrayBuffer, indices[:])

	w.dev.BindVertexArray(0)
	w.dev.BindBuffer(ArrayBuffer, 0)
	w.dev.BindBuffer(ElementArrayBuffer, 0)

	w.tex = NewTexture(w.dev, PixelArtSampler)
	img, err := texture.Load(w.opts.TexturePath, texture.Options{FlipVertical: true})
	if err != nil {
		return fmt.Errorf("load texture: %w", err)
	}
	w.tex.Upload(img)
	w.dev.BindTexture(0)
	w.log.Printf("Loaded %s texture %q (%dx%d).", img.Format, w.opts.TexturePath, img.Width, img.Height)

	w.program, err = CompileProgram(w.dev, assets.QuadVertexShader, assets.QuadFragmentShader)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	w.projLoc = w.program.Uniform(assets.ProjectionUniform)

	w.dev.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	return nil
}

// Render draws one frame and presents it. GPU bindings are restored on
// return.
func (w *Window) Render(dt float64) {
	w.dev.Clear()

	w.dev.EnableBlend()
	w.tex.Bind()
	w.program.Use()

	w.proj = w.cam.Projection(w.view)
	w.dev.UniformMatrix4(w.projLoc, w.proj)

	w.vao.Bind()
	w.ebo.Bind()
	w.dev.DrawElements(quad.IndexCount)

	w.present()

	w.dev.BindVertexArray(0)
	w.dev.BindBuffer(ElementArrayBuffer, 0)
	w.dev.DisableBlend()
	w.dev.BindTexture(0)
	w.dev.UseProgram(0)
}

// Update applies the wheel delta accumulated during the frame.
func (w *Window) Update(dt float64, scrollY float32) {
	w.cam.Scroll(scrollY)
}

// Resize makes the next frames cover the whole new surface.
func (w *Window) Resize(width, height int) {
	w.view = camera.FullViewport(width, height)
	w.dev.Viewport(w.view.X, w.view.Y, w.view.Width, w.view.Height)
}

// Close releases the GPU resources in reverse creation order.
func (w *Window) Close() {
	w.program.Release()
	w.tex.Release()
	w.ebo.Release()
	w.vbo.Release()
	w.vao.Release()
}

// OrthoSize returns the current zoom.
func (w *Window) OrthoSize() float32 { return w.cam.OrthoSize }

// Viewport returns the viewport used by the next frame.
func (w *Window) Viewport() camera.Viewport { return w.view }

// Projection returns the matrix uploaded by the last Render.
func (w *Window) Projection() mgl32.Mat4 { return w.proj }

// Texture returns the sprite texture, nil before Initialize.
func (w *Window) Texture() *Texture { return w.tex }
