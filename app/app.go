// Package app runs the quad demo in a glfw window with an OpenGL context.
package app

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"go.creack.net/texquad/cli"
	"go.creack.net/texquad/internal/gldevice"
	"go.creack.net/texquad/render"
)

// Run opens the window and blocks until it is closed.
func Run(cfg cli.Config) error {
	// GL and glfw calls must all come from the main thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Printf("OpenGL %s.", gldevice.Version())

	// HiDPI surfaces are bigger than the requested window size.
	fbWidth, fbHeight := window.GetFramebufferSize()
	log.Printf("Framebuffer %dx%d (window %dx%d).", fbWidth, fbHeight, cfg.Width, cfg.Height)

	rw := render.NewWindow(gldevice.New(), render.Options{
		Width:        fbWidth,
		Height:       fbHeight,
		TexturePath:  cfg.TexturePath,
		OrthoSize:    cfg.OrthoSize,
		MinOrthoSize: cfg.MinOrthoSize,
		Present:      window.SwapBuffers,
	})
	if err := rw.Initialize(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer rw.Close()

	scroll := &scrollAccumulator{}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		scroll.add(yoff)
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		rw.Resize(width, height)
	})

	clock := &frameClock{}
	for !window.ShouldClose() {
		glfw.PollEvents()
		dt := clock.tick(glfw.GetTime())
		rw.Update(dt, scroll.drain())
		rw.Render(dt)
	}
	return nil
}
