// Package gldevice implements render.Device on top of OpenGL 4.1 core.
//
// A context must be current on the calling thread and gl.Init must have
// succeeded before any call.
package gldevice

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"go.creack.net/texquad/quad"
	"go.creack.net/texquad/render"
	"go.creack.net/texquad/texture"
)

// Device is the OpenGL driver.
type Device struct{}

// New returns an OpenGL device for the current context.
func New() *Device { return &Device{} }

// Version returns the driver version string.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

var _ render.Device = (*Device)(nil)

func bufferTarget(t render.BufferTarget) uint32 {
	if t == render.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (*Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Device) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (*Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (*Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Device) BindBuffer(target render.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTarget(target), id)
}

func (*Device) BufferData(target render.BufferTarget, data any) {
	size := binary.Size(data)
	if size <= 0 {
		panic(fmt.Sprintf("gldevice: unsupported buffer data %T", data))
	}
	gl.BufferData(bufferTarget(target), size, gl.Ptr(data), gl.STATIC_DRAW)
}

func (*Device) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (*Device) VertexAttrib(attr quad.Attribute, strideBytes int) {
	gl.EnableVertexAttribArray(attr.Location)
	gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, int32(strideBytes), uintptr(attr.OffsetBytes()))
}

func (*Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*Device) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (*Device) BindTexture(id uint32) { gl.BindTexture(gl.TEXTURE_2D, id) }

func filter(f render.Filter) int32 {
	if f == render.Linear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrap(w render.Wrap) int32 {
	if w == render.Repeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (*Device) SamplerParams(p render.SamplerParams) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(p.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(p.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(p.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(p.WrapT))
}

func (*Device) TexImage2D(img *texture.Image) {
	// Rows are tightly packed, whatever the width.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

func (*Device) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (*Device) CompileShader(stage render.ShaderStage, src string) (uint32, error) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == render.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLength, nil, buf) })
		gl.DeleteShader(shader)
		return 0, errors.New(msg)
	}
	return shader, nil
}

func (*Device) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (*Device) LinkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) { gl.GetProgramInfoLog(program, logLength, nil, buf) })
		gl.DeleteProgram(program)
		return 0, errors.New(msg)
	}
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	buf := make([]uint8, length+1)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func (*Device) UseProgram(id uint32) { gl.UseProgram(id) }

func (*Device) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (*Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (*Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (*Device) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (*Device) DisableBlend() { gl.Disable(gl.BLEND) }

func (*Device) DrawElements(count int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_BYTE, 0)
}

func (*Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
