// Package render draws the textured quad through a GPU Device.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"go.creack.net/texquad/quad"
	"go.creack.net/texquad/texture"
)

// BufferTarget selects the binding point of a buffer.
type BufferTarget int

// Buffer targets.
const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

// Shader stages.
const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Filter is a texture sampling filter.
type Filter int

// Texture filters.
const (
	Nearest Filter = iota
	Linear
)

// Wrap is a texture addressing mode.
type Wrap int

// Texture wrap modes.
const (
	ClampToEdge Wrap = iota
	Repeat
)

// SamplerParams are the sampling parameters of a texture.
type SamplerParams struct {
	MinFilter, MagFilter Filter
	WrapS, WrapT         Wrap
}

// Device is the GPU driver. Handle value 0 means "none" and unbinds.
//
// Only CompileShader and LinkProgram can fail; every other call is assumed
// to succeed and a driver failure there is a programming error.
type Device interface {
	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, id uint32)
	// BufferData uploads a slice of fixed size values with static usage.
	BufferData(target BufferTarget, data any)
	DeleteBuffer(id uint32)

	// VertexAttrib enables the attribute and declares its float layout.
	VertexAttrib(attr quad.Attribute, strideBytes int)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(id uint32)
	SamplerParams(p SamplerParams)
	// TexImage2D uploads an 8 bit RGBA image at mip level 0.
	TexImage2D(img *texture.Image)
	DeleteTexture(id uint32)

	CompileShader(stage ShaderStage, src string) (uint32, error)
	DeleteShader(id uint32)
	LinkProgram(shaders ...uint32) (uint32, error)
	UseProgram(id uint32)
	DeleteProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)

	ClearColor(r, g, b, a float32)
	Clear()
	// EnableBlend turns on source-over alpha blending.
	EnableBlend()
	DisableBlend()
	// DrawElements draws count unsigned byte indices as triangles from the
	// bound vertex array and index buffer.
	DrawElements(count int)
	Viewport(x, y, width, height int)
}
