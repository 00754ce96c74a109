package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"go.creack.net/texquad/quad"
	"go.creack.net/texquad/texture"
)

// fakeDevice records every call as a short string and tracks live objects.
type fakeDevice struct {
	calls []string
	next  uint32
	live  map[uint32]string

	compileErr map[ShaderStage]error
	linkErr    error

	buffers  map[BufferTarget]any
	texImage *texture.Image
	uniform  mgl32.Mat4
	viewport [4]int
	drawn    []int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		live:       map[uint32]string{},
		compileErr: map[ShaderStage]error{},
		buffers:    map[BufferTarget]any{},
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) gen(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *fakeDevice) del(kind string, id uint32) {
	if d.live[id] != kind {
		panic(fmt.Sprintf("delete %s %d: not live", kind, id))
	}
	delete(d.live, id)
}

func (d *fakeDevice) GenVertexArray() uint32 {
	id := d.gen("vao")
	d.record("GenVertexArray")
	return id
}
func (d *fakeDevice) BindVertexArray(id uint32) { d.record("BindVertexArray %d", id) }
func (d *fakeDevice) DeleteVertexArray(id uint32) {
	d.del("vao", id)
	d.record("DeleteVertexArray %d", id)
}

func (d *fakeDevice) GenBuffer() uint32 {
	id := d.gen("buffer")
	d.record("GenBuffer")
	return id
}
func (d *fakeDevice) BindBuffer(target BufferTarget, id uint32) {
	d.record("BindBuffer %d %d", target, id)
}
func (d *fakeDevice) BufferData(target BufferTarget, data any) {
	d.buffers[target] = data
	d.record("BufferData %d", target)
}
func (d *fakeDevice) DeleteBuffer(id uint32) {
	d.del("buffer", id)
	d.record("DeleteBuffer %d", id)
}

func (d *fakeDevice) VertexAttrib(attr quad.Attribute, strideBytes int) {
	d.record("VertexAttrib %d size=%d offset=%d stride=%d", attr.Location, attr.Size, attr.OffsetBytes(), strideBytes)
}

func (d *fakeDevice) GenTexture() uint32 {
	id := d.gen("texture")
	d.record("GenTexture")
	return id
}
func (d *fakeDevice) ActiveTexture(unit uint32) { d.record("ActiveTexture %d", unit) }
func (d *fakeDevice) BindTexture(id uint32)     { d.record("BindTexture %d", id) }
func (d *fakeDevice) SamplerParams(p SamplerParams) {
	d.record("SamplerParams %d %d %d %d", p.MinFilter, p.MagFilter, p.WrapS, p.WrapT)
}
func (d *fakeDevice) TexImage2D(img *texture.Image) {
	d.texImage = img
	d.record("TexImage2D %dx%d", img.Width, img.Height)
}
func (d *fakeDevice) DeleteTexture(id uint32) {
	d.del("texture", id)
	d.record("DeleteTexture %d", id)
}

func (d *fakeDevice) CompileShader(stage ShaderStage, src string) (uint32, error) {
	if err := d.compileErr[stage]; err != nil {
		d.record("CompileShader %s failed", stage)
		return 0, err
	}
	id := d.gen("shader")
	d.record("CompileShader %s", stage)
	return id, nil
}
func (d *fakeDevice) DeleteShader(id uint32) {
	d.del("shader", id)
	d.record("DeleteShader")
}
func (d *fakeDevice) LinkProgram(shaders ...uint32) (uint32, error) {
	if d.linkErr != nil {
		d.record("LinkProgram failed")
		return 0, d.linkErr
	}
	id := d.gen("program")
	d.record("LinkProgram %d", len(shaders))
	return id, nil
}
func (d *fakeDevice) UseProgram(id uint32) { d.record("UseProgram %d", id) }
func (d *fakeDevice) DeleteProgram(id uint32) {
	d.del("program", id)
	d.record("DeleteProgram %d", id)
}
func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation %s", name)
	return 7
}
func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.uniform = m
	d.record("UniformMatrix4 %d", location)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) { d.record("ClearColor %g %g %g %g", r, g, b, a) }
func (d *fakeDevice) Clear()                        { d.record("Clear") }
func (d *fakeDevice) EnableBlend()                  { d.record("EnableBlend") }
func (d *fakeDevice) DisableBlend()                 { d.record("DisableBlend") }
func (d *fakeDevice) DrawElements(count int) {
	d.drawn = append(d.drawn, count)
	d.record("DrawElements %d", count)
}
func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.viewport = [4]int{x, y, width, height}
	d.record("Viewport %d %d %d %d", x, y, width, height)
}

// reset forgets the recorded calls.
func (d *fakeDevice) reset() { d.calls = nil }

// names strips the arguments of the recorded calls.
func (d *fakeDevice) names() []string {
	out := make([]string, 0, len(d.calls))
	for _, c := range d.calls {
		name, _, _ := strings.Cut(c, " ")
		out = append(out, name)
	}
	return out
}

// liveKinds returns the sorted kinds of objects not deleted yet.
func (d *fakeDevice) liveKinds() []string {
	out := make([]string, 0, len(d.live))
	for _, k := range d.live {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

var errBoom = errors.New("boom")
