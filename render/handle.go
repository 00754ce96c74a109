package render

// VertexArray owns a vertex array object.
type VertexArray struct {
	dev Device
	id  uint32
}

// NewVertexArray allocates a vertex array.
func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{dev: dev, id: dev.GenVertexArray()}
}

// ID returns the driver handle, 0 once released.
func (v *VertexArray) ID() uint32 { return v.id }

// Bind makes the vertex array current.
func (v *VertexArray) Bind() { v.dev.BindVertexArray(v.id) }

// Release frees the vertex array. Safe to call more than once.
func (v *VertexArray) Release() {
	if v == nil || v.id == 0 {
		return
	}
	v.dev.DeleteVertexArray(v.id)
	v.id = 0
}

// Buffer owns a GPU buffer bound to a fixed target.
type Buffer struct {
	dev    Device
	target BufferTarget
	id     uint32
}

// NewBuffer allocates a buffer, binds it and uploads data.
func NewBuffer(dev Device, target BufferTarget, data any) *Buffer {
	b := &Buffer{dev: dev, target: target, id: dev.GenBuffer()}
	b.Bind()
	dev.BufferData(target, data)
	return b
}

// ID returns the driver handle, 0 once released.
func (b *Buffer) ID() uint32 { return b.id }

// Bind binds the buffer to its target.
func (b *Buffer) Bind() { b.dev.BindBuffer(b.target, b.id) }

// Release frees the buffer. Safe to call more than once.
func (b *Buffer) Release() {
	if b == nil || b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}

// Texture owns a 2D texture.
type Texture struct {
	dev           Device
	id            uint32
	width, height int
}

// ID returns the driver handle, 0 once released.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texel dimensions.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Bind binds the texture to the active unit.
func (t *Texture) Bind() { t.dev.BindTexture(t.id) }

// Release frees the texture. Safe to call more than once.
func (t *Texture) Release() {
	if t == nil || t.id == 0 {
		return
	}
	t.dev.DeleteTexture(t.id)
	t.id = 0
}

// Program owns a linked shader program.
type Program struct {
	dev Device
	id  uint32
}

// ID returns the driver handle, 0 once released.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current.
func (p *Program) Use() { p.dev.UseProgram(p.id) }

// Release frees the program. Safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}
