package render

import (
	"fmt"
)

// CompileProgram compiles both stages and links them. The intermediate
// shader objects are deleted before returning, on success or failure.
func CompileProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := dev.CompileShader(VertexStage, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", VertexStage, err)
	}
	defer dev.DeleteShader(vs)

	fs, err := dev.CompileShader(FragmentStage, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", FragmentStage, err)
	}
	defer dev.DeleteShader(fs)

	id, err := dev.LinkProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("link program: %w", err)
	}
	return &Program{dev: dev, id: id}, nil
}

// Uniform looks up a uniform location, -1 when the program has none.
func (p *Program) Uniform(name string) int32 {
	return p.dev.UniformLocation(p.id, name)
}
