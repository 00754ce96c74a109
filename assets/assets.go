// Package assets embeds the shader sources and the default sprite.
package assets

import (
	_ "embed"
)

// DefaultTexturePath is where the sprite is looked up, relative to the
// working directory.
const DefaultTexturePath = "assets/Player.png"

// ProjectionUniform is the name of the model-projection matrix uniform of
// the GLSL program.
const ProjectionUniform = "u_Projection"

// QuadVertexShader is the GLSL vertex stage.
//
//go:embed shaders/quad.vert
var QuadVertexShader string

// QuadFragmentShader is the GLSL fragment stage.
//
//go:embed shaders/quad.frag
var QuadFragmentShader string

// QuadKageShader is the ebiten equivalent of the GLSL program.
//
//go:embed shaders/quad.kage
var QuadKageShader []byte

// PlayerPNG is the content of Player.png.
//
//go:embed Player.png
var PlayerPNG []byte
