package render

import (
	"go.creack.net/texquad/texture"
)

// PixelArtSampler samples texels without interpolation and never wraps.
var PixelArtSampler = SamplerParams{
	MinFilter: Nearest,
	MagFilter: Nearest,
	WrapS:     ClampToEdge,
	WrapT:     ClampToEdge,
}

// NewTexture allocates a texture on unit 0, leaves it bound and applies the
// sampler parameters. The texture has no storage until Upload.
func NewTexture(dev Device, params SamplerParams) *Texture {
	t := &Texture{dev: dev, id: dev.GenTexture()}
	dev.ActiveTexture(0)
	t.Bind()
	dev.SamplerParams(params)
	return t
}

// Upload replaces the texture storage with img. The texture must be bound.
func (t *Texture) Upload(img *texture.Image) {
	t.dev.TexImage2D(img)
	t.width, t.height = img.Width, img.Height
}
