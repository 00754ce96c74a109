// Package texture decodes image files into tightly packed RGBA pixels ready
// for a GPU upload.
package texture

import (
	"fmt"
	"image"
	"io"
	"os"

	// Formats accepted by Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// Channels is the number of 8 bit components per pixel of an Image.
const Channels = 4

// Options controls decoding.
type Options struct {
	// FlipVertical stores the bottom row first, matching the bottom-left
	// texture origin of OpenGL.
	FlipVertical bool
}

// Image is a decoded, non-premultiplied RGBA image.
type Image struct {
	Width  int
	Height int
	Format string // Name of the source format, e.g. "png".
	Pix    []byte // Width*Height*Channels bytes, rows tightly packed.
}

// Load reads and decodes the image at path.
func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer func() { _ = f.Close() }() // Best effort.

	img, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image from r, converting any source layout to 4
// channels.
func Decode(r io.Reader, opts Options) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	if opts.FlipVertical {
		flipRows(dst.Pix, dst.Stride, b.Dy())
	}

	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
		Pix:    dst.Pix,
	}, nil
}

func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// NRGBA returns the pixels as a standard library image, top row first
// unless the image was decoded with FlipVertical.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * Channels,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}
