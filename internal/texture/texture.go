// Package texture loads images and exposes clamped nearest-pixel UV
// sampling for skybox fills and simple textured surfaces.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "github.com/ftrvxmtrx/tga"

	"solar-renderer/internal/rgb"
)

// Texture is a decoded image with UV sampling.
type Texture struct {
	img    *image.NRGBA
	Width  int
	Height int
}

// Load reads and decodes a PNG, JPEG or TGA file. Failure to decode is
// fatal to the caller: the renderer has no degraded mode without its
// assets.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	n := toNRGBA(img)
	b := n.Bounds()
	return &Texture{img: n, Width: b.Dx(), Height: b.Dy()}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Texture {
	n := toNRGBA(img)
	b := n.Bounds()
	return &Texture{img: n, Width: b.Dx(), Height: b.Dy()}
}

// Sample returns the nearest pixel for u,v clamped to [0,1].
func (t *Texture) Sample(u, v float64) rgb.Color {
	u = clamp01(u)
	v = clamp01(v)

	x := int(math.Round(u * float64(t.Width-1)))
	y := int(math.Round(v * float64(t.Height-1)))
	return t.At(x, y)
}

// At returns the pixel at (x, y); coordinates are assumed in bounds.
func (t *Texture) At(x, y int) rgb.Color {
	i := t.img.PixOffset(x, y)
	return rgb.New(t.img.Pix[i], t.img.Pix[i+1], t.img.Pix[i+2])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel — draw and force alpha to opaque.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
