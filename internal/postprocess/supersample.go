package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a rendered frame to the target size with CatmullRom
// filtering (approximates Lanczos). Frames are fully opaque, so no
// premultiplied-alpha handling is needed.
func Downsample(img *image.NRGBA, targetW, targetH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetW && b.Dy() <= targetH {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
