// Package raster implements the software rendering pipeline: vertex
// transformation, triangle rasterization with barycentric interpolation,
// fragment shading, and the depth-tested frame buffer writes.
package raster

import (
	"image"
	"math"

	"solar-renderer/internal/rgb"
)

// Sampler2D is anything that can be sampled by clamped UV coordinates.
// The skybox fill consumes it; internal/texture provides the usual
// implementation.
type Sampler2D interface {
	Sample(u, v float64) rgb.Color
}

// FrameBuffer holds the rendering target as flat slices for cache locality:
// a row-major color buffer and a parallel z-buffer.
type FrameBuffer struct {
	Width      int
	Height     int
	Color      []rgb.Color
	Depth      []float64 // per pixel, +Inf means untouched
	Background rgb.Color
}

// NewFrameBuffer allocates a black color buffer and a +Inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]rgb.Color, n),
		Depth:  depth,
	}
}

// SetBackground sets the color Clear fills with.
func (fb *FrameBuffer) SetBackground(c rgb.Color) {
	fb.Background = c
}

// Clear resets every pixel to the background color and every depth to +Inf.
func (fb *FrameBuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = fb.Background
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

// Write commits a color at (x, y) if depth passes the z-test (strictly
// closer than the stored value). Out-of-bounds writes are silent no-ops:
// partially off-screen geometry routinely lands here.
func (fb *FrameBuffer) Write(x, y int, depth float64, c rgb.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth < fb.Depth[i] {
		fb.Color[i] = c
		fb.Depth[i] = depth
	}
}

// WriteColor writes unconditionally, bypassing the depth test. Used for
// overlay drawing such as orbit lines.
func (fb *FrameBuffer) WriteColor(x, y int, c rgb.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Color[y*fb.Width+x] = c
}

// At returns the committed color at (x, y), or black out of bounds.
func (fb *FrameBuffer) At(x, y int) rgb.Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return rgb.Black()
	}
	return fb.Color[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or +Inf out of bounds.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DrawLine draws a line with Bresenham's algorithm, clipping out-of-bounds
// points. No depth test: lines are overlay graphics.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1 int, c rgb.Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx / 2
	if dx <= dy {
		err = -dy / 2
	}

	for {
		fb.WriteColor(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect fills an axis-aligned block unconditionally.
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c rgb.Color) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			fb.WriteColor(x+i, y+j, c)
		}
	}
}

// DrawSkybox fills the whole buffer by sampling s across [0,1]×[0,1].
// No depth write: the skybox sits behind everything rendered afterward.
func (fb *FrameBuffer) DrawSkybox(s Sampler2D) {
	for y := 0; y < fb.Height; y++ {
		v := float64(y) / float64(fb.Height)
		for x := 0; x < fb.Width; x++ {
			u := float64(x) / float64(fb.Width)
			fb.Color[y*fb.Width+x] = s.Sample(u, v)
		}
	}
}

// Pack returns the color buffer as packed 24-bit RGB values, row-major.
func (fb *FrameBuffer) Pack() []uint32 {
	out := make([]uint32, len(fb.Color))
	for i, c := range fb.Color {
		out[i] = c.Hex()
	}
	return out
}

// RGBA returns the color buffer as interleaved RGBA bytes (alpha 255) for
// display surfaces that take raw pixel uploads.
func (fb *FrameBuffer) RGBA() []byte {
	out := make([]byte, len(fb.Color)*4)
	for i, c := range fb.Color {
		out[i*4] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = 255
	}
	return out
}

// ToNRGBA copies the color buffer into an image for encoding.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Color {
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 255
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
