package raster

import (
	"math"
	"testing"

	"solar-renderer/internal/rgb"
)

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	if fb.Width != 4 || fb.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", fb.Width, fb.Height)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !fb.At(x, y).IsBlack() {
				t.Fatalf("pixel (%d,%d) not black after allocation", x, y)
			}
			if !math.IsInf(fb.DepthAt(x, y), 1) {
				t.Fatalf("depth (%d,%d) not +Inf after allocation", x, y)
			}
		}
	}
}

func TestWriteDepthTest(t *testing.T) {
	fb := NewFrameBuffer(4, 4)

	// Draw order must not matter: the closest fragment always wins.
	fb.Write(1, 1, 2.0, rgb.New(1, 0, 0))
	fb.Write(1, 1, 1.0, rgb.New(2, 0, 0))
	fb.Write(1, 1, 3.0, rgb.New(3, 0, 0))

	if got := fb.At(1, 1); got != rgb.New(2, 0, 0) {
		t.Errorf("color = %v, want the depth-1.0 write", got)
	}
	if got := fb.DepthAt(1, 1); got != 1.0 {
		t.Errorf("depth = %v, want 1.0", got)
	}

	// Equal depth does not pass: the test is strictly less-than.
	fb.Write(1, 1, 1.0, rgb.New(9, 9, 9))
	if got := fb.At(1, 1); got != rgb.New(2, 0, 0) {
		t.Errorf("equal-depth write replaced the pixel: %v", got)
	}
}

func TestWriteOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		fb.Write(p[0], p[1], 0, rgb.New(255, 255, 255)) // must not panic
	}
	for i := range fb.Color {
		if !fb.Color[i].IsBlack() {
			t.Fatal("out-of-bounds write modified the buffer")
		}
	}
}

func TestClear(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.SetBackground(rgb.FromHex(0x333355))
	fb.Write(0, 0, 1.0, rgb.New(255, 0, 0))

	fb.Clear()

	if got := fb.At(0, 0); got != rgb.FromHex(0x333355) {
		t.Errorf("pixel after clear = %v, want background", got)
	}
	if !math.IsInf(fb.DepthAt(0, 0), 1) {
		t.Error("depth not reset to +Inf by clear")
	}

	// A depth that lost before clearing must win against a fresh buffer.
	fb.Write(0, 0, 100.0, rgb.New(1, 2, 3))
	if got := fb.At(0, 0); got != rgb.New(1, 2, 3) {
		t.Errorf("write after clear = %v, want it committed", got)
	}
}

func TestWriteColorBypassesDepth(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Write(0, 0, 1.0, rgb.New(10, 10, 10))

	fb.WriteColor(0, 0, rgb.New(200, 200, 200))

	if got := fb.At(0, 0); got != rgb.New(200, 200, 200) {
		t.Errorf("overlay write = %v, want it unconditional", got)
	}
	if got := fb.DepthAt(0, 0); got != 1.0 {
		t.Errorf("overlay write changed depth to %v", got)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantPixels     int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical", 2, 1, 2, 4, 4},
		{"diagonal", 0, 0, 3, 3, 4},
		{"single point", 3, 3, 3, 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFrameBuffer(10, 10)
			fb.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, rgb.New(255, 255, 255))

			count := 0
			for i := range fb.Color {
				if !fb.Color[i].IsBlack() {
					count++
				}
			}
			if count != tc.wantPixels {
				t.Errorf("drew %d pixels, want %d", count, tc.wantPixels)
			}
		})
	}
}

func TestDrawLineClips(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.DrawLine(-5, 2, 10, 2, rgb.New(255, 255, 255)) // crosses the buffer

	for x := 0; x < 4; x++ {
		if fb.At(x, 2).IsBlack() {
			t.Errorf("pixel (%d,2) not drawn by clipped line", x)
		}
	}
}

func TestDrawSkybox(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.DrawSkybox(gradientSampler{})

	if fb.At(0, 0) != rgb.New(0, 0, 0) {
		t.Errorf("top-left = %v, want black", fb.At(0, 0))
	}
	if fb.At(3, 0).R <= fb.At(1, 0).R {
		t.Error("skybox u gradient not increasing left to right")
	}
	// Skybox writes no depth, geometry always lands on top.
	if !math.IsInf(fb.DepthAt(2, 2), 1) {
		t.Error("skybox fill touched the depth buffer")
	}
}

type gradientSampler struct{}

func (gradientSampler) Sample(u, v float64) rgb.Color {
	return rgb.FromFloat(u, v, 0)
}

func TestPackAndRGBA(t *testing.T) {
	fb := NewFrameBuffer(2, 1)
	fb.WriteColor(0, 0, rgb.FromHex(0x112233))
	fb.WriteColor(1, 0, rgb.FromHex(0xAABBCC))

	packed := fb.Pack()
	if packed[0] != 0x112233 || packed[1] != 0xAABBCC {
		t.Errorf("packed = %x, want [112233 aabbcc]", packed)
	}

	raw := fb.RGBA()
	want := []byte{0x11, 0x22, 0x33, 0xFF, 0xAA, 0xBB, 0xCC, 0xFF}
	if len(raw) != len(want) {
		t.Fatalf("RGBA length = %d, want %d", len(raw), len(want))
	}
	for i := range want {
		if raw[i] != want[i] {
			t.Fatalf("RGBA[%d] = %x, want %x", i, raw[i], want[i])
		}
	}

	img := fb.ToNRGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Errorf("image bounds = %v, want 2x1", img.Bounds())
	}
	if img.Pix[0] != 0x11 || img.Pix[3] != 0xFF {
		t.Error("NRGBA pixel data mismatch")
	}
}
