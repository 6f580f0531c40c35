package texture

import (
	"image"
	"image/color"
	"testing"

	"solar-renderer/internal/rgb"
)

func checkerImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestSampleCorners(t *testing.T) {
	tex := FromImage(checkerImage())

	tests := []struct {
		name string
		u, v float64
		want rgb.Color
	}{
		{"top left", 0, 0, rgb.New(255, 0, 0)},
		{"top right", 1, 0, rgb.New(0, 255, 0)},
		{"bottom left", 0, 1, rgb.New(0, 0, 255)},
		{"bottom right", 1, 1, rgb.New(255, 255, 255)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.Sample(tc.u, tc.v); got != tc.want {
				t.Errorf("Sample(%v,%v) = %v, want %v", tc.u, tc.v, got, tc.want)
			}
		})
	}
}

func TestSampleClampsUV(t *testing.T) {
	tex := FromImage(checkerImage())

	if got := tex.Sample(-5, -5); got != rgb.New(255, 0, 0) {
		t.Errorf("negative uv = %v, want clamped to top-left", got)
	}
	if got := tex.Sample(5, 5); got != rgb.New(255, 255, 255) {
		t.Errorf("overflowing uv = %v, want clamped to bottom-right", got)
	}
}

func TestFromImageConvertsFormats(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(0, 0, color.Gray{Y: 200})

	tex := FromImage(gray)
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", tex.Width, tex.Height)
	}
	if got := tex.At(0, 0); got != rgb.New(200, 200, 200) {
		t.Errorf("gray pixel = %v, want neutral 200", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no/such/file.png"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
