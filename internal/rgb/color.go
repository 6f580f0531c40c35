// Package rgb implements the 8-bit-per-channel color type used by the
// rasterization pipeline, including the saturating arithmetic and the
// Photoshop-style blend operators the procedural shaders compose with.
package rgb

import (
	"fmt"
	"math"
)

// Color is an RGB triple. Every constructor and operator saturates to
// [0,255] per channel; channels never wrap.
type Color struct {
	R, G, B uint8
}

func New(r, g, b uint8) Color {
	return Color{r, g, b}
}

func Black() Color {
	return Color{}
}

// FromHex unpacks a 24-bit 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Hex packs the color back into 24-bit 0xRRGGBB form.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromFloat builds a color from channel values in [0,1]. Out-of-range
// inputs are clamped before scaling.
func FromFloat(r, g, b float64) Color {
	return Color{
		R: uint8(clamp01(r) * 255),
		G: uint8(clamp01(g) * 255),
		B: uint8(clamp01(b) * 255),
	}
}

// Lerp interpolates between c and other by t, clamped to [0,1].
// Each channel is round(a + (b-a)*t).
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerpChan(c.R, other.R, t),
		G: lerpChan(c.G, other.G, t),
		B: lerpChan(c.B, other.B, t),
	}
}

func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Add is a per-channel saturating add, capped at 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: satAdd(c.R, other.R),
		G: satAdd(c.G, other.G),
		B: satAdd(c.B, other.B),
	}
}

// Scale multiplies each channel by a scalar and clamps to [0,255].
func (c Color) Scale(s float64) Color {
	return Color{
		R: clamp255(float64(c.R) * s),
		G: clamp255(float64(c.G) * s),
		B: clamp255(float64(c.B) * s),
	}
}

// BlendNormal returns the blend color unless it is pure black, in which
// case the base wins. Black acts as the transparent key for overlay layers.
func (c Color) BlendNormal(blend Color) Color {
	if blend.IsBlack() {
		return c
	}
	return blend
}

// BlendMultiply multiplies channels and renormalizes by 255.
func (c Color) BlendMultiply(blend Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(blend.R) / 255),
		G: uint8(uint16(c.G) * uint16(blend.G) / 255),
		B: uint8(uint16(c.B) * uint16(blend.B) / 255),
	}
}

// BlendAdd is the saturating sum of base and blend.
func (c Color) BlendAdd(blend Color) Color {
	return c.Add(blend)
}

// BlendSubtract subtracts the blend color from the base, floored at 0.
func (c Color) BlendSubtract(blend Color) Color {
	return Color{
		R: satSub(c.R, blend.R),
		G: satSub(c.G, blend.G),
		B: satSub(c.B, blend.B),
	}
}

// BlendScreen computes 255 - (255-base)*(255-blend)/255 per channel.
func (c Color) BlendScreen(blend Color) Color {
	return Color{
		R: screenChan(c.R, blend.R),
		G: screenChan(c.G, blend.G),
		B: screenChan(c.B, blend.B),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d)", c.R, c.G, c.B)
}

func lerpChan(a, b uint8, t float64) uint8 {
	return clamp255(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func screenChan(a, b uint8) uint8 {
	return uint8(255 - (255-uint16(a))*(255-uint16(b))/255)
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
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

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
