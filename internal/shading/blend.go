package shading

import (
	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
)

// BlendMode selects the compositing operator for the blend demo shader.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendAdd
	BlendSubtract
)

// NewBlendDemo composes a purple base with a yellow circle through the
// given blend operator. It exists to exercise each blend mode visually.
func NewBlendDemo(mode BlendMode) raster.Shader {
	return func(f *raster.Fragment, _ *raster.Uniforms) rgb.Color {
		base := purple()
		circle := circleSpot(f)

		var combined rgb.Color
		switch mode {
		case BlendMultiply:
			combined = base.BlendMultiply(circle)
		case BlendAdd:
			combined = base.BlendAdd(circle)
		case BlendSubtract:
			combined = base.BlendSubtract(circle)
		default:
			combined = base.BlendNormal(circle)
		}
		return combined.Scale(f.Intensity)
	}
}

func purple() rgb.Color {
	return rgb.New(128, 0, 128)
}

// circleSpot is a yellow disc of radius 0.25 around the model-space origin;
// black elsewhere, which BlendNormal treats as transparent.
func circleSpot(f *raster.Fragment) rgb.Color {
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	if x*x+y*y < 0.25*0.25 {
		return rgb.New(255, 255, 0)
	}
	return rgb.Black()
}
