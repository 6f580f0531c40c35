package shading

import (
	"math"

	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
)

// NeonLight composites a dark background, a sine-falloff glow stripe and a
// narrow solid core stripe: screen(background, glow) then add(core).
func NeonLight(f *raster.Fragment, _ *raster.Uniforms) rgb.Color {
	background := neonBackground()
	glow := neonGlow(f)
	core := neonCore(f)

	blendedGlow := background.BlendScreen(glow)
	return blendedGlow.BlendAdd(core).Scale(f.Intensity)
}

func neonBackground() rgb.Color {
	return rgb.New(10, 10, 20) // dark blue
}

func neonGlow(f *raster.Fragment) rgb.Color {
	y := f.VertexPosition[1]
	const (
		stripeWidth = 0.2
		glowSize    = 0.05
	)

	distanceToCenter := math.Abs(math.Mod(y, stripeWidth) - stripeWidth/2)
	glowIntensity := math.Sin((1 - math.Min(distanceToCenter/glowSize, 1)) * math.Pi / 2)

	// Neon blue.
	return rgb.New(
		0,
		uint8(0.5*glowIntensity*255),
		uint8(glowIntensity*255),
	)
}

func neonCore(f *raster.Fragment) rgb.Color {
	y := f.VertexPosition[1]
	const (
		stripeWidth = 0.2
		coreSize    = 0.02
	)

	distanceToCenter := math.Abs(math.Mod(y, stripeWidth) - stripeWidth/2)
	var coreIntensity float64
	if distanceToCenter < coreSize {
		coreIntensity = 1
	}

	return rgb.New(
		uint8(0.8*coreIntensity*255),
		uint8(0.9*coreIntensity*255),
		uint8(coreIntensity*255),
	)
}
