package raster

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/rgb"
)

// Fragment is a pixel candidate produced by rasterizing a triangle. It is
// consumed by the shading stage and discarded; fragments are never
// persisted across frames.
type Fragment struct {
	X, Y  int     // pixel coordinates
	Depth float64 // interpolated depth, consumed by the z-test

	Color     rgb.Color
	Normal    mathutil.Vec3
	Intensity float64 // interpolated lighting factor

	// VertexPosition is the interpolated model-space (pre-projection)
	// position, used by procedural shaders for world-space noise sampling.
	VertexPosition mathutil.Vec3
}
