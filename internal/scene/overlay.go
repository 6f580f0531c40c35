package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
)

// orbitSegments is the number of line segments approximating one orbit
// circle in the overlay.
const orbitSegments = 100

// drawOrbit projects an origin-centered circle of the given radius through
// the current view and projection and draws it as overlay lines, bypassing
// the depth test.
func (s *Scene) drawOrbit(fb *raster.FrameBuffer, radius float64, view mathutil.Mat4) {
	white := rgb.New(255, 255, 255)
	pv := mathutil.Mat4Mul(s.projection, view)

	project := func(p mathutil.Vec3) (int, int, bool) {
		clip := pv.MulVec4(mathutil.V4FromV3(p, 1))
		if clip[3] == 0 {
			return 0, 0, false
		}
		ndc := clip.PerspectiveDivide()
		x := int((ndc[0] + 1) * float64(fb.Width) * 0.5)
		y := int((1 - ndc[1]) * float64(fb.Height) * 0.5)
		return x, y, true
	}

	for i := 0; i < orbitSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / orbitSegments
		a1 := 2 * math.Pi * float64(i+1) / orbitSegments

		x0, y0, ok0 := project(mathutil.Vec3{radius * math.Cos(a0), radius * math.Sin(a0), 0})
		x1, y1, ok1 := project(mathutil.Vec3{radius * math.Cos(a1), radius * math.Sin(a1), 0})
		if !ok0 || !ok1 {
			continue
		}
		fb.DrawLine(x0, y0, x1, y1, white)
	}
}
