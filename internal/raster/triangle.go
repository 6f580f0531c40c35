package raster

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/rgb"
)

// lightDir is the direction the per-vertex intensity term is computed
// against, pointing out of the screen toward the viewer.
var lightDir = mathutil.Vec3{0, 0, 1}

// degenerateEps bounds the barycentric denominator below which a triangle
// is treated as zero-area and skipped.
const degenerateEps = 1e-8

// RasterizeTriangle appends the fragments covered by the triangle
// (v0, v1, v2) to dst and returns the extended slice. This is the HOT
// PATH — append into a reused slice to keep the inner loop allocation-free.
//
// Coverage: for every integer pixel center inside the screen-space bounding
// box (clamped to width×height), the point is inside iff all three
// barycentric weights are non-negative. The rule is inclusive on every
// edge, so a pixel exactly on an edge shared by two triangles is emitted by
// both; overdraw there is resolved by the depth test instead of producing
// seams. Attributes are interpolated affinely in screen space — no
// perspective correction, which visibly warps only on large, steeply
// angled triangles.
//
// No depth rejection happens here; all in-triangle fragments are emitted
// and tested at the frame buffer.
func RasterizeTriangle(dst []Fragment, v0, v1, v2 Vertex, width, height int) []Fragment {
	a, b, c := v0.ScreenPosition, v1.ScreenPosition, v2.ScreenPosition

	minX := int(math.Floor(min3(a[0], b[0], c[0])))
	maxX := int(math.Ceil(max3(a[0], b[0], c[0])))
	minY := int(math.Floor(min3(a[1], b[1], c[1])))
	maxY := int(math.Ceil(max3(a[1], b[1], c[1])))

	if minX < 0 {
		minX = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > height-1 {
		maxY = height - 1
	}
	if minX > maxX || minY > maxY {
		return dst
	}

	// Edge-function denominator; zero means collinear vertices.
	det := (b[1]-c[1])*(a[0]-c[0]) + (c[0]-b[0])*(a[1]-c[1])
	if det > -degenerateEps && det < degenerateEps {
		return dst
	}
	invDet := 1.0 / det

	dy12 := b[1] - c[1]
	dx21 := c[0] - b[0]
	dy20 := c[1] - a[1]
	dx02 := a[0] - c[0]

	i0 := vertexIntensity(v0)
	i1 := vertexIntensity(v1)
	i2 := vertexIntensity(v2)

	for y := minY; y <= maxY; y++ {
		py := float64(y) - c[1]
		for x := minX; x <= maxX; x++ {
			px := float64(x) - c[0]
			w0 := (dy12*px + dx21*py) * invDet
			w1 := (dy20*px + dx02*py) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			dst = append(dst, Fragment{
				X:         x,
				Y:         y,
				Depth:     w0*a[2] + w1*b[2] + w2*c[2],
				Color:     interpColor(v0.Color, v1.Color, v2.Color, w0, w1, w2),
				Normal:    interpVec3(v0.TransformedNormal, v1.TransformedNormal, v2.TransformedNormal, w0, w1, w2),
				Intensity: w0*i0 + w1*i1 + w2*i2,
				VertexPosition: interpVec3(
					v0.Position, v1.Position, v2.Position, w0, w1, w2),
			})
		}
	}
	return dst
}

// vertexIntensity is the Lambertian term against lightDir, floored at 0.
func vertexIntensity(v Vertex) float64 {
	d := v.TransformedNormal.Normalize().Dot(lightDir)
	if d < 0 {
		return 0
	}
	return d
}

func interpVec3(a, b, c mathutil.Vec3, w0, w1, w2 float64) mathutil.Vec3 {
	return mathutil.Vec3{
		w0*a[0] + w1*b[0] + w2*c[0],
		w0*a[1] + w1*b[1] + w2*c[1],
		w0*a[2] + w1*b[2] + w2*c[2],
	}
}

func interpColor(a, b, c rgb.Color, w0, w1, w2 float64) rgb.Color {
	return rgb.New(
		round255(w0*float64(a.R)+w1*float64(b.R)+w2*float64(c.R)),
		round255(w0*float64(a.G)+w1*float64(b.G)+w2*float64(c.G)),
		round255(w0*float64(a.B)+w1*float64(b.B)+w2*float64(c.B)),
	)
}

func round255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c float64) float64 {
	return math.Min(math.Min(a, b), c)
}

func max3(a, b, c float64) float64 {
	return math.Max(math.Max(a, b), c)
}
