package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// SphereMesh generates a unit UV sphere as a flat triangle list (three
// consecutive vertices per triangle). Normals equal positions on a unit
// sphere.
func SphereMesh(stacks, slices int) []raster.Vertex {
	point := func(stack, slice int) raster.Vertex {
		lat := math.Pi * (float64(stack)/float64(stacks) - 0.5)
		lon := 2 * math.Pi * float64(slice) / float64(slices)

		p := mathutil.Vec3{
			math.Cos(lat) * math.Cos(lon),
			math.Sin(lat),
			math.Cos(lat) * math.Sin(lon),
		}
		return raster.Vertex{
			Position: p,
			Normal:   p,
			UV: mathutil.Vec2{
				float64(slice) / float64(slices),
				float64(stack) / float64(stacks),
			},
		}
	}

	out := make([]raster.Vertex, 0, stacks*slices*6)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			v00 := point(st, sl)
			v10 := point(st+1, sl)
			v01 := point(st, sl+1)
			v11 := point(st+1, sl+1)

			out = append(out, v00, v10, v11)
			out = append(out, v00, v11, v01)
		}
	}
	return out
}

// RingMesh generates a flat annulus in the xy plane (the orbital plane)
// with its normal on +z, as a flat triangle list.
func RingMesh(inner, outer float64, segments int) []raster.Vertex {
	normal := mathutil.Vec3{0, 0, 1}
	point := func(r float64, seg int, v float64) raster.Vertex {
		a := 2 * math.Pi * float64(seg) / float64(segments)
		return raster.Vertex{
			Position: mathutil.Vec3{r * math.Cos(a), r * math.Sin(a), 0},
			Normal:   normal,
			UV:       mathutil.Vec2{float64(seg) / float64(segments), v},
		}
	}

	out := make([]raster.Vertex, 0, segments*6)
	for s := 0; s < segments; s++ {
		i0 := point(inner, s, 0)
		o0 := point(outer, s, 1)
		i1 := point(inner, s+1, 0)
		o1 := point(outer, s+1, 1)

		out = append(out, i0, o0, o1)
		out = append(out, i0, o1, i1)
	}
	return out
}
