package raster

import "solar-renderer/internal/rgb"

// Shader computes the final color of one fragment. Callers select one
// shader per draw call from a fixed set; there is no per-pixel dispatch or
// shader composition beyond hand-written combinations.
type Shader func(*Fragment, *Uniforms) rgb.Color

// Render executes the full pipeline for one draw call: every vertex is
// transformed, consecutive triples are assembled into triangles (trailing
// vertices that do not complete a triangle are silently dropped), each
// triangle is rasterized, and each fragment is shaded and submitted to the
// frame buffer, where the depth test decides the commit.
//
// The pipeline is synchronous and deterministic; final pixel colors are
// independent of draw order because the closest depth always wins.
func Render(fb *FrameBuffer, u *Uniforms, vertices []Vertex, shade Shader) {
	transformed := make([]Vertex, len(vertices))
	for i := range vertices {
		transformed[i] = TransformVertex(vertices[i], u)
	}

	frags := make([]Fragment, 0, 1024)
	for i := 0; i+2 < len(transformed); i += 3 {
		frags = RasterizeTriangle(frags[:0],
			transformed[i], transformed[i+1], transformed[i+2],
			fb.Width, fb.Height)

		for j := range frags {
			f := &frags[j]
			fb.Write(f.X, f.Y, f.Depth, shade(f, u))
		}
	}
}
