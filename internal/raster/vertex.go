package raster

import (
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/rgb"
)

// Vertex carries the model-space attributes loaded from a mesh plus the
// screen-space fields populated by TransformVertex. Raw fields are never
// mutated in place; the transform stage returns a copy.
type Vertex struct {
	Position mathutil.Vec3 // model space
	Normal   mathutil.Vec3
	UV       mathutil.Vec2
	Color    rgb.Color

	// Populated exclusively by TransformVertex.
	ScreenPosition    mathutil.Vec3 // x,y in pixels, z as the depth metric
	TransformedNormal mathutil.Vec3
}

// Uniforms bundle the per-draw-call parameters. The pipeline treats them as
// read-only and does not retain them across calls.
type Uniforms struct {
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Viewport   mathutil.Mat4
	Time       float64
	Noise      noise.Field
}

// TransformVertex maps a model-space vertex into screen space:
// projection·view·model, perspective divide, then the viewport matrix
// (which flips y to the top-left pixel origin). The normal is transformed
// by the transpose of the inverse of the model matrix's 3×3 block; when the
// model matrix is singular the normal matrix falls back to identity rather
// than failing — momentary degenerate scales must not abort a frame.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	pos := mathutil.V4FromV3(v.Position, 1)
	clip := u.Projection.MulVec4(u.View.MulVec4(u.Model.MulVec4(pos)))
	ndc := clip.PerspectiveDivide()
	screen := u.Viewport.MulVec4(ndc)

	normalMatrix, _ := u.Model.UpperLeft().Transpose().InverseOK()

	out := v
	out.ScreenPosition = screen.XYZ()
	out.TransformedNormal = normalMatrix.MulVec3(v.Normal)
	return out
}
