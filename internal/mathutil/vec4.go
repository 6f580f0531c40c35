package mathutil

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float64

// V4FromV3 lifts a Vec3 to homogeneous coordinates with the given w.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide divides x, y, z by w. The caller is responsible for
// checking w against zero; a zero w yields IEEE infinities, never a fault.
func (v Vec4) PerspectiveDivide() Vec4 {
	return Vec4{v[0] / v[3], v[1] / v[3], v[2] / v[3], 1}
}
