package scene

import "solar-renderer/internal/mathutil"

// Camera is an orbiting look-at camera.
type Camera struct {
	Eye    mathutil.Vec3
	Center mathutil.Vec3
	Up     mathutil.Vec3

	// MinDist and MaxDist clamp the zoom range.
	MinDist float64
	MaxDist float64
}

// NewCamera places the camera at eye looking at center.
func NewCamera(eye, center, up mathutil.Vec3) *Camera {
	return &Camera{
		Eye:     eye,
		Center:  center,
		Up:      up,
		MinDist: 2,
		MaxDist: 100,
	}
}

// ViewMatrix returns the current look-at matrix.
func (c *Camera) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye, c.Center, c.Up)
}

// Orbit rotates the eye around the center by yaw (around the up axis) and
// pitch (around the camera's right axis), in radians.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.Eye.Sub(c.Center)

	if yaw != 0 {
		offset = mathutil.AxisAngleQuat(c.Up, yaw).Rotate(offset)
	}
	if pitch != 0 {
		right := offset.Cross(c.Up)
		if right.Len() > 1e-9 {
			offset = mathutil.AxisAngleQuat(right, pitch).Rotate(offset)
		}
	}

	c.Eye = c.Center.Add(offset)
}

// Zoom moves the eye toward (positive delta) or away from the center,
// clamped to [MinDist, MaxDist].
func (c *Camera) Zoom(delta float64) {
	toCenter := c.Center.Sub(c.Eye)
	dist := toCenter.Len()
	if dist < 1e-9 {
		return
	}

	next := dist - delta
	if next < c.MinDist {
		next = c.MinDist
	}
	if next > c.MaxDist {
		next = c.MaxDist
	}
	c.Eye = c.Center.Sub(toCenter.Normalize().Scale(next))
}

// FocusOn positions the camera behind a body along its direction to the
// origin, looking back at the origin.
func (c *Camera) FocusOn(target mathutil.Vec3, radius float64) {
	toOrigin := mathutil.Vec3{}.Sub(target).Normalize()
	c.Eye = target.Sub(toOrigin.Scale(radius * 2))
	c.Center = mathutil.Vec3{}
}
