// Package scene drives the per-frame orchestration around the pipeline:
// body placement on their orbits, camera, uniform assembly, and the orbit
// overlay drawing. The pipeline itself stays agnostic of all of this.
package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/shading"
)

// Body is one object on an orbit around the origin. Positions are a pure
// function of time, so a Scene can be rendered from multiple goroutines as
// long as each one owns its frame buffer.
type Body struct {
	Name        string
	OrbitRadius float64 // base orbit radius; 0 keeps the body fixed
	Scale       float64
	SpeedFactor float64 // angular speed, radians per second
	Shader      raster.Shader
	Noise       noise.Field
}

// orbitSpacing widens the orbits so neighboring bodies stay separated.
const orbitSpacing = 1.5

// TranslationAt returns the body's position at time t (seconds).
func (b *Body) TranslationAt(t float64) mathutil.Vec3 {
	if b.OrbitRadius == 0 {
		return mathutil.Vec3{}
	}
	angle := t * b.SpeedFactor
	r := b.OrbitRadius * orbitSpacing
	return mathutil.Vec3{r * math.Cos(angle), r * math.Sin(angle), 0}
}

// RotationAt returns the body's Euler rotation (spin around y) at time t.
func (b *Body) RotationAt(t float64) mathutil.Vec3 {
	return mathutil.Vec3{0, t * b.SpeedFactor, 0}
}

// Scene is the full solar system plus camera and meshes.
type Scene struct {
	Width  int
	Height int

	Camera *Camera
	Bodies []*Body

	Sphere []raster.Vertex
	Ring   []raster.Vertex
	Skybox raster.Sampler2D // optional full-screen backdrop

	projection mathutil.Mat4
	viewport   mathutil.Mat4
}

// New assembles the default system: six orbiting planets, the sun, and a
// comet, each with its own shader and noise field.
func New(width, height int, sphere, ring []raster.Vertex) *Scene {
	mustShader := func(name string) raster.Shader {
		s, ok := shading.ByName(name)
		if !ok {
			panic("scene: unknown shader " + name)
		}
		return s
	}

	bodies := []*Body{
		{Name: "mars", OrbitRadius: 4, Scale: 1, SpeedFactor: 0.10, Shader: mustShader("lava"), Noise: noise.LavaField()},
		{Name: "neon", OrbitRadius: 6, Scale: 1, SpeedFactor: 0.15, Shader: mustShader("neon"), Noise: noise.NeonField()},
		{Name: "sun", OrbitRadius: 0, Scale: 1, SpeedFactor: 0.20, Shader: mustShader("static"), Noise: noise.SunField()},
		{Name: "dalmata", OrbitRadius: 10, Scale: 1, SpeedFactor: 0.25, Shader: mustShader("dalmata"), Noise: noise.DalmataField()},
		{Name: "saturn", OrbitRadius: 12, Scale: 1, SpeedFactor: 0.30, Shader: mustShader("combined"), Noise: noise.CloudField()},
		{Name: "kepler", OrbitRadius: 14, Scale: 1, SpeedFactor: 0.35, Shader: mustShader("cellular"), Noise: noise.CombinedField()},
		{Name: "earth", OrbitRadius: 16, Scale: 1, SpeedFactor: 0.40, Shader: mustShader("earth"), Noise: noise.CloudField()},
		{Name: "comet", OrbitRadius: -1, Scale: 0.2, SpeedFactor: 1, Shader: mustShader("luna"), Noise: noise.CloudField()},
	}

	return &Scene{
		Width:      width,
		Height:     height,
		Camera:     NewCamera(mathutil.Vec3{0, 0, 20}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}),
		Bodies:     bodies,
		Sphere:     sphere,
		Ring:       ring,
		projection: mathutil.Perspective(mathutil.Deg2Rad(45), float64(width)/float64(height), 0.1, 1000),
		viewport:   mathutil.Viewport(float64(width), float64(height)),
	}
}

// RenderFrame renders the system at time t (seconds) into fb. fb must have
// the scene's dimensions; the caller owns it exclusively for the duration.
func (s *Scene) RenderFrame(fb *raster.FrameBuffer, t float64) {
	fb.Clear()
	if s.Skybox != nil {
		fb.DrawSkybox(s.Skybox)
	}

	view := s.Camera.ViewMatrix()

	for _, b := range s.Bodies {
		switch b.Name {
		case "sun":
			s.renderSun(fb, view, b, t)
		case "comet":
			s.renderComet(fb, view, b, t)
		default:
			s.renderPlanet(fb, view, b, t)
		}
	}
}

func (s *Scene) renderPlanet(fb *raster.FrameBuffer, view mathutil.Mat4, b *Body, t float64) {
	translation := b.TranslationAt(t)
	if !s.isVisible(translation, view) {
		return
	}

	s.drawOrbit(fb, b.OrbitRadius*orbitSpacing, view)

	rotation := b.RotationAt(t)
	u := s.uniforms(modelMatrix(translation, b.Scale, rotation), b, t)
	raster.Render(fb, &u, s.Sphere, b.Shader)

	switch b.Name {
	case "saturn":
		ringU := s.uniforms(modelMatrix(translation, b.Scale*0.7, rotation), b, t)
		raster.Render(fb, &ringU, s.Ring, b.Shader)
	case "earth":
		s.renderMoon(fb, translation, b, t)
	}
}

// renderMoon orbits the moon around the earth's current position.
func (s *Scene) renderMoon(fb *raster.FrameBuffer, earthPos mathutil.Vec3, earth *Body, t float64) {
	const (
		moonOrbitRadius = 0.7
		moonSpeed       = 0.5
	)
	angle := t * moonSpeed
	pos := mathutil.Vec3{
		earthPos[0] + moonOrbitRadius*math.Cos(angle),
		earthPos[1] + moonOrbitRadius*math.Sin(angle),
		0,
	}

	shader, _ := shading.ByName("luna")
	u := s.uniforms(modelMatrix(pos, earth.Scale*0.3, earth.RotationAt(t)), earth, t)
	raster.Render(fb, &u, s.Sphere, shader)
}

func (s *Scene) renderSun(fb *raster.FrameBuffer, view mathutil.Mat4, b *Body, t float64) {
	if !s.isVisible(mathutil.Vec3{}, view) {
		return
	}
	u := s.uniforms(modelMatrix(mathutil.Vec3{}, b.Scale*1.5, mathutil.Vec3{}), b, t)
	raster.Render(fb, &u, s.Sphere, b.Shader)
}

func (s *Scene) renderComet(fb *raster.FrameBuffer, view mathutil.Mat4, b *Body, t float64) {
	pos := mathutil.Vec3{math.Sin(t) * 4, math.Cos(t) * 2, 0}
	if !s.isVisible(pos, view) {
		return
	}
	u := s.uniforms(modelMatrix(pos, b.Scale, mathutil.Vec3{}), b, t)
	raster.Render(fb, &u, s.Sphere, b.Shader)
}

func (s *Scene) uniforms(model mathutil.Mat4, b *Body, t float64) raster.Uniforms {
	return raster.Uniforms{
		Model:      model,
		View:       s.Camera.ViewMatrix(),
		Projection: s.projection,
		Viewport:   s.viewport,
		Time:       t,
		Noise:      b.Noise,
	}
}

// isVisible reports whether a world position projects inside the NDC cube.
func (s *Scene) isVisible(pos mathutil.Vec3, view mathutil.Mat4) bool {
	clip := s.projection.MulVec4(view.MulVec4(mathutil.V4FromV3(pos, 1)))
	if clip[3] == 0 {
		return false
	}
	ndc := clip.PerspectiveDivide()
	return ndc[0] >= -1 && ndc[0] <= 1 &&
		ndc[1] >= -1 && ndc[1] <= 1 &&
		ndc[2] >= -1 && ndc[2] <= 1
}

// modelMatrix composes translation · rotationX · rotationY · rotationZ ·
// uniform scale.
func modelMatrix(translation mathutil.Vec3, scale float64, rotation mathutil.Vec3) mathutil.Mat4 {
	m := mathutil.Scaling(mathutil.Vec3{scale, scale, scale})
	m = mathutil.Mat4Mul(mathutil.RotationZ(rotation[2]), m)
	m = mathutil.Mat4Mul(mathutil.RotationY(rotation[1]), m)
	m = mathutil.Mat4Mul(mathutil.RotationX(rotation[0]), m)
	return mathutil.Mat4Mul(mathutil.Translation(translation), m)
}
