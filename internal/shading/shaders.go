// Package shading holds the procedural fragment shaders. Each function is
// pure: the same fragment, uniforms and noise field always produce the same
// color. The numeric constants (zooms, offsets, thresholds) define each
// material's look and are not tunable.
package shading

import (
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
)

// Dalmata renders white spots on black from raw 2D noise.
func Dalmata(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	const zoom = 100.0
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	noiseValue := u.Noise.Sample2D(x*zoom, y*zoom)

	const spotThreshold = 0.5
	spotColor := rgb.New(255, 255, 255)
	baseColor := rgb.Black()

	c := baseColor
	if noiseValue < spotThreshold {
		c = spotColor
	}
	return c.Scale(f.Intensity)
}

// Luna is the dalmata recipe with two mid-gray tones.
func Luna(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	const zoom = 100.0
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	noiseValue := u.Noise.Sample2D(x*zoom, y*zoom)

	const spotThreshold = 0.5
	spotColor := rgb.New(135, 135, 135)
	baseColor := rgb.New(191, 191, 191)

	c := baseColor
	if noiseValue < spotThreshold {
		c = spotColor
	}
	return c.Scale(f.Intensity)
}

// Cloud renders drifting white clouds over sky blue; the x offset animates
// with time.
func Cloud(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	const (
		zoom = 300.0
		ox   = 100.0
		oy   = 10.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	t := u.Time * 0.5

	noiseValue := u.Noise.Sample2D(x*zoom+ox+t, y*zoom+oy)

	const cloudThreshold = 0.5
	cloudColor := rgb.New(255, 255, 255)
	skyColor := rgb.New(30, 97, 145)

	c := skyColor
	if noiseValue > cloudThreshold {
		c = cloudColor
	}
	return c.Scale(f.Intensity)
}

// Cellular maps absolute cell noise through a four-way threshold ladder.
func Cellular(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	const (
		zoom = 300.0
		ox   = 50.0
		oy   = 50.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	cellNoise := math.Abs(u.Noise.Sample2D(x*zoom+ox, y*zoom+oy))

	var c rgb.Color
	switch {
	case cellNoise < 0.15:
		c = rgb.New(85, 107, 47) // dark olive green
	case cellNoise < 0.7:
		c = rgb.New(124, 252, 0) // light green
	case cellNoise < 0.75:
		c = rgb.New(34, 139, 34) // forest green
	default:
		c = rgb.New(39, 101, 167)
	}
	return c.Scale(f.Intensity)
}

// Lava blends a dark and a bright tone by two averaged 3D noise samples
// whose z coordinate pulsates with time.
func Lava(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	brightColor := rgb.New(255, 240, 0)
	darkColor := rgb.New(130, 20, 0)

	position := mathutil.Vec3{f.VertexPosition[0], f.VertexPosition[1], f.Depth}

	const (
		baseFrequency    = 0.2
		pulsateAmplitude = 0.5
		zoom             = 1000.0
	)
	t := u.Time * 0.01
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	noise1 := u.Noise.Sample3D(
		position[0]*zoom,
		position[1]*zoom,
		(position[2]+pulsate)*zoom,
	)
	noise2 := u.Noise.Sample3D(
		(position[0]+1000)*zoom,
		(position[1]+1000)*zoom,
		(position[2]+1000+pulsate)*zoom,
	)
	noiseValue := (noise1 + noise2) * 0.5

	return darkColor.Lerp(brightColor, noiseValue).Scale(f.Intensity)
}

// Earth composites a time-animated cellular land/ocean base with an
// independently animated cloud layer at 50% opacity.
func Earth(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	const (
		zoom       = 30.0
		baseOffset = 50.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	t := u.Time * 0.5
	offsetX := baseOffset + math.Sin(t)*10
	offsetY := baseOffset + math.Cos(t)*10

	cellNoise := math.Abs(u.Noise.Sample2D(x*zoom+offsetX, y*zoom+offsetY))

	var base rgb.Color
	switch {
	case cellNoise < 0.15:
		base = rgb.New(85, 107, 47)
	case cellNoise < 0.7:
		base = rgb.New(2, 100, 177)
	case cellNoise < 0.75:
		base = rgb.New(85, 107, 47)
	default:
		base = rgb.New(133, 98, 57)
	}

	const (
		cloudZoom = 100.0
		cloudOX   = 100.0
		cloudOY   = 100.0
	)
	cloudNoise := u.Noise.Sample2D(x*cloudZoom+cloudOX+t, y*cloudZoom+cloudOY)

	const cloudThreshold = 0.5
	cloudColor := rgb.New(255, 255, 255)

	blended := base
	if cloudNoise > cloudThreshold {
		// Half cloud, half base, so the surface stays visible under cover.
		blended = base.BlendNormal(cloudColor).Scale(0.5).Add(base.Scale(0.5))
	}
	return blended.Scale(f.Intensity)
}

// StaticPattern is a sine-product interference pattern over the model-space
// position.
func StaticPattern(f *raster.Fragment, _ *raster.Uniforms) rgb.Color {
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	pattern := math.Abs(math.Sin(x*10) * math.Sin(y*10))

	return rgb.New(
		uint8(pattern*255),
		uint8((1-pattern)*255),
		128,
	)
}

// MovingCircles draws two white spots orbiting on sine/cosine paths.
func MovingCircles(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	t := u.Time * 0.05
	circle1X := math.Mod(math.Sin(t)*0.4+0.5, 1.0)
	circle2X := math.Mod(math.Cos(t)*0.4+0.5, 1.0)

	dist1 := math.Hypot(x-circle1X, y-0.3)
	dist2 := math.Hypot(x-circle2X, y-0.7)

	const circleSize = 0.1
	var circle1, circle2 float64
	if dist1 < circleSize {
		circle1 = 1
	}
	if dist2 < circleSize {
		circle2 = 1
	}

	intensity := math.Min(circle1+circle2, 1)
	v := uint8(intensity * 255)
	return rgb.New(v, v, v)
}

// Combined selects the moving-circle color when it is non-black, otherwise
// the static interference pattern, scaled by the fragment intensity.
func Combined(f *raster.Fragment, u *raster.Uniforms) rgb.Color {
	baseColor := StaticPattern(f, u)
	circleColor := MovingCircles(f, u)

	if !circleColor.IsBlack() {
		return circleColor.Scale(f.Intensity)
	}
	return baseColor.Scale(f.Intensity)
}
