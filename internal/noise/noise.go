// Package noise provides the procedural noise fields sampled by the
// fragment shaders. A Sampler is a deterministic function of its inputs:
// the same seed and coordinates always yield the same value, nominally
// in [-1, 1].
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field is the sampling interface the pipeline consumes. Implementations
// must be safe for concurrent reads.
type Field interface {
	Sample2D(x, y float64) float64
	Sample3D(x, y, z float64) float64
}

// Kind selects the base noise function.
type Kind int

const (
	OpenSimplex Kind = iota
	Perlin
	Cellular
)

// FractalType selects how octaves are combined.
type FractalType int

const (
	FractalNone FractalType = iota
	FractalFBm
)

// Config describes a noise field. Zero values fall back to the defaults
// applied by New: frequency 0.01, 3 octaves, lacunarity 2, gain 0.5.
type Config struct {
	Kind       Kind
	Seed       int64
	Frequency  float64
	Fractal    FractalType
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// Sampler evaluates a configured noise field.
type Sampler struct {
	cfg  Config
	base basis
}

// basis is a raw noise function before frequency and fractal shaping.
type basis interface {
	eval2(x, y float64) float64
	eval3(x, y, z float64) float64
}

// New builds a Sampler for cfg, filling unset fields with defaults.
func New(cfg Config) *Sampler {
	if cfg.Frequency == 0 {
		cfg.Frequency = 0.01
	}
	if cfg.Octaves == 0 {
		cfg.Octaves = 3
	}
	if cfg.Lacunarity == 0 {
		cfg.Lacunarity = 2.0
	}
	if cfg.Gain == 0 {
		cfg.Gain = 0.5
	}

	var b basis
	switch cfg.Kind {
	case Perlin:
		b = perlinBasis{perlin.NewPerlin(2, 2, 3, cfg.Seed)}
	case Cellular:
		b = cellularBasis{seed: cfg.Seed}
	default:
		b = simplexBasis{opensimplex.New(cfg.Seed)}
	}

	return &Sampler{cfg: cfg, base: b}
}

// Sample2D returns the field value at (x, y).
func (s *Sampler) Sample2D(x, y float64) float64 {
	x *= s.cfg.Frequency
	y *= s.cfg.Frequency
	if s.cfg.Fractal == FractalNone {
		return s.base.eval2(x, y)
	}

	var sum, amp, norm float64
	amp = 1
	for o := 0; o < s.cfg.Octaves; o++ {
		sum += s.base.eval2(x, y) * amp
		norm += amp
		amp *= s.cfg.Gain
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
	}
	return sum / norm
}

// Sample3D returns the field value at (x, y, z).
func (s *Sampler) Sample3D(x, y, z float64) float64 {
	x *= s.cfg.Frequency
	y *= s.cfg.Frequency
	z *= s.cfg.Frequency
	if s.cfg.Fractal == FractalNone {
		return s.base.eval3(x, y, z)
	}

	var sum, amp, norm float64
	amp = 1
	for o := 0; o < s.cfg.Octaves; o++ {
		sum += s.base.eval3(x, y, z) * amp
		norm += amp
		amp *= s.cfg.Gain
		x *= s.cfg.Lacunarity
		y *= s.cfg.Lacunarity
		z *= s.cfg.Lacunarity
	}
	return sum / norm
}

type simplexBasis struct {
	n opensimplex.Noise
}

func (b simplexBasis) eval2(x, y float64) float64    { return b.n.Eval2(x, y) }
func (b simplexBasis) eval3(x, y, z float64) float64 { return b.n.Eval3(x, y, z) }

type perlinBasis struct {
	p *perlin.Perlin
}

func (b perlinBasis) eval2(x, y float64) float64    { return b.p.Noise2D(x, y) }
func (b perlinBasis) eval3(x, y, z float64) float64 { return b.p.Noise3D(x, y, z) }
