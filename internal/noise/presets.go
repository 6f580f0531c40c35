package noise

// Per-material presets. Seeds and fractal parameters are part of each
// material's visual identity; changing them changes the rendered surfaces.

// DefaultField is the general-purpose cellular field used when no material
// preset applies.
func DefaultField() *Sampler {
	return New(Config{
		Kind:       Cellular,
		Seed:       1330,
		Fractal:    FractalFBm,
		Lacunarity: 1.480,
		Octaves:    6,
		Frequency:  0.005,
	})
}

// CloudField drives the cloud and moon surfaces.
func CloudField() *Sampler {
	return New(Config{Kind: OpenSimplex, Seed: 1337})
}

// LavaField drives the lava planet: layered Perlin for a turbulent feel.
func LavaField() *Sampler {
	return New(Config{
		Kind:       Perlin,
		Seed:       42,
		Fractal:    FractalFBm,
		Octaves:    6,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  0.002,
	})
}

// DalmataField drives the spotted planet.
func DalmataField() *Sampler {
	return New(Config{
		Kind:      OpenSimplex,
		Seed:      1337,
		Frequency: 0.3,
		Fractal:   FractalFBm,
	})
}

// NeonField drives the neon planet's stripes.
func NeonField() *Sampler {
	return New(Config{
		Kind:      OpenSimplex,
		Seed:      8888,
		Frequency: 0.02,
		Fractal:   FractalFBm,
		Octaves:   5,
		Gain:      0.45,
	})
}

// CellField is a raw cellular field for crack-like detail.
func CellField() *Sampler {
	return New(Config{
		Kind:      Cellular,
		Seed:      1337,
		Frequency: 0.1,
	})
}

// GroundField layers cellular octaves for rocky surfaces.
func GroundField() *Sampler {
	return New(Config{
		Kind:       Cellular,
		Seed:       1337,
		Fractal:    FractalFBm,
		Octaves:    5,
		Lacunarity: 2.0,
		Gain:       0.5,
		Frequency:  0.05,
	})
}

// StaticField is a single-octave Perlin field for fixed interference
// patterns.
func StaticField() *Sampler {
	return New(Config{
		Kind:      Perlin,
		Seed:      9999,
		Frequency: 0.08,
	})
}

// CombinedField drives the ringed planet.
func CombinedField() *Sampler {
	return New(Config{
		Kind:       Cellular,
		Seed:       1234,
		Fractal:    FractalFBm,
		Frequency:  0.03,
		Octaves:    6,
		Gain:       0.5,
		Lacunarity: 2.0,
	})
}

// SunField drives the sun surface.
func SunField() *Sampler {
	return New(Config{
		Kind:       OpenSimplex,
		Seed:       12345,
		Frequency:  0.02,
		Fractal:    FractalFBm,
		Octaves:    5,
		Gain:       0.6,
		Lacunarity: 2.5,
	})
}
