package noise

import (
	"math"
	"testing"
)

func TestSamplerDeterminism(t *testing.T) {
	cfgs := []Config{
		{Kind: OpenSimplex, Seed: 1337},
		{Kind: Perlin, Seed: 42, Fractal: FractalFBm, Octaves: 6, Frequency: 0.002},
		{Kind: Cellular, Seed: 1330, Fractal: FractalFBm, Octaves: 6, Lacunarity: 1.48, Frequency: 0.005},
	}

	for _, cfg := range cfgs {
		a := New(cfg)
		b := New(cfg)
		for _, p := range [][2]float64{{0, 0}, {1.5, -3.2}, {100, 250}, {-40, 7}} {
			if a.Sample2D(p[0], p[1]) != b.Sample2D(p[0], p[1]) {
				t.Errorf("kind %d: same seed diverged at %v", cfg.Kind, p)
			}
			if a.Sample3D(p[0], p[1], 5) != b.Sample3D(p[0], p[1], 5) {
				t.Errorf("kind %d: same seed diverged in 3D at %v", cfg.Kind, p)
			}
		}
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	a := New(Config{Kind: OpenSimplex, Seed: 1})
	b := New(Config{Kind: OpenSimplex, Seed: 2})

	same := true
	for _, p := range [][2]float64{{10, 20}, {33, -7}, {250, 111}} {
		if a.Sample2D(p[0], p[1]) != b.Sample2D(p[0], p[1]) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestSamplerRange(t *testing.T) {
	fields := map[string]*Sampler{
		"simplex":      New(Config{Kind: OpenSimplex, Seed: 9}),
		"perlin fbm":   New(Config{Kind: Perlin, Seed: 9, Fractal: FractalFBm}),
		"cellular fbm": New(Config{Kind: Cellular, Seed: 9, Fractal: FractalFBm}),
	}

	for name, s := range fields {
		for x := -50.0; x <= 50; x += 7.3 {
			for y := -50.0; y <= 50; y += 7.3 {
				v := s.Sample2D(x, y)
				if math.IsNaN(v) || v < -1.0001 || v > 1.0001 {
					t.Fatalf("%s: value %v at (%v,%v) outside [-1,1]", name, v, x, y)
				}
				v = s.Sample3D(x, y, x+y)
				if math.IsNaN(v) || v < -1.0001 || v > 1.0001 {
					t.Fatalf("%s: 3D value %v at (%v,%v) outside [-1,1]", name, v, x, y)
				}
			}
		}
	}
}

func TestFractalDiffersFromBase(t *testing.T) {
	base := New(Config{Kind: OpenSimplex, Seed: 5, Frequency: 0.1})
	fbm := New(Config{Kind: OpenSimplex, Seed: 5, Frequency: 0.1, Fractal: FractalFBm, Octaves: 4})

	diff := false
	for _, p := range [][2]float64{{3, 4}, {10, -2}, {77, 13}} {
		if base.Sample2D(p[0], p[1]) != fbm.Sample2D(p[0], p[1]) {
			diff = true
		}
	}
	if !diff {
		t.Error("fbm output identical to the single-octave base")
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Kind: OpenSimplex, Seed: 1})
	if s.cfg.Frequency != 0.01 || s.cfg.Octaves != 3 || s.cfg.Lacunarity != 2.0 || s.cfg.Gain != 0.5 {
		t.Errorf("defaults not applied: %+v", s.cfg)
	}
}

func TestPresetsConstruct(t *testing.T) {
	presets := []*Sampler{
		DefaultField(), CloudField(), LavaField(), DalmataField(),
		NeonField(), CombinedField(), SunField(),
		CellField(), GroundField(), StaticField(),
	}
	for i, p := range presets {
		if p == nil {
			t.Fatalf("preset %d is nil", i)
		}
		// Must be usable as a Field.
		var f Field = p
		if v := f.Sample2D(1, 2); math.IsNaN(v) {
			t.Fatalf("preset %d returned NaN", i)
		}
	}
}

func TestCellularRange(t *testing.T) {
	c := cellularBasis{seed: 42}
	for x := -20.0; x <= 20; x += 1.7 {
		for y := -20.0; y <= 20; y += 1.7 {
			v := c.eval2(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("cellular value %v outside [-1,1]", v)
			}
			v = c.eval3(x, y, x*0.5)
			if v < -1 || v > 1 {
				t.Fatalf("cellular 3D value %v outside [-1,1]", v)
			}
		}
	}
}
