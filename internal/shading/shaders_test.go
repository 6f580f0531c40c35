package shading

import (
	"testing"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
)

// constField returns a fixed value regardless of coordinates, making the
// threshold ladders directly testable.
type constField struct{ v float64 }

func (c constField) Sample2D(x, y float64) float64    { return c.v }
func (c constField) Sample3D(x, y, z float64) float64 { return c.v }

func frag(x, y, intensity float64) *raster.Fragment {
	return &raster.Fragment{
		VertexPosition: mathutil.Vec3{x, y, 0},
		Intensity:      intensity,
	}
}

func uniformsWith(v float64) *raster.Uniforms {
	return &raster.Uniforms{Noise: constField{v}}
}

func TestDalmata(t *testing.T) {
	tests := []struct {
		name  string
		noise float64
		want  rgb.Color
	}{
		{"below threshold is spot white", 0.0, rgb.New(255, 255, 255)},
		{"above threshold is base black", 0.9, rgb.Black()},
		{"negative noise is spot", -0.8, rgb.New(255, 255, 255)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dalmata(frag(0.1, 0.2, 1), uniformsWith(tc.noise))
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("intensity scales", func(t *testing.T) {
		got := Dalmata(frag(0.1, 0.2, 0.5), uniformsWith(0))
		if got != rgb.New(127, 127, 127) {
			t.Errorf("got %v, want half white", got)
		}
	})
}

func TestLuna(t *testing.T) {
	if got := Luna(frag(0, 0, 1), uniformsWith(0)); got != rgb.New(135, 135, 135) {
		t.Errorf("spot tone = %v, want 135 gray", got)
	}
	if got := Luna(frag(0, 0, 1), uniformsWith(0.9)); got != rgb.New(191, 191, 191) {
		t.Errorf("base tone = %v, want 191 gray", got)
	}
}

func TestCloud(t *testing.T) {
	if got := Cloud(frag(0, 0, 1), uniformsWith(0.9)); got != rgb.New(255, 255, 255) {
		t.Errorf("cloud = %v, want white", got)
	}
	if got := Cloud(frag(0, 0, 1), uniformsWith(0.1)); got != rgb.New(30, 97, 145) {
		t.Errorf("sky = %v, want sky blue", got)
	}
}

func TestCellularLadder(t *testing.T) {
	tests := []struct {
		noise float64
		want  rgb.Color
	}{
		{0.1, rgb.New(85, 107, 47)},
		{0.5, rgb.New(124, 252, 0)},
		{0.72, rgb.New(34, 139, 34)},
		{0.9, rgb.New(39, 101, 167)},
		// Negative noise folds through the absolute value.
		{-0.5, rgb.New(124, 252, 0)},
	}
	for _, tc := range tests {
		got := Cellular(frag(0, 0, 1), uniformsWith(tc.noise))
		if got != tc.want {
			t.Errorf("noise %v: got %v, want %v", tc.noise, got, tc.want)
		}
	}
}

func TestLava(t *testing.T) {
	if got := Lava(frag(0, 0, 1), uniformsWith(1)); got != rgb.New(255, 240, 0) {
		t.Errorf("noise 1 = %v, want full bright", got)
	}
	if got := Lava(frag(0, 0, 1), uniformsWith(0)); got != rgb.New(130, 20, 0) {
		t.Errorf("noise 0 = %v, want full dark", got)
	}
	// Negative noise clamps at the dark end rather than overshooting.
	if got := Lava(frag(0, 0, 1), uniformsWith(-1)); got != rgb.New(130, 20, 0) {
		t.Errorf("noise -1 = %v, want clamped dark", got)
	}
}

func TestEarth(t *testing.T) {
	// One field drives both layers here, so a high value selects the last
	// ladder step and a cloud on top of it.
	got := Earth(frag(0, 0, 1), uniformsWith(0.9))
	want := rgb.New(255, 255, 255).Scale(0.5).Add(rgb.New(133, 98, 57).Scale(0.5))
	if got != want {
		t.Errorf("clouded land = %v, want %v", got, want)
	}

	// Low value: ocean base, no cloud layer.
	if got := Earth(frag(0, 0, 1), uniformsWith(0.3)); got != rgb.New(2, 100, 177) {
		t.Errorf("ocean = %v, want ocean blue", got)
	}
}

func TestStaticPattern(t *testing.T) {
	// sin(0) kills the pattern term at the origin.
	if got := StaticPattern(frag(0, 0, 1), nil); got != rgb.New(0, 255, 128) {
		t.Errorf("origin = %v, want pattern minimum", got)
	}
}

func TestMovingCircles(t *testing.T) {
	// At t=0 the first circle sits at x=0.5, y=0.3.
	u := &raster.Uniforms{}
	if got := MovingCircles(frag(0.5, 0.3, 1), u); got != rgb.New(255, 255, 255) {
		t.Errorf("inside circle = %v, want white", got)
	}
	if got := MovingCircles(frag(0.0, 0.0, 1), u); !got.IsBlack() {
		t.Errorf("outside circles = %v, want black", got)
	}
}

func TestCombined(t *testing.T) {
	u := uniformsWith(0)
	// The circle layer wins where it is lit.
	if got := Combined(frag(0.5, 0.3, 1), u); got != rgb.New(255, 255, 255) {
		t.Errorf("circle area = %v, want white", got)
	}
	// Elsewhere the static pattern shows through.
	if got := Combined(frag(0, 0, 1), u); got != rgb.New(0, 255, 128) {
		t.Errorf("pattern area = %v, want static pattern", got)
	}
}

func TestNeonLight(t *testing.T) {
	// y=0.1 is a stripe center: full glow and core.
	center := NeonLight(frag(0, 0.1, 1), nil)
	if center.B != 255 {
		t.Errorf("stripe center blue = %d, want saturated", center.B)
	}

	// y=0 is the stripe boundary, max distance from the center: no core,
	// no glow, only the dark background.
	edge := NeonLight(frag(0, 0, 1), nil)
	if edge != rgb.New(10, 10, 20) {
		t.Errorf("stripe edge = %v, want bare background", edge)
	}

	// Intensity 0 blacks everything out.
	if got := NeonLight(frag(0, 0.1, 0), nil); !got.IsBlack() {
		t.Errorf("unlit fragment = %v, want black", got)
	}
}

func TestBlendDemo(t *testing.T) {
	inside := frag(0, 0, 1)   // inside the yellow circle
	outside := frag(0.5, 0.5, 1)

	tests := []struct {
		name        string
		mode        BlendMode
		wantInside  rgb.Color
		wantOutside rgb.Color
	}{
		{"normal", BlendNormal, rgb.New(255, 255, 0), rgb.New(128, 0, 128)},
		{"multiply", BlendMultiply, rgb.New(128, 0, 0), rgb.Black()},
		{"add", BlendAdd, rgb.New(255, 255, 128), rgb.New(128, 0, 128)},
		{"subtract", BlendSubtract, rgb.New(0, 0, 128), rgb.New(128, 0, 128)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shader := NewBlendDemo(tc.mode)
			if got := shader(inside, nil); got != tc.wantInside {
				t.Errorf("inside = %v, want %v", got, tc.wantInside)
			}
			if got := shader(outside, nil); got != tc.wantOutside {
				t.Errorf("outside = %v, want %v", got, tc.wantOutside)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"dalmata", "luna", "cloud", "cellular", "lava", "earth", "neon", "static", "circles", "combined"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("shader %q missing from registry", name)
		}
	}
	if _, ok := ByName("nope"); ok {
		t.Error("unknown name resolved to a shader")
	}
	if len(Names()) != 10 {
		t.Errorf("Names() returned %d entries, want 10", len(Names()))
	}
}
