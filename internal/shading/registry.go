package shading

import "solar-renderer/internal/raster"

// registry is the closed set of selectable shaders. Selection happens once
// per draw call by name; there is no composition language.
var registry = map[string]raster.Shader{
	"dalmata":  Dalmata,
	"luna":     Luna,
	"cloud":    Cloud,
	"cellular": Cellular,
	"lava":     Lava,
	"earth":    Earth,
	"neon":     NeonLight,
	"static":   StaticPattern,
	"circles":  MovingCircles,
	"combined": Combined,
}

// ByName looks up a shader from the fixed set.
func ByName(name string) (raster.Shader, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names lists the registered shader names (unordered).
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}
