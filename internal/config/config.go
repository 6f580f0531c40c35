package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"solar-renderer/internal/rgb"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	SphereOBJ string `json:"sphere_obj"` // optional mesh override for planets
	Skybox    string `json:"skybox"`     // optional background image

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	Background  string  `json:"background"` // hex RRGGBB
	Supersample int     `json:"supersample"`
	WebPQuality int     `json:"webp_quality"`
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1300
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 300
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Background == "" {
		c.Background = "333355"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
}

// BackgroundColor parses the Background hex field ("333355", "#333355" or
// "0x333355").
func (c *Config) BackgroundColor() (rgb.Color, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(c.Background, "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb.Color{}, fmt.Errorf("config: background %q: %w", c.Background, err)
	}
	return rgb.FromHex(uint32(v)), nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Frames      int
	Quality     int
	Workers     int
	Supersample int
}
