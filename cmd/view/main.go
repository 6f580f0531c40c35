// Command view opens an interactive window on the solar system. Rendering
// stays on the CPU; the window only blits the finished frame.
//
// Controls: 1-8 focus a body, arrows orbit the camera, W/S zoom,
// space pauses time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solar-renderer/internal/config"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/texture"
)

const tps = 60

type game struct {
	scene  *scene.Scene
	fb     *raster.FrameBuffer
	t      float64
	paused bool
}

var focusKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.t += 1.0 / tps
	}

	const (
		orbitStep = 0.03
		zoomStep  = 0.3
	)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.scene.Camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.scene.Camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scene.Camera.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scene.Camera.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.scene.Camera.Zoom(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.scene.Camera.Zoom(-zoomStep)
	}

	for i, key := range focusKeys {
		if i >= len(g.scene.Bodies) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			b := g.scene.Bodies[i]
			g.scene.Camera.FocusOn(b.TranslationAt(g.t), b.Scale+2)
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.RenderFrame(g.fb, g.t)
	screen.WritePixels(g.fb.RGBA())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Width, g.scene.Height
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	background, err := cfg.BackgroundColor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Interactive rendering at native resolution, no supersampling.
	s := scene.New(cfg.Width, cfg.Height, scene.SphereMesh(16, 32), scene.RingMesh(1.2, 1.8, 64))

	if cfg.Skybox != "" {
		tex, err := texture.Load(cfg.Skybox)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skybox load: %v\n", err)
		} else {
			s.Skybox = tex
		}
	}

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	fb.SetBackground(background)

	ebiten.SetWindowTitle("Solar System")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(&game{scene: s, fb: fb}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
