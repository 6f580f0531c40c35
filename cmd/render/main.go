package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-renderer/internal/batch"
	"solar-renderer/internal/config"
	"solar-renderer/internal/obj"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 300)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Frames:      *frames,
		Quality:     *quality,
		Workers:     *workers,
		Supersample: *supersample,
	})

	background, err := cfg.BackgroundColor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Planet mesh: generated sphere, or an OBJ override
	var sphere []raster.Vertex
	if cfg.SphereOBJ != "" {
		sphere, err = obj.Load(cfg.SphereOBJ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading sphere model: %v\n", err)
			os.Exit(1)
		}
	} else {
		sphere = scene.SphereMesh(24, 48)
	}
	ring := scene.RingMesh(1.2, 1.8, 64)

	// Scene is built at the supersampled resolution
	s := scene.New(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample, sphere, ring)

	if cfg.Skybox != "" {
		tex, err := texture.Load(cfg.Skybox)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skybox load: %v\n", err)
		} else {
			s.Skybox = tex
		}
	}

	// Print summary
	fmt.Println("Solar System Renderer → WebP")
	fmt.Printf("Frames: %d @ %dx%d (x%d supersample), Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Scene:       s,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		FPS:         cfg.FPS,
		Background:  background,
		Supersample: cfg.Supersample,
		WebPQuality: cfg.WebPQuality,
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg, cfg.Frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.Frames, cfg.FPS); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
