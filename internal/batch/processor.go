package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/rgb"
	"solar-renderer/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run. The scene is built at
// the supersampled resolution; frames are downsampled to Width x Height
// before encoding.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Width       int
	Height      int
	FPS         float64
	Background  rgb.Color
	Supersample int
	WebPQuality int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Success bool
	Error   string
}

// Run renders all frames using a worker pool. Each worker owns its frame
// buffer; the scene is shared read-only.
func Run(cfg Config, frames int) []Result {
	results := make([]Result, frames)
	var processed atomic.Int64

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Error: err.Error()}
		}
		return results
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, frames, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb := raster.NewFrameBuffer(cfg.Scene.Width, cfg.Scene.Height)
			fb.SetBackground(cfg.Background)
			for frame := range frameChan {
				results[frame] = renderFrame(cfg, fb, frame)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, fb *raster.FrameBuffer, frame int) Result {
	t := float64(frame) / cfg.FPS
	cfg.Scene.RenderFrame(fb, t)

	img := fb.ToNRGBA()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, FrameName(frame))
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Success: true}
}

// FrameName returns the output file name for a frame index.
func FrameName(frame int) string {
	return fmt.Sprintf("frame_%04d.webp", frame)
}
