package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.List(), ", "))
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 450, "Canvas height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.List() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	if err := run(*sceneName, *width, *height, *workers, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height, workers int, output string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}

	s, err := scene.New(sceneName, width, height)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutputPath(sceneName)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	fmt.Printf("Rendering %q at %dx%d...\n", sceneName, width, height)

	startTime := time.Now()
	canvas, stats := s.Camera.RenderParallel(s.World, renderer.RenderOptions{
		NumWorkers: workers,
		Progress: func(completed, total int) {
			if completed%50 == 0 || completed == total {
				fmt.Printf("  %d/%d rows\n", completed, total)
			}
		},
	})
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%d pixels, %d workers)\n",
		renderTime, stats.TotalPixels, stats.NumWorkers)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}

// defaultOutputPath builds output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}
