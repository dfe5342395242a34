package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RowResult reports one completed canvas row
type RowResult struct {
	Row    int
	Pixels int
}

// RenderStats summarizes a finished render
type RenderStats struct {
	TotalRows   int
	TotalPixels int
	NumWorkers  int
}

// ProgressFunc is called after each completed row with the number of
// rows finished so far and the total row count.
type ProgressFunc func(completed, total int)

// RenderOptions configures a parallel render
type RenderOptions struct {
	NumWorkers int          // 0 means runtime.NumCPU()
	Progress   ProgressFunc // optional
}

// Render traces every pixel sequentially. Useful for tests and as the
// reference the parallel path must match exactly.
func (c *Camera) Render(w *world.World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(w, canvas, y)
	}
	return canvas
}

// RenderParallel renders with a pool of row workers. The world and
// camera are read-only during the render; each row belongs to exactly
// one worker, so canvas writes never overlap. The output is pixel
// identical to Render regardless of worker count.
func (c *Camera) RenderParallel(w *world.World, opts RenderOptions) (*Canvas, RenderStats) {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(c.HSize, c.VSize)
	taskQueue := make(chan int, c.VSize)
	resultQueue := make(chan RowResult, c.VSize)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range taskQueue {
				c.renderRow(w, canvas, y)
				resultQueue <- RowResult{Row: y, Pixels: c.HSize}
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		taskQueue <- y
	}
	close(taskQueue)

	go func() {
		wg.Wait()
		close(resultQueue)
	}()

	stats := RenderStats{NumWorkers: numWorkers}
	for result := range resultQueue {
		stats.TotalRows++
		stats.TotalPixels += result.Pixels
		if opts.Progress != nil {
			opts.Progress(stats.TotalRows, c.VSize)
		}
	}

	return canvas, stats
}

// renderRow shades one canvas row
func (c *Camera) renderRow(w *world.World, canvas *Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.WritePixel(x, y, w.ColorAt(ray, world.MaxRecursionDepth))
	}
}
