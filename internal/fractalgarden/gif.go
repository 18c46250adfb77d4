package fractalgarden

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// RenderTurntable renders frames views of a 3D plot, turning the azimuth a
// full circle. Frames are rendered in parallel; render must be safe to call
// concurrently.
func RenderTurntable(base View, frames int, render func(View) *Canvas) []*Canvas {
	if frames <= 0 {
		return nil
	}
	out := make([]*Canvas, frames)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > frames {
		workers = frames
	}

	step := 360.0 / Real(frames)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				out[k] = render(base.Turn(Real(k) * step))
			}
		}()
	}
	for k := 0; k < frames; k++ {
		if k%max(1, frames/10) == 0 {
			percent := Real(k+1) * 100 / Real(frames)
			fmt.Fprintf(Output, "[GIF] %.2f%%\n", percent)
		}
		jobs <- k
	}
	close(jobs)
	wg.Wait()
	return out
}

// SaveAnimatedGIF writes one GIF frame per canvas.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*Canvas, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write to %s", path)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, c := range frames {
		// Quantize to paletted for GIF
		img := c.Image()
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	fmt.Fprintf(Output, "[GIF]  %s\n", path)
	return nil
}
