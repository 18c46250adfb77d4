package fractalgarden

import (
	"fmt"
	"path/filepath"
	"time"
)

// Run loads cfgPath (empty for defaults), generates every enabled pattern and
// writes the rendered images.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if !cfg.Fern.Skip {
		if err := runFern(cfg); err != nil {
			return fmt.Errorf("fern: %w", err)
		}
	}
	if !cfg.Shell.Skip {
		if err := runShell(cfg); err != nil {
			return fmt.Errorf("seashell: %w", err)
		}
	}
	if !cfg.Tree.Skip {
		if err := runTree(cfg); err != nil {
			return fmt.Errorf("tree: %w", err)
		}
	}
	return nil
}

func (c *Config) outPath(name string) string {
	if c.OutDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutDir, name)
}

func runFern(cfg *Config) error {
	ifs, n, err := cfg.Fern.Build()
	if err != nil {
		return err
	}
	start := time.Now()
	pts, err := ifs.Generate(n)
	if err != nil {
		return err
	}
	DebugLog("fern: %d points in %s", len(pts), time.Since(start))

	fmt.Fprintln(Output, "Plotting the fern...")
	c := PlotFern(pts, PlotOptions{Width: cfg.Width, Height: cfg.Height, Title: "Barnsley Fern"})
	return SavePNG(c, cfg.outPath(cfg.Fern.Out))
}

func runShell(cfg *Config) error {
	params, err := cfg.Shell.Build()
	if err != nil {
		return err
	}
	start := time.Now()
	pts, err := GenerateShell(params)
	if err != nil {
		return err
	}
	pts = RotatePoints(pts, cfg.Shell.RotDeg.Radians())
	DebugLog("seashell: %d points in %s", len(pts), time.Since(start))

	fmt.Fprintln(Output, "Plotting seashell...")
	opts := PlotOptions{Width: cfg.Width, Height: cfg.Height, View: cfg.Shell.View.View(), Title: "Double Seashell"}
	if err := SavePNG(PlotShell(pts, opts), cfg.outPath(cfg.Shell.Out)); err != nil {
		return err
	}
	if !GIF || cfg.Shell.GIFOut == "" || cfg.GIFFrames == 0 {
		return nil
	}
	frames := RenderTurntable(opts.View, cfg.GIFFrames, func(v View) *Canvas {
		o := opts
		o.View = v
		return PlotShell(pts, o)
	})
	return SaveAnimatedGIF(frames, cfg.outPath(cfg.Shell.GIFOut), cfg.GIFDelay)
}

func runTree(cfg *Config) error {
	params, err := cfg.Tree.Build()
	if err != nil {
		return err
	}
	start := time.Now()
	branches, err := GenerateTree(params)
	if err != nil {
		return err
	}
	DebugLog("tree: %d branches in %s", len(branches), time.Since(start))

	fmt.Fprintln(Output, "Plotting the fractal tree...")
	opts := PlotOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		View:   cfg.Tree.View.View(),
		Limits: cfg.Tree.Limits.Box(),
		Title:  "Fractal Tree",
	}
	if err := SavePNG(PlotTree(branches, opts), cfg.outPath(cfg.Tree.Out)); err != nil {
		return err
	}
	if !GIF || cfg.Tree.GIFOut == "" || cfg.GIFFrames == 0 {
		return nil
	}
	frames := RenderTurntable(opts.View, cfg.GIFFrames, func(v View) *Canvas {
		o := opts
		o.View = v
		return PlotTree(branches, o)
	})
	return SaveAnimatedGIF(frames, cfg.outPath(cfg.Tree.GIFOut), cfg.GIFDelay)
}
