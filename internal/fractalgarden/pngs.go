package fractalgarden

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes the canvas as a lossless PNG, creating parent directories.
func SavePNG(c *Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Output, "[PNG]  %s\n", path)
	return nil
}
