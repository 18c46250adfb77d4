package fractalgarden

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	ColorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorCaption    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ColorFern       = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff} // green
	ColorShell      = color.RGBA{R: 0xda, G: 0xa5, B: 0x20, A: 0xff} // goldenrod
	ColorTree       = color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff} // brown
)

// Canvas is an RGBA raster that also satisfies drivers.Displayer, so the
// tinyfont text routines can draw on it.
type Canvas struct {
	img *image.NRGBA
}

func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
	c.Fill(bg)
	return c
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

func (c *Canvas) Size() (x, y int16) {
	return int16(c.Width()), int16(c.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display is a no-op; the image is written out by SavePNG or SaveAnimatedGIF.
func (c *Canvas) Display() error { return nil }

func (c *Canvas) set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	p := c.img.PixOffset(x, y)
	c.img.Pix[p+0] = col.R
	c.img.Pix[p+1] = col.G
	c.img.Pix[p+2] = col.B
	c.img.Pix[p+3] = col.A
}

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return color.RGBA{}
	}
	p := c.img.PixOffset(x, y)
	return color.RGBA{R: c.img.Pix[p], G: c.img.Pix[p+1], B: c.img.Pix[p+2], A: c.img.Pix[p+3]}
}

func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// Plot draws a filled disc of radius r centred on (x, y); r == 0 is one pixel.
func (c *Canvas) Plot(x, y, r int, col color.RGBA) {
	if r <= 0 {
		c.set(x, y, col)
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.set(x+dx, y+dy, col)
			}
		}
	}
}

// Line draws a segment with Bresenham's algorithm, stamping a disc of
// width/2 at each step.
func (c *Canvas) Line(x0, y0, x1, y1, width int, col color.RGBA) {
	r := width / 2
	dx, dy := x1-x0, y1-y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Plot(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Caption writes text centred along the top edge.
func (c *Canvas) Caption(text string, col color.RGBA) {
	if text == "" {
		return
	}
	font := &freemono.Regular9pt7b
	_, outbox := tinyfont.LineWidth(font, text)
	x := clampInt((c.Width()-int(outbox))/2, 0, c.Width())
	tinyfont.WriteLine(c, font, int16(x), int16(FramePad/2+8), text, col)
}
