package fractalgarden

import (
	"image/color"
	"math"
)

// Box is an axis-aligned region of 3D space used to pin the plot limits.
type Box struct {
	Min, Max Point3D
}

func (b Box) corners() []Point3D {
	return []Point3D{
		P3(b.Min.X, b.Min.Y, b.Min.Z), P3(b.Max.X, b.Min.Y, b.Min.Z),
		P3(b.Min.X, b.Max.Y, b.Min.Z), P3(b.Max.X, b.Max.Y, b.Min.Z),
		P3(b.Min.X, b.Min.Y, b.Max.Z), P3(b.Max.X, b.Min.Y, b.Max.Z),
		P3(b.Min.X, b.Max.Y, b.Max.Z), P3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}

// PlotOptions controls a single rendered figure.
type PlotOptions struct {
	Width, Height int
	Title         string
	View          View
	Limits        *Box // nil fits the data
	Color         color.RGBA
	PointRadius   int
}

func (o PlotOptions) withDefaults(col color.RGBA) PlotOptions {
	if o.Width <= 0 {
		o.Width = ImageWidth
	}
	if o.Height <= 0 {
		o.Height = ImageHeight
	}
	if o.Color == (color.RGBA{}) {
		o.Color = col
	}
	return o
}

// Frame maps plot coordinates to pixels, keeping the aspect ratio and
// flipping Y so up is up.
type Frame struct {
	scale      Real
	cx, cy     Real
	midX, midY Real
}

// NewFrame fits pts into a w×h canvas with pad pixels of margin.
func NewFrame(pts []Point2D, w, h, pad int) Frame {
	if len(pts) == 0 {
		return newFrame(-1, 1, -1, 1, w, h, pad)
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if minX > maxX {
		return newFrame(-1, 1, -1, 1, w, h, pad)
	}
	return newFrame(minX, maxX, minY, maxY, w, h, pad)
}

func newFrame(minX, maxX, minY, maxY Real, w, h, pad int) Frame {
	spanX, spanY := maxX-minX, maxY-minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	availW := Real(imax(w-2*pad, 1))
	availH := Real(imax(h-2*pad, 1))
	return Frame{
		scale: math.Min(availW/spanX, availH/spanY),
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		midX:  Real(w) / 2,
		midY:  Real(h) / 2,
	}
}

// ToPixel returns the pixel coordinates of p.
func (f Frame) ToPixel(p Point2D) (int, int) {
	x := f.midX + (p.X-f.cx)*f.scale
	y := f.midY - (p.Y-f.cy)*f.scale
	return int(math.Round(x)), int(math.Round(y))
}

// PlotFern draws fern samples as single pixels.
func PlotFern(pts []Point2D, o PlotOptions) *Canvas {
	o = o.withDefaults(ColorFern)
	c := NewCanvas(o.Width, o.Height, ColorBackground)
	f := NewFrame(pts, o.Width, o.Height, FramePad)
	for _, p := range pts {
		x, y := f.ToPixel(p)
		c.Plot(x, y, o.PointRadius, o.Color)
	}
	c.Caption(o.Title, ColorCaption)
	return c
}

// PlotPoints3D projects a point cloud through o.View.
func PlotPoints3D(pts []Point3D, o PlotOptions) *Canvas {
	o = o.withDefaults(ColorShell)
	c := NewCanvas(o.Width, o.Height, ColorBackground)
	proj := o.View.ProjectAll(pts)
	f := frame3D(proj, o)
	for _, p := range proj {
		x, y := f.ToPixel(p)
		c.Plot(x, y, o.PointRadius, o.Color)
	}
	c.Caption(o.Title, ColorCaption)
	return c
}

// PlotShell is PlotPoints3D with shell colors.
func PlotShell(pts []Point3D, o PlotOptions) *Canvas {
	return PlotPoints3D(pts, o.withDefaults(ColorShell))
}

// PlotTree draws every branch as a line whose width tracks how close to the
// trunk it is.
func PlotTree(branches []Branch, o PlotOptions) *Canvas {
	o = o.withDefaults(ColorTree)
	c := NewCanvas(o.Width, o.Height, ColorBackground)
	levels := 0
	ends := make([]Point3D, 0, 2*len(branches))
	for _, b := range branches {
		levels = imax(levels, b.Level+1)
		ends = append(ends, b.Start, b.End)
	}
	f := frame3D(o.View.ProjectAll(ends), o)
	for _, b := range branches {
		x0, y0 := f.ToPixel(o.View.Project(b.Start))
		x1, y1 := f.ToPixel(o.View.Project(b.End))
		c.Line(x0, y0, x1, y1, imax(levels-b.Level, 1), o.Color)
	}
	c.Caption(o.Title, ColorCaption)
	return c
}

func frame3D(proj []Point2D, o PlotOptions) Frame {
	if o.Limits != nil {
		return NewFrame(o.View.ProjectAll(o.Limits.corners()), o.Width, o.Height, FramePad)
	}
	return NewFrame(proj, o.Width, o.Height, FramePad)
}
