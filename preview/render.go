package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/tsawler/pdf2dxf/model"
)

// StepsPerTurn is the number of chords used for a full circle
const StepsPerTurn = 64

// markerSize is the half-length of a text anchor cross in pixels
const markerSize = 3

// Options configures rendering
type Options struct {
	// MaxSize is the largest image dimension in pixels
	MaxSize int

	// Margin is the blank border in pixels
	Margin int

	// StrokeWidth is the line width in pixels
	StrokeWidth float64
}

// DefaultOptions returns a 2048 px canvas with a 16 px margin and 1 px strokes
func DefaultOptions() Options {
	return Options{MaxSize: 2048, Margin: 16, StrokeWidth: 1}
}

// canvas maps geometry coordinates into image pixels and strokes lines
type canvas struct {
	ras    *vector.Rasterizer
	minX   float64
	minY   float64
	scale  float64
	margin float64
	height float64
	half   float64
}

// Render draws g into a new image
func Render(g model.Geometry, opts Options) *image.RGBA {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultOptions().MaxSize
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}

	bounds, ok := g.Bounds()
	margin := opts.Margin
	if 2*margin >= opts.MaxSize {
		margin = 0
	}
	if !ok || !finite(bounds) {
		img := image.NewRGBA(image.Rect(0, 0, 2*margin+1, 2*margin+1))
		draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
		return img
	}

	avail := float64(opts.MaxSize - 2*margin)
	scale := 1.0
	if extent := math.Max(bounds.Width, bounds.Height); extent > 0 {
		scale = avail / extent
	}
	w := int(math.Ceil(bounds.Width*scale)) + 2*margin + 1
	h := int(math.Ceil(bounds.Height*scale)) + 2*margin + 1

	c := &canvas{
		ras:    vector.NewRasterizer(w, h),
		minX:   bounds.X,
		minY:   bounds.Y,
		scale:  scale,
		margin: float64(margin),
		height: float64(h),
		half:   opts.StrokeWidth / 2,
	}

	for _, pl := range g.Polylines {
		c.polyline(pl.Points)
	}
	for _, l := range g.Lines {
		c.line(l.Start(), l.End())
	}
	for _, ci := range g.Circles {
		c.polyline(arcPoints(ci.CX, ci.CY, ci.R, 0, 360))
	}
	for _, a := range g.Arcs {
		start, end := a.StartDeg, a.EndDeg
		if !a.CCW {
			start, end = end, start
		}
		c.polyline(arcPoints(a.CX, a.CY, a.R, start, sweepCCW(start, end)))
	}
	for _, t := range g.Texts {
		c.marker(model.Point{X: t.X, Y: t.Y})
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	c.ras.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img
}

// Encode writes img as PNG
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteFile renders g and writes the PNG to path
func WriteFile(path string, g model.Geometry, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview: %w", err)
	}
	if err := Encode(f, Render(g, opts)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func finite(b model.BBox) bool {
	for _, v := range []float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// sweepCCW returns the counter-clockwise sweep from start to end in (0, 360]
func sweepCCW(start, end float64) float64 {
	s := math.Mod(end-start, 360)
	if s <= 0 {
		s += 360
	}
	return s
}

// arcPoints samples a counter-clockwise arc
func arcPoints(cx, cy, r, startDeg, sweepDeg float64) []model.Point {
	steps := int(math.Ceil(StepsPerTurn * sweepDeg / 360))
	if steps < 1 {
		steps = 1
	}
	pts := make([]model.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := (startDeg + sweepDeg*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, model.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

func (c *canvas) toPixel(p model.Point) (float64, float64) {
	x := (p.X-c.minX)*c.scale + c.margin
	y := c.height - 1 - ((p.Y-c.minY)*c.scale + c.margin)
	return x, y
}

func (c *canvas) polyline(pts []model.Point) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i])
	}
}

// line strokes a segment as a quad around it. Every quad has the same
// winding so overlaps accumulate.
func (c *canvas) line(a, b model.Point) {
	ax, ay := c.toPixel(a)
	bx, by := c.toPixel(b)
	c.stroke(ax, ay, bx, by)
}

func (c *canvas) stroke(ax, ay, bx, by float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	if l == 0 {
		dx, dy, l = 1, 0, 1
		ax -= c.half
		bx += c.half
	}
	nx, ny := -dy/l*c.half, dx/l*c.half

	c.ras.MoveTo(float32(ax+nx), float32(ay+ny))
	c.ras.LineTo(float32(bx+nx), float32(by+ny))
	c.ras.LineTo(float32(bx-nx), float32(by-ny))
	c.ras.LineTo(float32(ax-nx), float32(ay-ny))
	c.ras.ClosePath()
}

func (c *canvas) marker(p model.Point) {
	x, y := c.toPixel(p)
	c.stroke(x-markerSize, y, x+markerSize, y)
	c.stroke(x, y-markerSize, x, y+markerSize)
}
