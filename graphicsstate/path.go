package graphicsstate

import (
	"github.com/tsawler/pdf2dxf/model"
)

// DefaultCurveSteps is the number of straight pieces a cubic Bézier is
// flattened into.
const DefaultCurveSteps = 12

// Path accumulates the device-space points of the subpath being built
type Path struct {
	// Points holds the accumulated points in device space
	Points []model.Point

	// CurrentPoint is the last point appended
	CurrentPoint model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{}
}

// Start begins a new subpath at p, discarding any accumulated points
func (p *Path) Start(pt model.Point) {
	p.Points = append(p.Points[:0:0], pt)
	p.CurrentPoint = pt
	p.HasCurrentPoint = true
}

// Append adds pt to the subpath and makes it the current point
func (p *Path) Append(pt model.Point) {
	p.Points = append(p.Points, pt)
	p.CurrentPoint = pt
	p.HasCurrentPoint = true
}

// Take returns the accumulated points if there are at least two, and clears
// the path either way.
func (p *Path) Take() ([]model.Point, bool) {
	pts := p.Points
	p.Clear()
	if len(pts) < 2 {
		return nil, false
	}
	return pts, true
}

// Clear resets the path
func (p *Path) Clear() {
	p.Points = nil
	p.HasCurrentPoint = false
}

// IsEmpty returns true if the path has no points
func (p *Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// FlattenCubic samples the cubic Bézier p0..p3 at steps evenly spaced
// parameter values and returns the sampled points after p0. The last point
// is p3. steps below 1 is treated as 1.
func FlattenCubic(p0, p1, p2, p3 model.Point, steps int) []model.Point {
	if steps < 1 {
		steps = 1
	}
	out := make([]model.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, cubicAt(p0, p1, p2, p3, t))
	}
	return out
}

func cubicAt(p0, p1, p2, p3 model.Point, t float64) model.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return model.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
