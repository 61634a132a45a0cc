package model

// DefaultLayer is the layer assigned to geometry without an explicit layer.
const DefaultLayer = "0"

// TextLayer is the reserved layer always present in the output layer table.
const TextLayer = "TEXT"

// Segment is a directed raw line in device space
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Layer  string
}

// Start returns the first endpoint
func (s Segment) Start() Point {
	return Point{X: s.X1, Y: s.Y1}
}

// End returns the second endpoint
func (s Segment) End() Point {
	return Point{X: s.X2, Y: s.Y2}
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.Start().Distance(s.End())
}

// Polyline is an ordered, connected sequence of points on one layer
type Polyline struct {
	Points []Point
	Layer  string
}

// IsClosed reports whether the first and last points lie within tol of each other
func (p Polyline) IsClosed(tol float64) bool {
	if len(p.Points) < 2 {
		return false
	}
	return p.Points[0].Distance(p.Points[len(p.Points)-1]) <= tol
}

// Segments explodes the polyline into its consecutive pieces
func (p Polyline) Segments() []Segment {
	if len(p.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		segs = append(segs, Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Layer: p.Layer})
	}
	return segs
}

// Circle is a full circle
type Circle struct {
	CX, CY float64
	R      float64
	Layer  string
}

// Arc is a circular arc. Angles are in degrees, 0 = +x axis, counter-clockwise.
// When CCW is false the writer swaps StartDeg and EndDeg.
type Arc struct {
	CX, CY   float64
	R        float64
	StartDeg float64
	EndDeg   float64
	CCW      bool
	Layer    string
}

// TextFragment is a positioned piece of text.
// Layer is synthesised from quantised font size and rotation.
type TextFragment struct {
	Text     string
	X, Y     float64
	AngleDeg float64
	FontSize float64
	Layer    string
}

// Geometry holds every kind of reconstructed object. It is the accumulator
// the converter appends page results to, and the input of the writer.
type Geometry struct {
	Polylines []Polyline
	Lines     []Segment
	Circles   []Circle
	Arcs      []Arc
	Texts     []TextFragment
}

// Append adds all objects of other to g, preserving order
func (g *Geometry) Append(other Geometry) {
	g.Polylines = append(g.Polylines, other.Polylines...)
	g.Lines = append(g.Lines, other.Lines...)
	g.Circles = append(g.Circles, other.Circles...)
	g.Arcs = append(g.Arcs, other.Arcs...)
	g.Texts = append(g.Texts, other.Texts...)
}

// IsEmpty reports whether g holds no objects
func (g Geometry) IsEmpty() bool {
	return len(g.Polylines) == 0 && len(g.Lines) == 0 && len(g.Circles) == 0 &&
		len(g.Arcs) == 0 && len(g.Texts) == 0
}

// Bounds returns the bounding box of all geometry and whether g had any points.
// Circles and arcs contribute their full circle extent.
func (g Geometry) Bounds() (BBox, bool) {
	var b BBox
	found := false
	add := func(p Point) {
		if !found {
			b = BBox{X: p.X, Y: p.Y}
			found = true
			return
		}
		b = b.Include(p)
	}

	for _, pl := range g.Polylines {
		for _, p := range pl.Points {
			add(p)
		}
	}
	for _, l := range g.Lines {
		add(l.Start())
		add(l.End())
	}
	for _, c := range g.Circles {
		add(Point{X: c.CX - c.R, Y: c.CY - c.R})
		add(Point{X: c.CX + c.R, Y: c.CY + c.R})
	}
	for _, a := range g.Arcs {
		add(Point{X: a.CX - a.R, Y: a.CY - a.R})
		add(Point{X: a.CX + a.R, Y: a.CY + a.R})
	}
	for _, t := range g.Texts {
		add(Point{X: t.X, Y: t.Y})
	}
	return b, found
}
