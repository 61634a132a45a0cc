package pdf2dxf

import (
	"github.com/tsawler/pdf2dxf/model"
	"github.com/tsawler/pdf2dxf/pages"
)

// Result is the outcome of a conversion
type Result struct {
	// DXF is the serialized drawing
	DXF []byte

	// Geometry is everything that was written
	Geometry model.Geometry

	Meta Meta
}

// Meta summarizes a conversion
type Meta struct {
	Pages  []PageMeta
	Counts Counts
}

// PageMeta describes how one page was handled
type PageMeta struct {
	Index       int
	Kind        pages.Kind
	VectorScore int
	HasImages   bool

	// Skipped is true for raster pages
	Skipped bool
}

// Counts holds the number of emitted objects per kind
type Counts struct {
	Polylines int
	Lines     int
	Circles   int
	Arcs      int
	Texts     int
}

// CountGeometry tallies the objects in g
func CountGeometry(g model.Geometry) Counts {
	return Counts{
		Polylines: len(g.Polylines),
		Lines:     len(g.Lines),
		Circles:   len(g.Circles),
		Arcs:      len(g.Arcs),
		Texts:     len(g.Texts),
	}
}
