package pages

import (
	"fmt"

	"github.com/tsawler/pdf2dxf/model"
)

// Page represents a single materialized page
type Page struct {
	// Index is the 1-based page number
	Index int

	// Declared is the kind given by the page source, empty when unknown
	Declared Kind

	// Box is the media box, nil when the source did not supply one
	Box *model.BBox

	// Rotation is the /Rotate value in degrees
	Rotation int

	// Transform is an explicit viewport; it wins over Box and Rotation
	Transform *model.Matrix

	// Commands is the drawing-command stream in user space
	Commands []model.Command

	// Text holds the raw text runs
	Text []model.TextRun

	// Err records a content problem found while materializing the page.
	// The converter reports it and emits no geometry for the page.
	Err error
}

// NewPage creates an empty page with the given 1-based index
func NewPage(index int) *Page {
	return &Page{Index: index}
}

// MediaBox returns the page media box
func (p *Page) MediaBox() (model.BBox, error) {
	if p.Box == nil {
		return model.BBox{}, fmt.Errorf("page %d: MediaBox not found", p.Index)
	}
	return *p.Box, nil
}

// Rotate returns the page rotation normalized to 0, 90, 180 or 270.
// Values that are not a multiple of 90 are treated as 0.
func (p *Page) Rotate() int {
	r := ((p.Rotation % 360) + 360) % 360
	if r%90 != 0 {
		return 0
	}
	return r
}

// Width returns the page width (from MediaBox), accounting for rotation
func (p *Page) Width() (float64, error) {
	box, err := p.MediaBox()
	if err != nil {
		return 0, err
	}
	if p.Rotate() == 90 || p.Rotate() == 270 {
		return box.Height, nil
	}
	return box.Width, nil
}

// Height returns the page height (from MediaBox), accounting for rotation
func (p *Page) Height() (float64, error) {
	box, err := p.MediaBox()
	if err != nil {
		return 0, err
	}
	if p.Rotate() == 90 || p.Rotate() == 270 {
		return box.Width, nil
	}
	return box.Height, nil
}

// Viewport returns the transform from user space to output space. An
// explicit transform is used as is; otherwise one is derived from the media
// box and rotation, falling back to a plain scale.
func (p *Page) Viewport(scale float64) model.Matrix {
	if scale <= 0 {
		scale = 1
	}
	if p.Transform != nil {
		return *p.Transform
	}
	if p.Box != nil {
		return model.PageViewport(*p.Box, scale, p.Rotate())
	}
	return model.Scale(scale, scale)
}

// Stats tallies the page's drawing commands
func (p *Page) Stats() Stats {
	return Tally(p.Commands)
}

// Kind returns the declared kind, or the tallied one when none was declared
func (p *Page) Kind() Kind {
	if p.Declared != "" {
		return p.Declared
	}
	return p.Stats().Kind()
}
