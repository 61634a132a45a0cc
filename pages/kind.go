package pages

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdf2dxf/model"
)

// Kind classifies a page by its content
type Kind string

const (
	KindVector Kind = "vector"
	KindRaster Kind = "raster"
	KindHybrid Kind = "hybrid"
)

// ParseKind resolves a kind name (case-insensitive). The empty string
// parses as the empty kind, meaning "classify from content".
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case "", KindVector, KindRaster, KindHybrid:
		return k, nil
	}
	return "", fmt.Errorf("unknown page kind %q", name)
}

// Processable reports whether the converter should reconstruct the page
func (k Kind) Processable() bool {
	return k == KindVector || k == KindHybrid
}

// Stats summarizes the vector and image content of a command stream
type Stats struct {
	// VectorScore counts path construction and painting commands
	VectorScore int

	// HasImages is true when any image is painted
	HasImages bool
}

// Tally counts vector operations and detects image painting. Ending a path
// without painting it does not count as vector content.
func Tally(cmds []model.Command) Stats {
	var s Stats
	for _, c := range cmds {
		switch c.Op {
		case model.OpMoveTo, model.OpLineTo, model.OpCurveTo, model.OpClosePath:
			s.VectorScore++
		case model.OpPaint:
			if c.Paint != model.PaintNone {
				s.VectorScore++
			}
		case model.OpPaintImage:
			s.HasImages = true
		}
	}
	return s
}

// Kind derives the page kind from the tally
func (s Stats) Kind() Kind {
	switch {
	case s.VectorScore > 0 && s.HasImages:
		return KindHybrid
	case s.VectorScore > 0:
		return KindVector
	default:
		return KindRaster
	}
}
