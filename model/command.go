package model

import (
	"fmt"
	"strings"
)

// OpCode identifies a drawing command
type OpCode int

const (
	// OpSave pushes the graphics state (q)
	OpSave OpCode = iota
	// OpRestore pops the graphics state (Q)
	OpRestore
	// OpTransform composes a matrix onto the CTM (cm), args a b c d e f
	OpTransform
	// OpSetLineWidth sets the stroke width (w), args w
	OpSetLineWidth
	// OpSetStrokeColor sets the stroke colour, args depend on Color
	OpSetStrokeColor
	// OpMoveTo starts a subpath, args x y
	OpMoveTo
	// OpLineTo appends a line, args x y
	OpLineTo
	// OpCurveTo appends a cubic Bézier, args x1 y1 x2 y2 x3 y3
	OpCurveTo
	// OpClosePath closes the subpath
	OpClosePath
	// OpPaint strokes and/or fills the current path
	OpPaint
	// OpPaintImage paints a raster image; only used for page classification
	OpPaintImage
)

var opNames = map[OpCode]string{
	OpSave:           "save",
	OpRestore:        "restore",
	OpTransform:      "transform",
	OpSetLineWidth:   "setLineWidth",
	OpSetStrokeColor: "setStrokeColor",
	OpMoveTo:         "moveTo",
	OpLineTo:         "lineTo",
	OpCurveTo:        "curveTo",
	OpClosePath:      "closePath",
	OpPaint:          "paint",
	OpPaintImage:     "paintImage",
}

// String returns the command name used in page bundles
func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(%d)", int(o))
}

// ParseOpCode resolves a command name (case-insensitive). "stroke" and "fill"
// are accepted as paint aliases.
func ParseOpCode(name string) (OpCode, PaintKind, error) {
	switch strings.ToLower(name) {
	case "stroke":
		return OpPaint, PaintStroke, nil
	case "fill":
		return OpPaint, PaintFill, nil
	case "fillstroke":
		return OpPaint, PaintFillStroke, nil
	}
	for op, n := range opNames {
		if strings.EqualFold(n, name) {
			return op, PaintStroke, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown command %q", name)
}

// ColorSpace selects how OpSetStrokeColor arguments are interpreted
type ColorSpace int

const (
	// ColorRGB takes r g b in [0,1]
	ColorRGB ColorSpace = iota
	// ColorGray takes a single gray level in [0,1]
	ColorGray
	// ColorCMYK takes c m y k in [0,1]
	ColorCMYK
)

// ParseColorSpace resolves "rgb", "gray" or "cmyk"
func ParseColorSpace(name string) (ColorSpace, error) {
	switch strings.ToLower(name) {
	case "", "rgb":
		return ColorRGB, nil
	case "gray", "grey":
		return ColorGray, nil
	case "cmyk":
		return ColorCMYK, nil
	}
	return 0, fmt.Errorf("unknown colour space %q", name)
}

// PaintKind tells how a path is painted
type PaintKind int

const (
	PaintStroke PaintKind = iota
	PaintFill
	PaintFillStroke
	PaintNone
)

// ParsePaintKind resolves "stroke", "fill", "fillStroke" or "none". The empty
// string means stroke.
func ParsePaintKind(name string) (PaintKind, error) {
	switch strings.ToLower(name) {
	case "", "stroke":
		return PaintStroke, nil
	case "fill":
		return PaintFill, nil
	case "fillstroke":
		return PaintFillStroke, nil
	case "none":
		return PaintNone, nil
	}
	return 0, fmt.Errorf("unknown paint kind %q", name)
}

// Command is one entry of a page's drawing-command stream
type Command struct {
	Op    OpCode
	Args  []float64
	Color ColorSpace
	Paint PaintKind
}

// Arg returns argument i, or 0 when the command carries fewer arguments
func (c Command) Arg(i int) float64 {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return 0
}

// ArgCount returns the number of arguments the command takes
func (c Command) ArgCount() int {
	switch c.Op {
	case OpTransform, OpCurveTo:
		return 6
	case OpMoveTo, OpLineTo:
		return 2
	case OpSetLineWidth:
		return 1
	case OpSetStrokeColor:
		switch c.Color {
		case ColorGray:
			return 1
		case ColorCMYK:
			return 4
		}
		return 3
	}
	return 0
}

// Matrix interprets the first six arguments as an affine matrix
func (c Command) Matrix() Matrix {
	var m Matrix
	for i := range m {
		m[i] = c.Arg(i)
	}
	return m
}

// TextRun is a raw piece of shown text with its text rendering matrix
type TextRun struct {
	Text      string
	Transform Matrix
}
