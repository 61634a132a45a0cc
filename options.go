package pdf2dxf

import (
	"runtime"

	"github.com/tsawler/pdf2dxf/dxf"
	"github.com/tsawler/pdf2dxf/graphicsstate"
	"github.com/tsawler/pdf2dxf/merge"
	"github.com/tsawler/pdf2dxf/shapes"
	"github.com/tsawler/pdf2dxf/text"
)

// Options holds the conversion configuration
type Options struct {
	// LayerPolicy selects how path layers are keyed
	LayerPolicy graphicsstate.LayerPolicy

	// CurveSteps is the number of pieces per flattened Bézier
	CurveSteps int

	// Scale is applied by the page viewport
	Scale float64

	// KeepRawPaths also emits the unmerged subpath polylines
	KeepRawPaths bool

	Merge  merge.Options
	Shapes shapes.Options
	Text   text.Options
	Output dxf.Options

	// Workers bounds the number of pages processed at once
	Workers int
}

// DefaultOptions returns the width layer policy, 12 curve steps, scale 1,
// the default engine tolerances and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		LayerPolicy: graphicsstate.LayerWidth,
		CurveSteps:  graphicsstate.DefaultCurveSteps,
		Scale:       1,
		Merge:       merge.DefaultOptions(),
		Shapes:      shapes.DefaultOptions(),
		Text:        text.DefaultOptions(),
		Output:      dxf.DefaultOptions(),
		Workers:     runtime.NumCPU(),
	}
}

// normalized fills zero values with defaults
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.LayerPolicy == "" {
		o.LayerPolicy = def.LayerPolicy
	}
	if o.CurveSteps < 1 {
		o.CurveSteps = def.CurveSteps
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

func (o Options) pathOptions() graphicsstate.Options {
	return graphicsstate.Options{Policy: o.LayerPolicy, CurveSteps: o.CurveSteps}
}

func (o Options) textOptions() text.Options {
	t := o.Text
	t.Scale = o.Scale
	return t
}
