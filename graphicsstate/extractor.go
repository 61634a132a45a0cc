package graphicsstate

import (
	"github.com/tsawler/pdf2dxf/model"
)

// Options configures a PathReconstructor
type Options struct {
	// Policy selects how layer keys are derived from stroke state
	Policy LayerPolicy

	// CurveSteps is the number of straight pieces per cubic Bézier
	CurveSteps int
}

// DefaultOptions returns the width layer policy and 12 curve steps
func DefaultOptions() Options {
	return Options{
		Policy:     LayerWidth,
		CurveSteps: DefaultCurveSteps,
	}
}

// Result holds the output of path reconstruction for one page
type Result struct {
	// Segments are the straight pieces in drawing order, each on the
	// layer that was current when it was drawn
	Segments []model.Segment

	// Polylines are the accumulated subpaths with at least two points
	Polylines []model.Polyline
}

// PathReconstructor turns a drawing-command stream into device-space
// segments and polylines. A reconstructor is single-use and not safe for
// concurrent use.
type PathReconstructor struct {
	gs       *GraphicsState
	path     *Path
	viewport model.Matrix
	opts     Options

	// Underflows counts restores without a matching save
	Underflows int

	result Result
}

// NewPathReconstructor creates a reconstructor for a page with the given
// viewport transform.
func NewPathReconstructor(viewport model.Matrix, opts Options) *PathReconstructor {
	if opts.CurveSteps < 1 {
		opts.CurveSteps = DefaultCurveSteps
	}
	return &PathReconstructor{
		gs:       NewGraphicsState(),
		path:     NewPath(),
		viewport: viewport,
		opts:     opts,
	}
}

// Reconstruct is a convenience wrapper that runs a fresh PathReconstructor
// over cmds.
func Reconstruct(cmds []model.Command, viewport model.Matrix, opts Options) Result {
	pr := NewPathReconstructor(viewport, opts)
	return pr.Run(cmds)
}

// Run processes every command, flushes the open subpath and returns the result
func (pr *PathReconstructor) Run(cmds []model.Command) Result {
	for _, cmd := range cmds {
		pr.Process(cmd)
	}
	pr.flush()
	return pr.result
}

// Process handles a single command
func (pr *PathReconstructor) Process(cmd model.Command) {
	switch cmd.Op {
	// Graphics state
	case model.OpSave:
		pr.gs.Save()
	case model.OpRestore:
		if !pr.gs.Restore() {
			pr.Underflows++
		}
	case model.OpTransform:
		pr.gs.Transform(cmd.Matrix())
	case model.OpSetLineWidth:
		pr.gs.SetLineWidth(cmd.Arg(0))
	case model.OpSetStrokeColor:
		pr.gs.SetStrokeColor(ColorFromCommand(cmd))

	// Path construction
	case model.OpMoveTo:
		pr.flush()
		pr.path.Start(pr.toDevice(cmd.Arg(0), cmd.Arg(1)))
	case model.OpLineTo:
		pr.lineTo(pr.toDevice(cmd.Arg(0), cmd.Arg(1)))
	case model.OpCurveTo:
		pr.curveTo(cmd)

	// Subpath end and painting
	case model.OpClosePath, model.OpPaint:
		pr.flush()
	}
}

// State returns a copy of the current graphics state
func (pr *PathReconstructor) State() State {
	return pr.gs.State
}

func (pr *PathReconstructor) lineTo(p model.Point) {
	if !pr.path.HasCurrentPoint {
		pr.path.Start(p)
		return
	}
	pr.emitSegment(pr.path.CurrentPoint, p)
	pr.path.Append(p)
}

func (pr *PathReconstructor) curveTo(cmd model.Command) {
	c1 := pr.toDevice(cmd.Arg(0), cmd.Arg(1))
	c2 := pr.toDevice(cmd.Arg(2), cmd.Arg(3))
	p3 := pr.toDevice(cmd.Arg(4), cmd.Arg(5))

	if !pr.path.HasCurrentPoint {
		pr.path.Start(p3)
		return
	}

	// Affine maps preserve Bézier control polygons, so flattening in device
	// space matches flattening in user space.
	for _, p := range FlattenCubic(pr.path.CurrentPoint, c1, c2, p3, pr.opts.CurveSteps) {
		pr.emitSegment(pr.path.CurrentPoint, p)
		pr.path.Append(p)
	}
}

func (pr *PathReconstructor) emitSegment(a, b model.Point) {
	pr.result.Segments = append(pr.result.Segments, model.Segment{
		X1: a.X, Y1: a.Y,
		X2: b.X, Y2: b.Y,
		Layer: pr.layer(),
	})
}

// flush emits the open subpath as a polyline when it has two or more points
func (pr *PathReconstructor) flush() {
	pts, ok := pr.path.Take()
	if !ok {
		return
	}
	pr.result.Polylines = append(pr.result.Polylines, model.Polyline{
		Points: pts,
		Layer:  pr.layer(),
	})
}

func (pr *PathReconstructor) layer() string {
	return LayerFromState(pr.gs.State, pr.opts.Policy)
}

// toDevice maps a user-space point through the CTM and then the viewport
func (pr *PathReconstructor) toDevice(x, y float64) model.Point {
	return pr.gs.CTM.Multiply(pr.viewport).Transform(model.Point{X: x, Y: y})
}
