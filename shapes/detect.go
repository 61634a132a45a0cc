package shapes

import (
	"math"

	"github.com/tsawler/pdf2dxf/model"
)

const (
	// decimateDist is the minimum spacing kept between fitted points
	decimateDist = 1.0

	// degenerateDenom rejects fits whose normal equations are singular
	degenerateDenom = 1e-9

	// circleSpanDeg is the span a closed polyline must exceed to be a circle
	circleSpanDeg = 300.0
)

// Options holds the classification thresholds
type Options struct {
	MaxRadialError       float64
	MinRadius            float64
	MaxRadius            float64
	MinPoints            int
	ClosedDist           float64
	MinArcAngleDeg       float64
	AngleMonotonicTolDeg float64
}

// DefaultOptions returns the standard thresholds
func DefaultOptions() Options {
	return Options{
		MaxRadialError:       0.8,
		MinRadius:            3.0,
		MaxRadius:            1e7,
		MinPoints:            12,
		ClosedDist:           2.0,
		MinArcAngleDeg:       15,
		AngleMonotonicTolDeg: 25,
	}
}

// Result splits the input into recognised shapes and leftovers
type Result struct {
	Circles   []model.Circle
	Arcs      []model.Arc
	Remaining []model.Polyline
}

// Detect classifies each polyline as a circle, an arc or a leftover.
// Leftovers are the original polylines, not their decimated form.
func Detect(polylines []model.Polyline, opts Options) Result {
	var res Result
	for _, pl := range polylines {
		switch shape := Classify(pl, opts).(type) {
		case model.Circle:
			res.Circles = append(res.Circles, shape)
		case model.Arc:
			res.Arcs = append(res.Arcs, shape)
		default:
			res.Remaining = append(res.Remaining, pl)
		}
	}
	return res
}

// Classify returns a model.Circle, a model.Arc, or nil when pl is neither
func Classify(pl model.Polyline, opts Options) interface{} {
	if len(pl.Points) < opts.MinPoints {
		return nil
	}
	pts := Decimate(pl.Points, decimateDist)
	if len(pts) < opts.MinPoints {
		return nil
	}

	layer := pl.Layer
	if layer == "" {
		layer = model.DefaultLayer
	}
	closed := pts[0].Distance(pts[len(pts)-1]) <= opts.ClosedDist

	fit, ok := FitCircle(pts)
	if !ok {
		return nil
	}
	if !(fit.R >= opts.MinRadius && fit.R <= opts.MaxRadius) {
		return nil
	}
	if MaxRadialDeviation(pts, fit) > opts.MaxRadialError {
		return nil
	}

	angles := make([]float64, len(pts))
	for i, p := range pts {
		angles[i] = math.Atan2(p.Y-fit.CY, p.X-fit.CX)
	}
	sweep := AnalyzeAngles(angles, opts.AngleMonotonicTolDeg)

	if isCircle(closed, sweep.SpanDeg) {
		return model.Circle{CX: fit.CX, CY: fit.CY, R: fit.R, Layer: layer}
	}
	if sweep.SpanDeg >= opts.MinArcAngleDeg && sweep.Monotonic {
		return model.Arc{
			CX:       fit.CX,
			CY:       fit.CY,
			R:        fit.R,
			StartDeg: toDegrees360(sweep.Start),
			EndDeg:   toDegrees360(sweep.End),
			CCW:      sweep.CCW,
			Layer:    layer,
		}
	}
	return nil
}

// isCircle reports whether a closed sweep covers enough of a full turn.
// Exactly 300 degrees is not enough.
func isCircle(closed bool, spanDeg float64) bool {
	return closed && spanDeg > circleSpanDeg
}

// Decimate keeps the first point and every point at least minDist from the
// last kept one. The final input point is always kept.
func Decimate(pts []model.Point, minDist float64) []model.Point {
	if minDist <= 0 || len(pts) == 0 {
		return pts
	}

	out := []model.Point{pts[0]}
	last := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Distance(pts[last]) >= minDist {
			out = append(out, pts[i])
			last = i
		}
	}
	if len(out) >= 2 && last != len(pts)-1 {
		out = append(out, pts[len(pts)-1])
	}
	return out
}

func toDegrees360(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}
