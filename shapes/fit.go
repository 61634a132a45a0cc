package shapes

import (
	"math"

	"github.com/tsawler/pdf2dxf/model"
)

// Fit is a fitted circle
type Fit struct {
	CX, CY, R float64
}

// FitCircle fits a circle with the Kåsa method, solving the normal equations
// of Σ(x²+y²+Dx+Ey+F)² in closed form. The radius is the mean distance of
// the points from the fitted centre. ok is false when the system is singular.
func FitCircle(pts []model.Point) (Fit, bool) {
	n := float64(len(pts))
	if len(pts) < 3 {
		return Fit{}, false
	}

	var sx, sy, sxx, syy, sxy, sxxx, syyy, sxyy, sxxy float64
	for _, p := range pts {
		x, y := p.X, p.Y
		x2, y2 := x*x, y*y
		sx += x
		sy += y
		sxx += x2
		syy += y2
		sxy += x * y
		sxxx += x2 * x
		syyy += y2 * y
		sxyy += x * y2
		sxxy += x2 * y
	}

	c := n*sxx - sx*sx
	d := n*sxy - sx*sy
	e := n*syy - sy*sy
	g := 0.5 * (n*(sxxx+sxyy) - sx*(sxx+syy))
	h := 0.5 * (n*(syyy+sxxy) - sy*(sxx+syy))

	denom := c*e - d*d
	if math.Abs(denom) < degenerateDenom {
		return Fit{}, false
	}

	cx := (g*e - d*h) / denom
	cy := (c*h - d*g) / denom

	var sumR float64
	for _, p := range pts {
		sumR += math.Hypot(p.X-cx, p.Y-cy)
	}
	return Fit{CX: cx, CY: cy, R: sumR / n}, true
}

// MaxRadialDeviation returns the largest |distance from centre − R|
func MaxRadialDeviation(pts []model.Point, fit Fit) float64 {
	var worst float64
	for _, p := range pts {
		d := math.Abs(math.Hypot(p.X-fit.CX, p.Y-fit.CY) - fit.R)
		if d > worst {
			worst = d
		}
	}
	return worst
}
