package shapes

import (
	"math"
)

// Sweep describes the angular behaviour of points around a centre
type Sweep struct {
	// SpanDeg is max − min of the unwrapped angles, in degrees
	SpanDeg float64

	// Monotonic is true when few steps run backwards
	Monotonic bool

	// Start and End are the first and last unwrapped angles in radians
	Start, End float64

	// CCW is true when forward steps are at least as common as backward ones
	CCW bool

	// Backward counts steps that moved back by more than the tolerance
	Backward int
}

// Unwrap shifts each angle by multiples of 2π so it lies within π of its
// predecessor.
func Unwrap(angles []float64) []float64 {
	if len(angles) == 0 {
		return nil
	}
	out := make([]float64, len(angles))
	out[0] = angles[0]
	for i := 1; i < len(angles); i++ {
		a, prev := angles[i], out[i-1]
		for a-prev > math.Pi {
			a -= 2 * math.Pi
		}
		for a-prev < -math.Pi {
			a += 2 * math.Pi
		}
		out[i] = a
	}
	return out
}

// MaxBackwardSteps is the most backward steps a monotonic sweep of n
// angles may contain.
func MaxBackwardSteps(n int) int {
	allowed := int(math.Floor(float64(n) * 0.05))
	if allowed < 2 {
		return 2
	}
	return allowed
}

// AnalyzeAngles unwraps the angles (radians) and measures span, direction
// and monotonicity. A step counts as backward when it decreases by more
// than tolDeg.
func AnalyzeAngles(angles []float64, tolDeg float64) Sweep {
	un := Unwrap(angles)
	if len(un) == 0 {
		return Sweep{}
	}

	lo, hi := un[0], un[0]
	for _, a := range un[1:] {
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}

	tol := tolDeg * math.Pi / 180
	var back, pos, neg int
	for i := 1; i < len(un); i++ {
		delta := un[i] - un[i-1]
		if delta < -tol {
			back++
		}
		if delta >= 0 {
			pos++
		} else {
			neg++
		}
	}

	return Sweep{
		SpanDeg:   (hi - lo) * 180 / math.Pi,
		Monotonic: back <= MaxBackwardSteps(len(un)),
		Start:     un[0],
		End:       un[len(un)-1],
		CCW:       pos >= neg,
		Backward:  back,
	}
}
