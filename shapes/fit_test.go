package shapes

import (
	"math"
	"testing"

	"github.com/tsawler/pdf2dxf/model"
)

func TestFitCircleExact(t *testing.T) {
	pts := sample(-4, 2.5, 7, 10, 200, 20, true)
	fit, ok := FitCircle(pts)
	if !ok {
		t.Fatal("fit failed")
	}
	if !near(fit.CX, -4, 1e-9) || !near(fit.CY, 2.5, 1e-9) || !near(fit.R, 7, 1e-9) {
		t.Errorf("fit = %+v", fit)
	}
	if dev := MaxRadialDeviation(pts, fit); dev > 1e-9 {
		t.Errorf("deviation = %v", dev)
	}
}

func TestFitCircleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []model.Point
	}{
		{"too few", []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"collinear", []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}},
		{"coincident", []model.Point{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := FitCircle(tt.pts); ok {
				t.Error("expected degenerate fit")
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	deg := math.Pi / 180
	in := []float64{170 * deg, 179 * deg, -175 * deg, -160 * deg}
	got := Unwrap(in)
	want := []float64{170, 179, 185, 200}
	for i := range want {
		if !near(got[i]/deg, want[i], 1e-9) {
			t.Errorf("angle %d = %v, want %v", i, got[i]/deg, want[i])
		}
	}
}

func TestAnalyzeAngles(t *testing.T) {
	deg := math.Pi / 180
	sweep := AnalyzeAngles([]float64{0, 10 * deg, 20 * deg, -10 * deg, 30 * deg}, 25)

	if !near(sweep.SpanDeg, 40, 1e-9) {
		t.Errorf("span = %v, want 40", sweep.SpanDeg)
	}
	if sweep.Backward != 1 {
		t.Errorf("backward = %d, want 1", sweep.Backward)
	}
	if !sweep.Monotonic || !sweep.CCW {
		t.Errorf("sweep = %+v", sweep)
	}
}

func TestMaxBackwardSteps(t *testing.T) {
	tests := []struct{ n, want int }{
		{12, 2}, {40, 2}, {59, 2}, {60, 3}, {100, 5}, {219, 10},
	}
	for _, tt := range tests {
		if got := MaxBackwardSteps(tt.n); got != tt.want {
			t.Errorf("MaxBackwardSteps(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
