package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPointSubLen(t *testing.T) {
	v := Point{4, 6}.Sub(Point{1, 2})
	if v != (Point{3, 4}) {
		t.Errorf("Sub() = %v, want {3 4}", v)
	}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, want 5", v.Len())
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   BBox
	}{
		{"normal", Point{10, 20}, Point{50, 70}, BBox{10, 20, 40, 50}},
		{"reversed", Point{50, 70}, Point{10, 20}, BBox{10, 20, 40, 50}},
		{"same point", Point{10, 10}, Point{10, 10}, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxUnionInclude(t *testing.T) {
	b := NewBBox(0, 0, 10, 10).Union(NewBBox(5, 5, 10, 10))
	if b != (BBox{0, 0, 15, 15}) {
		t.Errorf("Union() = %+v, want {0 0 15 15}", b)
	}

	b = NewBBox(0, 0, 1, 1).Include(Point{-2, 3})
	if b != (BBox{-2, 0, 3, 3}) {
		t.Errorf("Include() = %+v, want {-2 0 3 3}", b)
	}
}

func TestBBoxExpand(t *testing.T) {
	b := NewBBox(10, 10, 20, 20).Expand(5)
	if b != (BBox{5, 5, 30, 30}) {
		t.Errorf("Expand(5) = %+v, want {5 5 30 30}", b)
	}
}

// ============================================================================
// Matrix Tests
// ============================================================================

func TestIdentity(t *testing.T) {
	m := Identity()
	expected := Matrix{1, 0, 0, 1, 0, 0}
	if m != expected {
		t.Errorf("Identity() = %v, want %v", m, expected)
	}
}

func TestMatrixTransform(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		m := Identity()
		p := Point{10, 20}
		result := m.Transform(p)
		if result != p {
			t.Errorf("Identity.Transform(%v) = %v, want %v", p, result, p)
		}
	})

	t.Run("translation", func(t *testing.T) {
		m := Translate(100, 50)
		p := Point{10, 20}
		result := m.Transform(p)
		expected := Point{110, 70}
		if result != expected {
			t.Errorf("Translate.Transform(%v) = %v, want %v", p, result, expected)
		}
	})

	t.Run("scale", func(t *testing.T) {
		m := Scale(2, 3)
		p := Point{10, 20}
		result := m.Transform(p)
		expected := Point{20, 60}
		if result != expected {
			t.Errorf("Scale.Transform(%v) = %v, want %v", p, result, expected)
		}
	})
}

func TestMatrixMultiply(t *testing.T) {
	// translate.Multiply(scale) applies translate first, then scale
	translate := Translate(10, 20)
	scale := Scale(2, 2)
	combined := translate.Multiply(scale)

	p := Point{5, 5}
	result := combined.Transform(p)

	expected := Point{30, 50}
	if result != expected {
		t.Errorf("Combined transform(%v) = %v, want %v", p, result, expected)
	}
}

func TestRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	p := Point{1, 0}
	result := m.Transform(p)

	if math.Abs(result.X) > 0.0001 || math.Abs(result.Y-1) > 0.0001 {
		t.Errorf("Rotate(Pi/2).Transform(1,0) = %v, want ~(0,1)", result)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	tests := []struct {
		name     string
		matrix   Matrix
		expected bool
	}{
		{"identity", Identity(), true},
		{"translated", Translate(1, 0), false},
		{"scaled", Scale(2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.matrix.IsIdentity() != tt.expected {
				t.Errorf("IsIdentity() = %v, want %v", tt.matrix.IsIdentity(), tt.expected)
			}
		})
	}
}

func TestPageViewport(t *testing.T) {
	box := NewBBox(10, 20, 100, 200)

	tests := []struct {
		name   string
		rotate int
		in     Point
		want   Point
	}{
		{"no rotation origin", 0, Point{10, 20}, Point{0, 0}},
		{"no rotation corner", 0, Point{110, 220}, Point{100, 200}},
		{"rotate 90 origin", 90, Point{10, 20}, Point{0, 100}},
		{"rotate 90 top left", 90, Point{10, 220}, Point{200, 100}},
		{"rotate 180", 180, Point{10, 20}, Point{100, 200}},
		{"rotate 270", 270, Point{10, 20}, Point{200, 0}},
		{"rotate -90 is 270", -90, Point{10, 20}, Point{200, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageViewport(box, 1, tt.rotate).Transform(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("PageViewport(%d).Transform(%v) = %v, want %v", tt.rotate, tt.in, got, tt.want)
			}
		})
	}
}

func TestPageViewportScale(t *testing.T) {
	got := PageViewport(NewBBox(0, 0, 10, 10), 2, 0).Transform(Point{5, 5})
	if got != (Point{10, 10}) {
		t.Errorf("scaled viewport = %v, want {10 10}", got)
	}

	got = PageViewport(NewBBox(0, 0, 10, 10), 0, 0).Transform(Point{5, 5})
	if got != (Point{5, 5}) {
		t.Errorf("non-positive scale should default to 1, got %v", got)
	}
}
