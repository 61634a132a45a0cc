package graphicsstate

import (
	"math"
	"testing"

	"github.com/tsawler/pdf2dxf/model"
)

// TestNewGraphicsState tests initial state
func TestNewGraphicsState(t *testing.T) {
	gs := NewGraphicsState()

	if gs.LineWidth != 1.0 {
		t.Errorf("expected line width 1.0, got %f", gs.LineWidth)
	}

	if gs.StrokeColor != (Color{}) {
		t.Errorf("expected black stroke, got %+v", gs.StrokeColor)
	}

	if gs.Text.FontSize != 12.0 {
		t.Errorf("expected font size 12.0, got %f", gs.Text.FontSize)
	}

	if !gs.CTM.IsIdentity() {
		t.Error("expected CTM to be identity matrix")
	}
}

// TestSaveRestore tests q/Q operators
func TestSaveRestore(t *testing.T) {
	gs := NewGraphicsState()

	gs.SetLineWidth(2.5)
	gs.SetStrokeColor(RGB(1, 0, 0))
	before := gs.State

	gs.Save()

	gs.SetLineWidth(5.0)
	gs.SetStrokeColor(RGB(0, 1, 0))
	gs.Transform(model.Translate(10, 10))

	if gs.LineWidth != 5.0 {
		t.Errorf("expected line width 5.0, got %f", gs.LineWidth)
	}

	if !gs.Restore() {
		t.Fatal("Restore reported underflow on a balanced stack")
	}

	if gs.State != before {
		t.Errorf("state after restore = %+v, want %+v", gs.State, before)
	}
	if gs.Depth() != 0 {
		t.Errorf("expected empty stack, depth %d", gs.Depth())
	}
}

// TestNestedSaveRestore tests multiple levels
func TestNestedSaveRestore(t *testing.T) {
	gs := NewGraphicsState()

	widths := []float64{1, 2, 3, 4}
	for _, w := range widths {
		gs.SetLineWidth(w)
		gs.Save()
	}
	gs.SetLineWidth(9)

	for i := len(widths) - 1; i >= 0; i-- {
		gs.Restore()
		if gs.LineWidth != widths[i] {
			t.Errorf("level %d: line width %v, want %v", i, gs.LineWidth, widths[i])
		}
	}
}

// TestRestoreUnderflow tests that an unmatched Q resets to defaults
func TestRestoreUnderflow(t *testing.T) {
	gs := NewGraphicsState()
	gs.SetLineWidth(3)
	gs.Transform(model.Scale(2, 2))

	if gs.Restore() {
		t.Fatal("expected Restore to report underflow")
	}
	if gs.State != DefaultState() {
		t.Errorf("state after underflow = %+v, want defaults", gs.State)
	}
}

func TestRestoreUnderflowCustomDefaults(t *testing.T) {
	def := DefaultState()
	def.LineWidth = 0.25
	gs := NewGraphicsStateWith(def)
	gs.SetLineWidth(7)

	gs.Restore()
	if gs.LineWidth != 0.25 {
		t.Errorf("expected caller defaults after underflow, got width %v", gs.LineWidth)
	}
}

func TestSetLineWidthIgnoresZero(t *testing.T) {
	gs := NewGraphicsState()
	gs.SetLineWidth(0.5)
	gs.SetLineWidth(0)
	gs.SetLineWidth(math.NaN())
	if gs.LineWidth != 0.5 {
		t.Errorf("expected width 0.5 to survive, got %v", gs.LineWidth)
	}
}

// TestTransformComposition checks that cm operands apply before the current CTM
func TestTransformComposition(t *testing.T) {
	gs := NewGraphicsState()
	gs.Transform(model.Translate(100, 0))
	gs.Transform(model.Scale(2, 2))

	// Scale applies in the translated frame: (1,1) -> (2,2) -> (102,2)
	p := gs.CTM.Transform(model.Point{X: 1, Y: 1})
	if p != (model.Point{X: 102, Y: 2}) {
		t.Errorf("CTM.Transform(1,1) = %v, want (102,2)", p)
	}
}

func TestTextPositioning(t *testing.T) {
	gs := NewGraphicsState()
	gs.BeginText()
	gs.SetFont("F1", 10)
	gs.TranslateText(50, 700)

	m := gs.TextRenderingMatrix()
	if m != (model.Matrix{10, 0, 0, 10, 50, 700}) {
		t.Fatalf("TextRenderingMatrix() = %v", m)
	}

	gs.AdvanceText("ab", 11)
	if gs.Text.TextMatrix[4] != 61 {
		t.Errorf("expected x 61 after advance, got %v", gs.Text.TextMatrix[4])
	}

	gs.Kern(-1000)
	if gs.Text.TextMatrix[4] != 71 {
		t.Errorf("expected x 71 after kern, got %v", gs.Text.TextMatrix[4])
	}

	gs.TranslateTextSetLeading(0, -12)
	if gs.Text.Leading != 12 {
		t.Errorf("expected leading 12, got %v", gs.Text.Leading)
	}
	gs.NextLine()
	if gs.Text.TextMatrix[4] != 50 || gs.Text.TextMatrix[5] != 676 {
		t.Errorf("expected line start (50,676), got (%v,%v)", gs.Text.TextMatrix[4], gs.Text.TextMatrix[5])
	}
}

func TestTextRenderingMatrixWithCTM(t *testing.T) {
	gs := NewGraphicsState()
	gs.Transform(model.Scale(2, 2))
	gs.BeginText()
	gs.SetFont("F1", 5)
	gs.Text.Rise = 1

	m := gs.TextRenderingMatrix()
	want := model.Matrix{10, 0, 0, 10, 0, 2}
	if m != want {
		t.Errorf("TextRenderingMatrix() = %v, want %v", m, want)
	}
}
