package graphicsstate

import (
	"math"

	"github.com/tsawler/pdf2dxf/model"
)

// State is one frame of the graphics state. It holds only value types so a
// copy is always a deep copy.
type State struct {
	// Current Transformation Matrix
	CTM model.Matrix

	// Line attributes
	LineWidth float64

	// Stroke colour, already converted to 8-bit RGB
	StrokeColor Color

	// Text state
	Text TextState
}

// TextState represents text-specific state
type TextState struct {
	// Font and size
	FontName string
	FontSize float64

	// Character and word spacing
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling (percentage)
	HorizontalScaling float64

	// Leading (line spacing)
	Leading float64

	// Text rise
	Rise float64

	// Text matrices
	TextMatrix     model.Matrix
	TextLineMatrix model.Matrix
}

// DefaultState returns the state a page starts with: identity CTM, 1pt black
// stroke and a 12pt text state.
func DefaultState() State {
	return State{
		CTM:       model.Identity(),
		LineWidth: 1.0,
		Text: TextState{
			FontSize:          12.0,
			HorizontalScaling: 100.0,
			TextMatrix:        model.Identity(),
			TextLineMatrix:    model.Identity(),
		},
	}
}

// GraphicsState is the current graphics state plus its save/restore stack
type GraphicsState struct {
	State

	defaults State
	stack    []State
}

// NewGraphicsState creates a graphics state starting from DefaultState
func NewGraphicsState() *GraphicsState {
	return NewGraphicsStateWith(DefaultState())
}

// NewGraphicsStateWith creates a graphics state that starts from, and resets
// to, the given defaults.
func NewGraphicsStateWith(defaults State) *GraphicsState {
	return &GraphicsState{
		State:    defaults,
		defaults: defaults,
	}
}

// Depth returns the number of saved frames
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Save pushes a copy of the current state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, gs.State)
}

// Restore pops the most recently saved state (Q operator). On underflow the
// state is reset to the defaults and false is returned.
func (gs *GraphicsState) Restore() bool {
	if len(gs.stack) == 0 {
		gs.State = gs.defaults
		return false
	}

	gs.State = gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]
	return true
}

// Transform composes m onto the CTM (cm operator). m applies first.
func (gs *GraphicsState) Transform(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// SetLineWidth sets the line width (w operator). Zero and non-finite
// widths leave the current width unchanged.
func (gs *GraphicsState) SetLineWidth(width float64) {
	if width == 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return
	}
	gs.LineWidth = width
}

// SetStrokeColor sets the stroke colour
func (gs *GraphicsState) SetStrokeColor(c Color) {
	gs.StrokeColor = c
}

// SetFont sets the current font (Tf operator)
func (gs *GraphicsState) SetFont(name string, size float64) {
	gs.Text.FontName = name
	gs.Text.FontSize = size
}

// BeginText initializes text state (BT operator)
func (gs *GraphicsState) BeginText() {
	gs.Text.TextMatrix = model.Identity()
	gs.Text.TextLineMatrix = model.Identity()
}

// SetTextMatrix sets the text matrix (Tm operator)
func (gs *GraphicsState) SetTextMatrix(m model.Matrix) {
	gs.Text.TextMatrix = m
	gs.Text.TextLineMatrix = m
}

// TranslateText translates the text line matrix (Td operator)
func (gs *GraphicsState) TranslateText(tx, ty float64) {
	// Td is equivalent to: Tm = Tlm = T(tx, ty) × Tlm
	gs.Text.TextLineMatrix = model.Translate(tx, ty).Multiply(gs.Text.TextLineMatrix)
	gs.Text.TextMatrix = gs.Text.TextLineMatrix
}

// TranslateTextSetLeading translates text and sets leading (TD operator)
func (gs *GraphicsState) TranslateTextSetLeading(tx, ty float64) {
	gs.Text.Leading = -ty
	gs.TranslateText(tx, ty)
}

// NextLine moves to next line (T* operator)
func (gs *GraphicsState) NextLine() {
	gs.TranslateText(0, -gs.Text.Leading)
}

// AdvanceText moves the text matrix along its baseline after showing text
// whose glyph advance is width (in unscaled text space units × font size).
// Character and word spacing are added per character and per space.
func (gs *GraphicsState) AdvanceText(text string, width float64) float64 {
	numChars := 0
	numSpaces := 0
	for _, c := range text {
		numChars++
		if c == ' ' {
			numSpaces++
		}
	}

	scale := gs.Text.HorizontalScaling / 100.0
	advance := width*scale +
		float64(numChars)*gs.Text.CharSpacing*scale +
		float64(numSpaces)*gs.Text.WordSpacing*scale

	gs.Text.TextMatrix = model.Translate(advance, 0).Multiply(gs.Text.TextMatrix)
	return advance
}

// Kern applies a TJ position adjustment given in thousandths of an em
func (gs *GraphicsState) Kern(adjust float64) {
	tx := -adjust / 1000.0 * gs.Text.FontSize * gs.Text.HorizontalScaling / 100.0
	gs.Text.TextMatrix = model.Translate(tx, 0).Multiply(gs.Text.TextMatrix)
}

// TextRenderingMatrix returns [fs×Th 0 0 fs 0 rise] × Tm × CTM, which maps
// glyph space of the current font into user space.
func (gs *GraphicsState) TextRenderingMatrix() model.Matrix {
	th := gs.Text.HorizontalScaling / 100.0
	fs := gs.Text.FontSize
	tsm := model.Matrix{fs * th, 0, 0, fs, 0, gs.Text.Rise}
	return tsm.Multiply(gs.Text.TextMatrix).Multiply(gs.CTM)
}
