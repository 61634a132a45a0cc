package source

import (
	"fmt"
	"strings"

	"github.com/tsawler/pdf2dxf/contentstream"
	"github.com/tsawler/pdf2dxf/graphicsstate"
	"github.com/tsawler/pdf2dxf/model"
)

// GlyphAdvance is the estimated advance of one character in ems
const GlyphAdvance = 0.55

// spaceKern is the TJ adjustment (in ems) treated as a word break
const spaceKern = 0.2

// Lowerer converts content-stream operations to commands and text runs.
// It tracks the CTM and text state so text runs can be placed; path
// geometry is left in user space for the PathReconstructor.
type Lowerer struct {
	gs   *graphicsstate.GraphicsState
	cmds []model.Command
	runs []model.TextRun

	// Ignored counts operators that have no lowering
	Ignored int
}

// NewLowerer creates a Lowerer with a default graphics state
func NewLowerer() *Lowerer {
	return &Lowerer{gs: graphicsstate.NewGraphicsState()}
}

// Lower is a convenience wrapper that runs a fresh Lowerer over ops
func Lower(ops []contentstream.Operation) ([]model.Command, []model.TextRun) {
	l := NewLowerer()
	for _, op := range ops {
		l.Process(op)
	}
	return l.Commands(), l.Runs()
}

// LowerBytes tokenizes a decompressed content stream and lowers it
func LowerBytes(data []byte) ([]model.Command, []model.TextRun, error) {
	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return nil, nil, fmt.Errorf("parse content stream: %w", err)
	}
	cmds, runs := Lower(ops)
	return cmds, runs, nil
}

// Commands returns the lowered drawing commands in stream order
func (l *Lowerer) Commands() []model.Command {
	return l.cmds
}

// Runs returns the text runs in stream order
func (l *Lowerer) Runs() []model.TextRun {
	return l.runs
}

func (l *Lowerer) emit(op model.OpCode, args ...float64) {
	l.cmds = append(l.cmds, model.Command{Op: op, Args: args})
}

func (l *Lowerer) paint(kind model.PaintKind) {
	l.cmds = append(l.cmds, model.Command{Op: model.OpPaint, Paint: kind})
}

func (l *Lowerer) strokeColor(space model.ColorSpace, args []float64) {
	l.cmds = append(l.cmds, model.Command{Op: model.OpSetStrokeColor, Color: space, Args: args})
}

// Process lowers a single operation. Operations with missing or non-numeric
// operands are dropped.
func (l *Lowerer) Process(op contentstream.Operation) {
	nums, numeric := contentstream.Numbers(op.Operands)
	need := func(n int) bool { return numeric && len(nums) >= n }

	switch op.Operator {
	// Graphics state
	case "q":
		l.gs.Save()
		l.emit(model.OpSave)
	case "Q":
		l.gs.Restore()
		l.emit(model.OpRestore)
	case "cm":
		if need(6) {
			m := model.Matrix{nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]}
			l.gs.Transform(m)
			l.emit(model.OpTransform, nums[:6]...)
		}
	case "w":
		if need(1) {
			l.emit(model.OpSetLineWidth, nums[0])
		}

	// Stroke colour
	case "RG":
		if need(3) {
			l.strokeColor(model.ColorRGB, nums[:3])
		}
	case "G":
		if need(1) {
			l.strokeColor(model.ColorGray, nums[:1])
		}
	case "K":
		if need(4) {
			l.strokeColor(model.ColorCMYK, nums[:4])
		}
	case "SC", "SCN":
		l.strokeComponents(op.Operands)

	// Path construction
	case "m":
		if need(2) {
			l.emit(model.OpMoveTo, nums[0], nums[1])
		}
	case "l":
		if need(2) {
			l.emit(model.OpLineTo, nums[0], nums[1])
		}
	case "c":
		if need(6) {
			l.emit(model.OpCurveTo, nums[:6]...)
		}
	case "v":
		// first control point is the current point
		if need(4) {
			if cur, ok := l.currentPoint(); ok {
				l.emit(model.OpCurveTo, cur.X, cur.Y, nums[0], nums[1], nums[2], nums[3])
			} else {
				l.emit(model.OpCurveTo, nums[0], nums[1], nums[0], nums[1], nums[2], nums[3])
			}
		}
	case "y":
		// second control point is the end point
		if need(4) {
			l.emit(model.OpCurveTo, nums[0], nums[1], nums[2], nums[3], nums[2], nums[3])
		}
	case "h":
		l.emit(model.OpClosePath)
	case "re":
		if need(4) {
			x, y, w, h := nums[0], nums[1], nums[2], nums[3]
			l.emit(model.OpMoveTo, x, y)
			l.emit(model.OpLineTo, x+w, y)
			l.emit(model.OpLineTo, x+w, y+h)
			l.emit(model.OpLineTo, x, y+h)
			l.emit(model.OpClosePath)
		}

	// Painting
	case "S":
		l.paint(model.PaintStroke)
	case "s":
		l.emit(model.OpClosePath)
		l.paint(model.PaintStroke)
	case "f", "F", "f*":
		l.paint(model.PaintFill)
	case "B", "B*":
		l.paint(model.PaintFillStroke)
	case "b", "b*":
		l.emit(model.OpClosePath)
		l.paint(model.PaintFillStroke)
	case "n":
		l.paint(model.PaintNone)

	// Images
	case "Do", "BI":
		l.emit(model.OpPaintImage)

	// Text object and state
	case "BT":
		l.gs.BeginText()
	case "ET":
	case "Tf":
		if len(op.Operands) == 2 {
			name, _ := op.Operands[0].(contentstream.Name)
			if size, ok := contentstream.Number(op.Operands[1]); ok {
				l.gs.SetFont(string(name), size)
			}
		}
	case "Tc":
		if need(1) {
			l.gs.Text.CharSpacing = nums[0]
		}
	case "Tw":
		if need(1) {
			l.gs.Text.WordSpacing = nums[0]
		}
	case "Tz":
		if need(1) {
			l.gs.Text.HorizontalScaling = nums[0]
		}
	case "TL":
		if need(1) {
			l.gs.Text.Leading = nums[0]
		}
	case "Ts":
		if need(1) {
			l.gs.Text.Rise = nums[0]
		}

	// Text positioning
	case "Tm":
		if need(6) {
			l.gs.SetTextMatrix(model.Matrix{nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]})
		}
	case "Td":
		if need(2) {
			l.gs.TranslateText(nums[0], nums[1])
		}
	case "TD":
		if need(2) {
			l.gs.TranslateTextSetLeading(nums[0], nums[1])
		}
	case "T*":
		l.gs.NextLine()

	// Text showing
	case "Tj":
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(contentstream.String); ok {
				l.showText(DecodeString([]byte(s)))
			}
		}
	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(contentstream.Array); ok {
				l.showTextArray(arr)
			}
		}
	case "'":
		l.gs.NextLine()
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(contentstream.String); ok {
				l.showText(DecodeString([]byte(s)))
			}
		}
	case "\"":
		if len(op.Operands) == 3 {
			if aw, ok := contentstream.Number(op.Operands[0]); ok {
				l.gs.Text.WordSpacing = aw
			}
			if ac, ok := contentstream.Number(op.Operands[1]); ok {
				l.gs.Text.CharSpacing = ac
			}
			l.gs.NextLine()
			if s, ok := op.Operands[2].(contentstream.String); ok {
				l.showText(DecodeString([]byte(s)))
			}
		}

	default:
		l.Ignored++
	}
}

// strokeComponents handles SC/SCN, whose colour space is inferred from the
// number of numeric components. A trailing pattern name is ignored.
func (l *Lowerer) strokeComponents(operands []contentstream.Object) {
	var nums []float64
	for _, obj := range operands {
		if v, ok := contentstream.Number(obj); ok {
			nums = append(nums, v)
		}
	}
	switch len(nums) {
	case 1:
		l.strokeColor(model.ColorGray, nums)
	case 3:
		l.strokeColor(model.ColorRGB, nums)
	case 4:
		l.strokeColor(model.ColorCMYK, nums)
	}
}

// currentPoint returns the user-space end point of the last path command
func (l *Lowerer) currentPoint() (model.Point, bool) {
	for i := len(l.cmds) - 1; i >= 0; i-- {
		c := l.cmds[i]
		switch c.Op {
		case model.OpMoveTo, model.OpLineTo:
			return model.Point{X: c.Arg(0), Y: c.Arg(1)}, true
		case model.OpCurveTo:
			return model.Point{X: c.Arg(4), Y: c.Arg(5)}, true
		case model.OpClosePath, model.OpPaint:
			return model.Point{}, false
		}
	}
	return model.Point{}, false
}

func (l *Lowerer) showText(s string) {
	if s == "" {
		return
	}
	l.runs = append(l.runs, model.TextRun{
		Text:      s,
		Transform: l.gs.TextRenderingMatrix(),
	})
	l.advance(s)
}

// showTextArray emits one run for the whole TJ array so kerned pieces of a
// word stay together. Large negative adjustments become spaces.
func (l *Lowerer) showTextArray(arr contentstream.Array) {
	var sb strings.Builder
	start := l.gs.TextRenderingMatrix()

	for _, item := range arr {
		switch v := item.(type) {
		case contentstream.String:
			s := DecodeString([]byte(v))
			sb.WriteString(s)
			l.advance(s)
		case contentstream.Int, contentstream.Real:
			adj, _ := contentstream.Number(v)
			if -adj/1000 >= spaceKern && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			l.gs.Kern(adj)
		}
	}

	if sb.Len() == 0 {
		return
	}
	l.runs = append(l.runs, model.TextRun{Text: sb.String(), Transform: start})
}

func (l *Lowerer) advance(s string) {
	n := len([]rune(s))
	l.gs.AdvanceText(s, float64(n)*GlyphAdvance*l.gs.Text.FontSize)
}
