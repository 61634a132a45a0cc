package text

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdf2dxf/model"
	"golang.org/x/text/unicode/norm"
)

const (
	minFontSize = 1.0
	maxFontSize = 200.0

	// fallbackFontSize is used for width estimation when a fragment has none
	fallbackFontSize = 10.0

	// widthFactor is the estimated glyph width in ems
	widthFactor = 0.55

	tolY     = 2.0
	tolAngle = 2.0
	minGap   = -1.0
	maxGap   = 6.0
)

// Options configures text reconstruction
type Options struct {
	// Scale multiplies the font size derived from the run transform
	Scale float64

	// JoinSameLine merges neighbouring fragments on the same baseline
	JoinSameLine bool
}

// DefaultOptions returns scale 1 with line joining enabled
func DefaultOptions() Options {
	return Options{Scale: 1, JoinSameLine: true}
}

// Reconstruct converts runs to fragments in device space. Empty and
// whitespace-only runs are dropped.
func Reconstruct(runs []model.TextRun, viewport model.Matrix, opts Options) []model.TextFragment {
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	frags := make([]model.TextFragment, 0, len(runs))
	for _, run := range runs {
		if frag, ok := Fragment(run, viewport, opts.Scale); ok {
			frags = append(frags, frag)
		}
	}

	if !opts.JoinSameLine {
		return frags
	}
	return Merge(frags)
}

// Fragment decomposes a single run. ok is false when the run has no
// visible text.
func Fragment(run model.TextRun, viewport model.Matrix, scale float64) (model.TextFragment, bool) {
	str := strings.TrimSpace(norm.NFC.String(run.Text))
	if str == "" {
		return model.TextFragment{}, false
	}

	m := run.Transform
	angle := NormalizeAngle(math.Atan2(m[1], m[0]) * 180 / math.Pi)
	pos := viewport.Transform(model.Point{X: m[4], Y: m[5]})
	size := math.Max(math.Abs(m[0]), math.Abs(m[3])) * scale

	return model.TextFragment{
		Text:     str,
		X:        pos.X,
		Y:        pos.Y,
		AngleDeg: angle,
		FontSize: clamp(size, minFontSize, maxFontSize),
		Layer:    LayerKey(size, angle),
	}, true
}

// LayerKey derives the synthetic layer for text of the given size and
// rotation. Sizes are rounded to 0.5 and rotations to 5 degrees.
func LayerKey(fontSize, angleDeg float64) string {
	fs := roundTo(fontSize, 0.5)
	rot := NormalizeAngle(roundTo(NormalizeAngle(angleDeg), 5))
	return fmt.Sprintf("TEXT_FS%.1f_R%.0f", fs, zero(rot))
}

// Merge sorts fragments by (y, x) and joins each fragment into the one
// before it when both share a baseline and rotation and the horizontal gap
// is small. A fragment that starts inside the previous fragment's estimated
// extent is also joined, as the width estimate overshoots narrow glyphs.
func Merge(frags []model.TextFragment) []model.TextFragment {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	merged := make([]model.TextFragment, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if joinable(cur, next) {
			cur.Text = strings.Join(strings.Fields(cur.Text+" "+next.Text), " ")
			cur.FontSize = math.Max(cur.FontSize, next.FontSize)
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}

func joinable(cur, next model.TextFragment) bool {
	if math.Abs(cur.AngleDeg-next.AngleDeg) > tolAngle {
		return false
	}
	if math.Abs(cur.Y-next.Y) > tolY {
		return false
	}

	width := EstimateWidth(cur)
	gap := next.X - (cur.X + width)
	if gap > maxGap {
		return false
	}
	return gap >= minGap || (next.X > cur.X && next.X < cur.X+width)
}

// EstimateWidth approximates the advance of a fragment in device units
func EstimateWidth(f model.TextFragment) float64 {
	size := f.FontSize
	if size == 0 {
		size = fallbackFontSize
	}
	return float64(utf8.RuneCountInString(f.Text)) * size * widthFactor
}

// NormalizeAngle maps degrees into (-180, 180]
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// zero folds negative zero so keys never render as "-0"
func zero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
