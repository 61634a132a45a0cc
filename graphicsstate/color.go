package graphicsstate

import (
	"math"

	"github.com/tsawler/pdf2dxf/model"
)

// Color is an 8-bit RGB stroke colour
type Color struct {
	R, G, B uint8
}

// RGB converts components in [0,1] to a Color
func RGB(r, g, b float64) Color {
	return Color{R: clamp255(r * 255), G: clamp255(g * 255), B: clamp255(b * 255)}
}

// Gray converts a gray level in [0,1] to a Color with equal channels
func Gray(v float64) Color {
	c := clamp255(v * 255)
	return Color{R: c, G: c, B: c}
}

// CMYK converts CMYK components in [0,1] to RGB
func CMYK(c, m, y, k float64) Color {
	c, m, y, k = clamp01(c), clamp01(m), clamp01(y), clamp01(k)
	return Color{
		R: clamp255(255 * (1 - c) * (1 - k)),
		G: clamp255(255 * (1 - m) * (1 - k)),
		B: clamp255(255 * (1 - y) * (1 - k)),
	}
}

// ColorFromCommand converts the arguments of a setStrokeColor command
func ColorFromCommand(cmd model.Command) Color {
	switch cmd.Color {
	case model.ColorGray:
		return Gray(cmd.Arg(0))
	case model.ColorCMYK:
		return CMYK(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2), cmd.Arg(3))
	default:
		return RGB(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2))
	}
}

// clamp255 rounds v and clamps it to [0,255]. NaN maps to 0.
func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
