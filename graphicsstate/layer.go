package graphicsstate

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/pdf2dxf/model"
)

// LayerPolicy selects which stroke attributes make up a layer key
type LayerPolicy string

const (
	// LayerSingle puts all geometry on layer "0"
	LayerSingle LayerPolicy = "single"
	// LayerWidth groups by quantised line width
	LayerWidth LayerPolicy = "width"
	// LayerColor groups by stroke colour
	LayerColor LayerPolicy = "color"
	// LayerBoth groups by colour and quantised width
	LayerBoth LayerPolicy = "both"
)

// widthStep is the quantisation step for line widths in layer keys
const widthStep = 0.05

// ParseLayerPolicy resolves a policy name (case-insensitive)
func ParseLayerPolicy(name string) (LayerPolicy, error) {
	p := LayerPolicy(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case LayerSingle, LayerWidth, LayerColor, LayerBoth:
		return p, nil
	case "colour":
		return LayerColor, nil
	}
	return "", fmt.Errorf("unknown layer policy %q (want single, width, color or both)", name)
}

// LayerFromState derives the layer key for the current stroke attributes.
// Unknown policies fall back to LayerBoth.
func LayerFromState(s State, policy LayerPolicy) string {
	switch policy {
	case LayerSingle:
		return model.DefaultLayer
	case LayerWidth:
		return "L_W" + formatWidth(s.LineWidth)
	case LayerColor:
		return "L_RGB_" + formatColor(s.StrokeColor)
	default:
		return "L_RGB_" + formatColor(s.StrokeColor) + "_W" + formatWidth(s.LineWidth)
	}
}

func formatWidth(w float64) string {
	q := math.Round(w/widthStep) * widthStep
	if q == 0 || math.IsNaN(q) {
		q = 0
	}
	return fmt.Sprintf("%.2f", q)
}

func formatColor(c Color) string {
	return fmt.Sprintf("%03d_%03d_%03d", c.R, c.G, c.B)
}
