package graphicsstate

import (
	"math"
	"testing"

	"github.com/tsawler/pdf2dxf/model"
)

func TestColorConversions(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"rgb red", RGB(1, 0, 0), Color{255, 0, 0}},
		{"rgb rounding", RGB(0.5, 0.2, 0.999), Color{128, 51, 255}},
		{"rgb clamp", RGB(1.5, -0.5, math.NaN()), Color{255, 0, 0}},
		{"gray", Gray(0.5), Color{128, 128, 128}},
		{"cmyk white", CMYK(0, 0, 0, 0), Color{255, 255, 255}},
		{"cmyk black", CMYK(0, 0, 0, 1), Color{0, 0, 0}},
		{"cmyk cyan", CMYK(1, 0, 0, 0), Color{0, 255, 255}},
		{"cmyk half key", CMYK(0, 0.5, 0, 0.5), Color{128, 64, 128}},
		{"cmyk clamp", CMYK(2, -1, 0, 0), Color{0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestColorFromCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  model.Command
		want Color
	}{
		{"rgb", model.Command{Op: model.OpSetStrokeColor, Color: model.ColorRGB, Args: []float64{0, 1, 0}}, Color{0, 255, 0}},
		{"gray", model.Command{Op: model.OpSetStrokeColor, Color: model.ColorGray, Args: []float64{1}}, Color{255, 255, 255}},
		{"cmyk", model.Command{Op: model.OpSetStrokeColor, Color: model.ColorCMYK, Args: []float64{0, 0, 1, 0}}, Color{255, 255, 0}},
		{"missing args", model.Command{Op: model.OpSetStrokeColor, Color: model.ColorRGB, Args: []float64{1}}, Color{255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromCommand(tt.cmd); got != tt.want {
				t.Errorf("ColorFromCommand() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
