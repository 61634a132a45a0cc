package pages

import (
	"testing"

	"github.com/tsawler/pdf2dxf/model"
)

func cmds(ops ...model.OpCode) []model.Command {
	out := make([]model.Command, len(ops))
	for i, op := range ops {
		out[i] = model.Command{Op: op}
	}
	return out
}

func TestTally(t *testing.T) {
	tests := []struct {
		name   string
		cmds   []model.Command
		score  int
		images bool
		kind   Kind
	}{
		{"empty", nil, 0, false, KindRaster},
		{"image only", cmds(model.OpSave, model.OpPaintImage, model.OpRestore), 0, true, KindRaster},
		{"vector", cmds(model.OpMoveTo, model.OpLineTo, model.OpPaint), 3, false, KindVector},
		{"hybrid", cmds(model.OpPaintImage, model.OpMoveTo, model.OpCurveTo, model.OpClosePath), 3, true, KindHybrid},
		{"state only", cmds(model.OpSave, model.OpTransform, model.OpSetLineWidth), 0, false, KindRaster},
		{"end path", []model.Command{{Op: model.OpPaint, Paint: model.PaintNone}}, 0, false, KindRaster},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Tally(tt.cmds)
			if s.VectorScore != tt.score || s.HasImages != tt.images {
				t.Errorf("Tally() = %+v, want score %d images %v", s, tt.score, tt.images)
			}
			if s.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", s.Kind(), tt.kind)
			}
		})
	}
}

func TestPageKindDeclaredWins(t *testing.T) {
	p := NewPage(1)
	p.Commands = cmds(model.OpMoveTo, model.OpLineTo)
	if p.Kind() != KindVector {
		t.Errorf("Kind() = %s, want vector", p.Kind())
	}

	p.Declared = KindRaster
	if p.Kind() != KindRaster {
		t.Errorf("declared kind should win, got %s", p.Kind())
	}
	if p.Kind().Processable() {
		t.Error("raster pages are not processable")
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"", "vector", "RASTER", " hybrid "} {
		if _, err := ParseKind(name); err != nil {
			t.Errorf("ParseKind(%q) error: %v", name, err)
		}
	}
	if _, err := ParseKind("scanned"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPageMediaBox(t *testing.T) {
	p := NewPage(3)
	if _, err := p.MediaBox(); err == nil {
		t.Error("expected error for missing media box")
	}
	if _, err := p.Width(); err == nil {
		t.Error("Width should fail without a media box")
	}

	box := model.NewBBox(0, 0, 612, 792)
	p.Box = &box
	w, _ := p.Width()
	h, _ := p.Height()
	if w != 612 || h != 792 {
		t.Errorf("size = %vx%v, want 612x792", w, h)
	}

	p.Rotation = 90
	w, _ = p.Width()
	h, _ = p.Height()
	if w != 792 || h != 612 {
		t.Errorf("rotated size = %vx%v, want 792x612", w, h)
	}
}

func TestPageRotate(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {90, 90}, {-90, 270}, {450, 90}, {45, 0}, {540, 180},
	}
	for _, tt := range tests {
		p := &Page{Rotation: tt.in}
		if got := p.Rotate(); got != tt.want {
			t.Errorf("Rotate(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPageViewport(t *testing.T) {
	p := NewPage(1)
	if p.Viewport(1) != model.Identity() {
		t.Error("page without box or transform should use the identity")
	}
	if p.Viewport(2) != model.Scale(2, 2) {
		t.Error("scale should apply without a media box")
	}

	box := model.NewBBox(10, 20, 100, 50)
	p.Box = &box
	got := p.Viewport(1).Transform(model.Point{X: 10, Y: 20})
	if got != (model.Point{X: 0, Y: 0}) {
		t.Errorf("media box origin maps to %v, want (0,0)", got)
	}

	explicit := model.Translate(5, 5)
	p.Transform = &explicit
	if p.Viewport(3) != explicit {
		t.Error("explicit transform should win")
	}
}
