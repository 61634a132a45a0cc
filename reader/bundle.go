package reader

import (
	"fmt"

	"github.com/tsawler/pdf2dxf/model"
)

// bundleFile is the on-disk layout of a page bundle
type bundleFile struct {
	Pages []pageEntry `yaml:"pages"`
}

type pageEntry struct {
	Index       int            `yaml:"index"`
	Kind        string         `yaml:"kind"`
	MediaBox    []float64      `yaml:"media_box"`
	Rotate      int            `yaml:"rotate"`
	Viewport    []float64      `yaml:"viewport"`
	Content     string         `yaml:"content"`
	ContentFile string         `yaml:"content_file"`
	Filters     []string       `yaml:"filters"`
	Commands    []commandEntry `yaml:"commands"`
	Text        []runEntry     `yaml:"text"`
}

type commandEntry struct {
	Op    string    `yaml:"op"`
	Args  []float64 `yaml:"args"`
	Color string    `yaml:"color"`
	Paint string    `yaml:"paint"`
}

type runEntry struct {
	Text      string    `yaml:"text"`
	Transform []float64 `yaml:"transform"`
}

// command converts a structured command entry
func (c commandEntry) command() (model.Command, error) {
	op, paint, err := model.ParseOpCode(c.Op)
	if err != nil {
		return model.Command{}, err
	}
	cmd := model.Command{Op: op, Args: c.Args, Paint: paint}

	if c.Paint != "" {
		if cmd.Paint, err = model.ParsePaintKind(c.Paint); err != nil {
			return model.Command{}, err
		}
	}
	if op == model.OpSetStrokeColor {
		if cmd.Color, err = model.ParseColorSpace(c.Color); err != nil {
			return model.Command{}, err
		}
	}
	if want := cmd.ArgCount(); len(c.Args) != want {
		return model.Command{}, fmt.Errorf("%s takes %d arguments, got %d", op, want, len(c.Args))
	}
	return cmd, nil
}

// mediaBox converts [llx lly urx ury] to a box
func mediaBox(v []float64) (*model.BBox, error) {
	if len(v) == 0 {
		return nil, nil
	}
	if len(v) != 4 {
		return nil, fmt.Errorf("media_box needs 4 numbers, got %d", len(v))
	}
	box := model.NewBBoxFromPoints(model.Point{X: v[0], Y: v[1]}, model.Point{X: v[2], Y: v[3]})
	return &box, nil
}

func matrix(name string, v []float64) (model.Matrix, error) {
	var m model.Matrix
	if len(v) != 6 {
		return m, fmt.Errorf("%s needs 6 numbers, got %d", name, len(v))
	}
	copy(m[:], v)
	return m, nil
}
