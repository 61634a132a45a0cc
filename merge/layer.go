package merge

import (
	"github.com/tsawler/pdf2dxf/model"
)

// ByLayer groups segments by layer and merges each group independently.
// Segments without a layer go to the default layer. Groups are emitted in
// the order their layer first appears.
func ByLayer(segs []model.Segment, opts Options) []model.Polyline {
	var order []string
	groups := make(map[string][]model.Segment)

	for _, s := range segs {
		layer := s.Layer
		if layer == "" {
			layer = model.DefaultLayer
		}
		if _, ok := groups[layer]; !ok {
			order = append(order, layer)
		}
		groups[layer] = append(groups[layer], s)
	}

	var out []model.Polyline
	for _, layer := range order {
		for _, pl := range CleanupAndMergeLines(groups[layer], opts) {
			pl.Layer = layer
			out = append(out, pl)
		}
	}
	return out
}
