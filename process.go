package pdf2dxf

import (
	"fmt"

	"github.com/tsawler/pdf2dxf/graphicsstate"
	"github.com/tsawler/pdf2dxf/merge"
	"github.com/tsawler/pdf2dxf/model"
	"github.com/tsawler/pdf2dxf/pages"
	"github.com/tsawler/pdf2dxf/shapes"
	"github.com/tsawler/pdf2dxf/text"
)

// pageResult holds the privately owned output of one page task
type pageResult struct {
	meta     PageMeta
	geometry model.Geometry
	warnings []Warning
}

func pageMeta(p *pages.Page) PageMeta {
	stats := p.Stats()
	kind := p.Kind()
	return PageMeta{
		Index:       p.Index,
		Kind:        kind,
		VectorScore: stats.VectorScore,
		HasImages:   stats.HasImages,
		Skipped:     !kind.Processable(),
	}
}

// runPage processes one page. A panic degrades the page to empty geometry
// and a warning.
func (c *Converter) runPage(p *pages.Page, opts Options) (res pageResult) {
	res.meta = pageMeta(p)
	log := c.logger.With().Int("page", p.Index).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("page failed")
			res.geometry = model.Geometry{}
			res.warnings = append(res.warnings, Warning{
				Page:    p.Index,
				Message: fmt.Sprintf("reconstruction failed: %v", r),
			})
		}
	}()

	if p.Err != nil {
		log.Warn().Err(p.Err).Msg("page content unreadable")
		res.warnings = append(res.warnings, Warning{Page: p.Index, Message: p.Err.Error()})
		return res
	}
	if res.meta.Skipped {
		log.Debug().Str("kind", string(res.meta.Kind)).Msg("page skipped")
		return res
	}

	var underflows int
	res.geometry, underflows = processPage(p, opts)
	if underflows > 0 {
		log.Warn().Int("underflows", underflows).Msg("unbalanced restore")
		res.warnings = append(res.warnings, Warning{
			Page:    p.Index,
			Message: fmt.Sprintf("%d restore without matching save", underflows),
		})
	}

	counts := CountGeometry(res.geometry)
	log.Debug().
		Str("kind", string(res.meta.Kind)).
		Int("polylines", counts.Polylines).
		Int("circles", counts.Circles).
		Int("arcs", counts.Arcs).
		Int("texts", counts.Texts).
		Msg("page converted")
	return res
}

// processPage runs the reconstruction pipeline over one page and returns
// its geometry and the number of restore underflows
func processPage(p *pages.Page, opts Options) (model.Geometry, int) {
	viewport := p.Viewport(opts.Scale)

	pr := graphicsstate.NewPathReconstructor(viewport, opts.pathOptions())
	paths := pr.Run(p.Commands)

	merged := merge.ByLayer(paths.Segments, opts.Merge)
	detected := shapes.Detect(merged, opts.Shapes)

	geom := model.Geometry{
		Polylines: detected.Remaining,
		Circles:   detected.Circles,
		Arcs:      detected.Arcs,
	}
	if opts.KeepRawPaths {
		geom.Polylines = append(geom.Polylines, paths.Polylines...)
	}
	geom.Texts = text.Reconstruct(p.Text, viewport, opts.textOptions())

	return geom, pr.Underflows
}
