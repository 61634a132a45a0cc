// Package pdf2dxf reconstructs CAD geometry from vector PDF pages and writes
// it as a DXF drawing.
//
// Basic usage:
//
//	res, warnings, err := pdf2dxf.Open("drawing.yaml").Convert(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdf2dxf.FormatWarnings(warnings))
//	}
//	os.WriteFile("drawing.dxf", res.DXF, 0o644)
//
// With options:
//
//	res, _, err := pdf2dxf.Open("drawing.yaml").
//	    Pages(1, 2).
//	    LayerPolicy(graphicsstate.LayerBoth).
//	    TextAsMText().
//	    Workers(4).
//	    Convert(ctx)
//
// Each page runs through the pipeline independently: path reconstruction,
// per-layer line merging, circle and arc detection, and text reconstruction.
// Raster pages are skipped. Page results are appended in ascending page
// order, so the output is byte-identical for identical input.
//
// For lower-level access, the reader, graphicsstate, merge, shapes, text and
// dxf packages can be used directly.
package pdf2dxf
