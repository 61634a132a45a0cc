// Package source lowers parsed PDF content-stream operations into the
// drawing-command stream and text runs consumed by the reconstructors.
//
// Only the stroke side of the graphics state is carried into commands:
// fill colours, clipping and marked content are dropped. Text showing
// operators produce one TextRun per shown string, positioned by the text
// rendering matrix in user space. Glyph advances are estimated at 0.55 em
// per character since fonts are not loaded.
//
//	cmds, runs, err := source.LowerBytes(content)
package source
