// Package text turns raw text runs into positioned, rotated and sized text
// fragments, optionally joining neighbouring fragments on the same line.
//
// Each run's transform is decomposed into a device-space anchor, a rotation
// in degrees and a font size. Fragments are then sorted by (y, x) and merged
// greedily left to right:
//
//	frags := text.Reconstruct(runs, viewport, text.DefaultOptions())
//
// The merge is a heuristic. It uses an estimated glyph width of 0.55 em per
// character and makes no attempt to separate overlapping columns.
package text
