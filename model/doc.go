// Package model provides the shared data types of the conversion pipeline.
//
// Every stage of the pipeline reads and produces these types, so they form
// the contract between the command source, the reconstruction engines and
// the DXF writer.
//
// # Input
//
// A page arrives as an ordered list of [Command] values (save, restore,
// transform, line width, stroke colour, path construction and painting)
// plus a list of [TextRun] values, each carrying the shown string and its
// text rendering matrix.
//
// # Geometry
//
// Reconstruction produces device-space primitives:
//
//   - [Segment] - a raw directed line
//   - [Polyline] - an ordered connected point sequence
//   - [Circle], [Arc] - fitted circular geometry
//   - [TextFragment] - positioned, rotated text
//
// Every primitive carries a layer key. [Geometry] collects all of them for
// a document and is what the writer serialises.
//
// # Transforms
//
// [Matrix] is a 2D affine transform in PDF order [a b c d e f].
// [PageViewport] derives the user-space to drawing-space transform of a
// page from its media box, scale and rotation.
package model
