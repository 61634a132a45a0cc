// Package graphicsstate reconstructs device-space line geometry from a
// page's drawing-command stream.
//
// # Graphics State
//
// The main state type is GraphicsState, which tracks:
//
//   - CTM (Current Transformation Matrix) for coordinate transformations
//   - Line width and stroke colour (converted to 8-bit RGB)
//   - Text state (font, size, spacing, matrices)
//
// Frames are plain values, so Save pushes a full copy and Restore pops
// exactly one. A Restore on an empty stack resets to the defaults instead
// of failing:
//
//	gs := graphicsstate.NewGraphicsState()
//	gs.Save()              // q
//	gs.Transform(matrix)   // cm
//	gs.SetLineWidth(0.35)  // w
//	gs.Restore()           // Q
//
// # Layer Keys
//
// LayerFromState derives a layer name from stroke attributes according to
// a LayerPolicy (single, width, color or both). Widths are quantised to
// 0.05 and colours to 8-bit channels, so equal quantised inputs always give
// the same key.
//
// # Path Reconstruction
//
// PathReconstructor walks the command stream, maps every point through
// CTM and viewport, flattens cubic curves and emits:
//
//   - one Segment per straight piece (input of line merging)
//   - one Polyline per subpath with at least two points
//
//	res := graphicsstate.Reconstruct(cmds, viewport, graphicsstate.DefaultOptions())
package graphicsstate
