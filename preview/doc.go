// Package preview renders reconstructed geometry to a PNG image for visual
// checking.
//
// The drawing is fitted into a square of Options.MaxSize pixels, y-up
// geometry is flipped into image space, and every primitive is stroked in
// black on white. Circles and arcs are sampled at 64 steps per full turn.
// Text fragments are shown as a small cross at their anchor.
//
//	img := preview.Render(geometry, preview.DefaultOptions())
//	err := preview.WriteFile("page.png", geometry, preview.DefaultOptions())
package preview
