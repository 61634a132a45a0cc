// Package pages holds materialized pages and classifies them by content.
//
// A [Page] carries everything the converter needs for one page: its media
// box and rotation, an optional explicit viewport, the lowered drawing
// commands, and the raw text runs.
//
// # Page Kinds
//
// Pages are tallied by their drawing commands:
//
//   - vector - path construction or painting and no images
//   - hybrid - vector content alongside images
//   - raster - no vector content (scanned pages); skipped by the converter
//
// A kind declared by the page source wins over the tally.
package pages
