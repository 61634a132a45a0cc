// Package dxf serializes reconstructed geometry as an ASCII DXF document.
//
// The output has a HEADER section carrying the version tag, a TABLES
// section with one LAYER record per distinct layer, and an ENTITIES section
// listing polylines (LWPOLYLINE), lines, circles, arcs and text, in that
// order. Numbers are written with three decimals and non-finite values as
// 0, so identical geometry always produces identical bytes.
//
//	var buf bytes.Buffer
//	err := dxf.NewWriter(dxf.DefaultOptions()).Write(&buf, geom)
package dxf
