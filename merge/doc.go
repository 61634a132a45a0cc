// Package merge collapses raw line segments into maximal polylines.
//
// Segment endpoints are snapped to a grid, short and duplicate segments are
// dropped, and the remainder forms a graph whose nodes are snapped points.
// Polylines are extracted by walking the graph from every endpoint or branch
// node, continuing through a branch only along the most collinear unused
// edge. Every edge is consumed at most once.
//
// Iteration follows insertion order throughout, so identical input always
// yields identical output. State is local to each call and calls may run
// concurrently.
package merge
