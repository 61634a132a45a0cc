// Package shapes recognises circles and arcs among merged polylines.
//
// Each candidate polyline is decimated to roughly 1 unit spacing and fitted
// with the Kåsa algebraic least-squares circle. A polyline whose points all
// lie close to the fitted radius is then classified by its unwrapped angular
// span: closed paths covering more than 300 degrees become circles, and
// monotonic sweeps of at least MinArcAngleDeg become arcs. Everything else is
// returned unchanged.
package shapes
