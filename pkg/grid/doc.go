// Package grid describes the bounded placement grid and answers bounds and
// collision questions about rectangular footprints on it.
//
// # Coordinates
//
// The grid has Columns time steps along X and Rows timelines along Y. Cell
// (0, 0) is the top-left cell. A footprint occupies the half-open cell range
// [X, X+W) × [Y, Y+H); two footprints collide when both ranges intersect.
//
// # Bounds
//
// [Fits] is the single bounds predicate used by the rest of the engine:
//
//	spec := grid.Default()
//	grid.Fits(grid.Rect{X: 9, Y: 0, W: 1, H: 1}, spec) // true
//	grid.Fits(grid.Rect{X: 9, Y: 0, W: 2, H: 1}, spec) // false
//
// # Column Protection
//
// While a composite tile is expanded, only its columns are protected. Use
// [ColumnsIntersect] to check a candidate against them regardless of row.
package grid
