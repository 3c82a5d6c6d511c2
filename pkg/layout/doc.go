// Package layout holds the placed-tile snapshot the editor works on.
//
// A [Layout] is an ordered list of [Tile] values. Order is insertion order
// and only matters for drawing (later tiles are drawn on top). Every method
// that changes a layout returns a new one; snapshots handed out by the
// editor can be kept and compared freely.
//
// [Expansion] records which tile, if any, is currently expanded.
package layout
