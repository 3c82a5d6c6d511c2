// Package placement resolves drop, drag and expansion gestures against the
// grid and owns the current layout.
//
// # Editor
//
// An [Editor] is the single owner of the layout snapshot and the expansion
// state. Each gesture runs to completion and either commits a new snapshot
// or is rejected with a coded error, in which case nothing changes:
//
//	ed, err := placement.New(grid.Default(), catalog.Default())
//	out, err := ed.Drop(catalog.IDHadamard, 3, 0)
//	out, err = ed.DragStop(out.Tile.ID, 5, 1)
//	out, err = ed.Toggle(someCompositeTileID)
//
// The editor is not safe for concurrent use; gestures are expected to be
// serialized by the UI event loop.
//
// # Rules
//
// Dropped tiles must fit the grid as requested. Dragged tiles are clamped
// into it. Tiles may overlap each other freely, except that the columns of
// the expanded composite tile are protected: a tile dropped or dragged onto
// them is relocated just right of the expanded tile, or just left of it,
// or rejected with BLOCKED_BY_EXPANSION when neither side has room.
//
// # Diagnostics
//
// Clamps, relocations and overlaps the expansion shifter could not resolve
// are reported as [layout.Diagnostic] values on the [Outcome], logged at
// warn level and forwarded to the observability hooks.
package placement
