package layout

import (
	"slices"

	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/grid"
)

// Layout is an immutable snapshot of placed tiles.
type Layout struct {
	tiles []Tile
}

// New returns a layout holding a copy of tiles.
func New(tiles ...Tile) Layout {
	return Layout{tiles: slices.Clone(tiles)}
}

// Len returns the number of tiles.
func (l Layout) Len() int { return len(l.tiles) }

// Tiles returns a copy of the tiles in insertion order.
func (l Layout) Tiles() []Tile { return slices.Clone(l.tiles) }

// At returns the i-th tile.
func (l Layout) At(i int) Tile { return l.tiles[i] }

// Find returns the tile with the given id.
func (l Layout) Find(id string) (Tile, bool) {
	if i := l.index(id); i >= 0 {
		return l.tiles[i], true
	}
	return Tile{}, false
}

func (l Layout) index(id string) int {
	return slices.IndexFunc(l.tiles, func(t Tile) bool { return t.ID == id })
}

// Append returns a new layout with t added on top.
func (l Layout) Append(t Tile) Layout {
	out := make([]Tile, len(l.tiles), len(l.tiles)+1)
	copy(out, l.tiles)
	return Layout{tiles: append(out, t)}
}

// Replace returns a new layout with the tile sharing t's id replaced in
// place. The second result is false when no such tile exists.
func (l Layout) Replace(t Tile) (Layout, bool) {
	i := l.index(t.ID)
	if i < 0 {
		return l, false
	}
	out := slices.Clone(l.tiles)
	out[i] = t
	return Layout{tiles: out}, true
}

// MoveToTop returns a new layout where the tile sharing t's id is removed
// and t is appended last, so it is drawn above every other tile.
func (l Layout) MoveToTop(t Tile) (Layout, bool) {
	i := l.index(t.ID)
	if i < 0 {
		return l, false
	}
	out := make([]Tile, 0, len(l.tiles))
	out = append(out, l.tiles[:i]...)
	out = append(out, l.tiles[i+1:]...)
	return Layout{tiles: append(out, t)}, true
}

// Map returns a new layout with fn applied to every tile.
func (l Layout) Map(fn func(Tile) Tile) Layout {
	out := make([]Tile, len(l.tiles))
	for i, t := range l.tiles {
		out[i] = fn(t)
	}
	return Layout{tiles: out}
}

// Equal reports whether both layouts hold the same tiles in the same order.
func (l Layout) Equal(o Layout) bool {
	return slices.Equal(l.tiles, o.tiles)
}

// AnyOverlap reports whether candidate shares a cell with any tile whose id
// is not in exclude.
func (l Layout) AnyOverlap(candidate grid.Rect, exclude ...string) bool {
	for _, t := range l.tiles {
		if slices.Contains(exclude, t.ID) {
			continue
		}
		if grid.Overlaps(candidate, t.Rect()) {
			return true
		}
	}
	return false
}

// Overlapping returns the ids of tiles, other than those in exclude, whose
// columns intersect area.
func (l Layout) Overlapping(area grid.Rect, exclude ...string) []string {
	var ids []string
	for _, t := range l.tiles {
		if slices.Contains(exclude, t.ID) {
			continue
		}
		if grid.ColumnsIntersect(t.Rect(), area) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Validate checks the settled-layout invariants: unique ids and every tile
// inside the grid.
func (l Layout) Validate(spec grid.Spec) error {
	seen := make(map[string]struct{}, len(l.tiles))
	for _, t := range l.tiles {
		if _, dup := seen[t.ID]; dup {
			return errors.New(errors.ErrCodeInternal, "duplicate tile id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.W < 1 || t.H < 1 {
			return errors.New(errors.ErrCodeInternal, "tile %s has an empty footprint", t)
		}
		if !grid.Fits(t.Rect(), spec) {
			return errors.New(errors.ErrCodeOutOfBounds, "tile %s lies outside the %dx%d grid", t, spec.Columns, spec.Rows)
		}
	}
	return nil
}
