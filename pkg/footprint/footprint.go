// Package footprint derives the number of grid cells a tile occupies.
//
// A tile normally occupies its operator's base width and height. The one
// exception is the expanded tile: its width becomes the bounding width of
// its operator's components while its height stays the operator height.
package footprint

import (
	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/layout"
)

// Lookup resolves operator ids. *catalog.Catalog satisfies it.
type Lookup interface {
	Lookup(id string) (catalog.OperatorDef, bool)
}

// Base returns the operator's unexpanded footprint.
func Base(def catalog.OperatorDef) (w, h int) {
	return def.BaseWidth(), def.BaseHeight()
}

// ExpandedWidth returns the width def takes while expanded. The second
// result is false when def has no components.
func ExpandedWidth(def catalog.OperatorDef) (int, bool) {
	return def.BoundingWidth()
}

// Effective returns the footprint tile occupies under the given expansion
// state. Unknown operators occupy a single cell.
func Effective(tile layout.Tile, cat Lookup, exp layout.Expansion) (w, h int) {
	def, ok := cat.Lookup(tile.OperatorID)
	if !ok {
		return 1, 1
	}
	w, h = Base(def)
	if exp.Is(tile.ID) {
		if ew, ok := ExpandedWidth(def); ok {
			w = ew
		}
	}
	return w, h
}
