package layout

import (
	"fmt"

	"github.com/matzehuels/gategrid/pkg/grid"
)

// Tile is an operator instance placed on the grid.
type Tile struct {
	ID         string
	OperatorID string
	X, Y       int
	W, H       int
}

// Rect returns the tile's footprint.
func (t Tile) Rect() grid.Rect {
	return grid.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// WithRect returns a copy of t with its position and footprint set from r.
func (t Tile) WithRect(r grid.Rect) Tile {
	t.X, t.Y, t.W, t.H = r.X, r.Y, r.W, r.H
	return t
}

func (t Tile) String() string {
	return fmt.Sprintf("%s[%s]@%v", t.ID, t.OperatorID, t.Rect())
}

// Expansion is the expansion state: the id of the expanded tile, or empty
// when every tile is collapsed.
type Expansion struct {
	TileID string
}

// Collapsed is the state with no expanded tile.
var Collapsed = Expansion{}

// Expanded returns the state in which tileID is expanded.
func Expanded(tileID string) Expansion { return Expansion{TileID: tileID} }

// Active reports whether some tile is expanded.
func (e Expansion) Active() bool { return e.TileID != "" }

// Is reports whether tileID is the expanded tile.
func (e Expansion) Is(tileID string) bool { return e.Active() && e.TileID == tileID }

func (e Expansion) String() string {
	if !e.Active() {
		return "collapsed"
	}
	return "expanded(" + e.TileID + ")"
}
