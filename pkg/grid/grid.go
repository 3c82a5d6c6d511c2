package grid

import (
	"github.com/matzehuels/gategrid/pkg/errors"
)

// Default grid constants.
const (
	DefaultColumns  = 10
	DefaultRows     = 3
	DefaultCellSize = 50
	DefaultMarginX  = 10
	DefaultMarginY  = 10
)

// Spec holds the immutable grid constants supplied at construction time.
// CellSize and the margins are display hints only; placement logic uses
// Columns and Rows exclusively.
type Spec struct {
	Columns  int `toml:"columns"`
	Rows     int `toml:"rows"`
	CellSize int `toml:"cell_size"`
	MarginX  int `toml:"margin_x"`
	MarginY  int `toml:"margin_y"`
}

// Default returns the 10×3 grid used by the circuit editor.
func Default() Spec {
	return Spec{
		Columns:  DefaultColumns,
		Rows:     DefaultRows,
		CellSize: DefaultCellSize,
		MarginX:  DefaultMarginX,
		MarginY:  DefaultMarginY,
	}
}

// Validate reports an INVALID_GRID error when the grid has no cells.
func (s Spec) Validate() error {
	if s.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "columns must be >= 1, got %d", s.Columns)
	}
	if s.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "rows must be >= 1, got %d", s.Rows)
	}
	if s.CellSize < 0 || s.MarginX < 0 || s.MarginY < 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "cell size and margins must be >= 0")
	}
	return nil
}

// Extent returns the pixel size the grid occupies when every cell is
// CellSize wide with MarginX/MarginY gutters.
func (s Spec) Extent() (width, height int) {
	width = s.Columns * (s.CellSize + s.MarginX)
	height = s.Rows*(s.CellSize+s.MarginY) - s.MarginY
	return width, height
}

// Bounds returns the rectangle covering the whole grid.
func (s Spec) Bounds() Rect {
	return Rect{W: s.Columns, H: s.Rows}
}

// Fits reports whether r lies entirely inside the grid.
func Fits(r Rect, s Spec) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= s.Columns && r.Bottom() <= s.Rows
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
