package grid

import "fmt"

// Rect is a footprint in grid cells: top-left cell (X, Y), W columns wide and
// H rows tall.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the first column after the footprint.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row after the footprint.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the footprint covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// WithX returns a copy of r moved to column x.
func (r Rect) WithX(x int) Rect {
	r.X = x
	return r
}

// Span is a half-open column range [Start, End).
type Span struct {
	Start, End int
}

// Columns returns the column span r occupies.
func (r Rect) Columns() Span { return Span{Start: r.X, End: r.Right()} }

// Len returns the number of columns in the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Intersects reports whether the two spans share a column.
func (s Span) Intersects(o Span) bool {
	return s.Len() > 0 && o.Len() > 0 && s.Start < o.End && o.Start < s.End
}

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Overlaps reports whether a and b share at least one cell.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// ColumnsIntersect reports whether a and b share a column, ignoring rows.
func ColumnsIntersect(a, b Rect) bool {
	return a.Columns().Intersects(b.Columns())
}
