package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/grid"
	"github.com/matzehuels/gategrid/pkg/layout"
)

const (
	cellWidth = 4
	emptyCell = "·"
	coverCell = "░"
)

// cellStyle fits a label into one grid cell by display width; longer labels
// are cut to the cell.
var cellStyle = lipgloss.NewStyle().Width(cellWidth).MaxWidth(cellWidth).MaxHeight(1)

// gridView returns a plain-text dump of l: one line per row, the operator
// label in each tile's top-left cell and a fill mark in the other cells it
// covers. Later tiles are drawn over earlier ones.
func gridView(l layout.Layout, cat *catalog.Catalog, spec grid.Spec) string {
	cells := make([][]string, spec.Rows)
	for y := range cells {
		cells[y] = make([]string, spec.Columns)
		for x := range cells[y] {
			cells[y][x] = emptyCell
		}
	}

	for _, t := range l.Tiles() {
		label := t.OperatorID
		if def, ok := cat.Lookup(t.OperatorID); ok {
			label = def.Label()
		}
		for y := t.Y; y < t.Y+t.H && y < spec.Rows; y++ {
			for x := t.X; x < t.X+t.W && x < spec.Columns; x++ {
				if x == t.X && y == t.Y {
					cells[y][x] = label
				} else {
					cells[y][x] = coverCell
				}
			}
		}
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cellStyle.Render(cell))
		}
	}
	return b.String()
}
