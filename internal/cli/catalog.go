package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gategrid/pkg/catalog"
)

// catalogCommand creates the command listing the operator catalog.
func (c *CLI) catalogCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the operators available for placement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(path)
			if err != nil {
				return err
			}
			fmt.Println(catalogTable(cat))
			printDetail("%d operators", cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "catalog", "", "catalog file (default: configured or built-in catalog)")
	return cmd
}

// catalogTable renders every operator in catalog order.
func catalogTable(cat *catalog.Catalog) *table.Table {
	var rows [][]string
	for _, d := range cat.All() {
		expanded := "-"
		if w, ok := d.BoundingWidth(); ok {
			expanded = strconv.Itoa(w)
		}
		rows = append(rows, []string{
			d.ID,
			d.Label(),
			d.Name,
			fmt.Sprintf("%dx%d", d.BaseWidth(), d.BaseHeight()),
			expanded,
			componentList(d),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Symbol", "Name", "Size", "Expanded", "Components").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(styleHeader)
			}
			if col == 4 && rows[row][4] != "-" {
				return base.Inherit(styleExpanded)
			}
			return base
		})
}

func componentList(d catalog.OperatorDef) string {
	s := ""
	for i, comp := range d.Components {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s@%d,%d", comp.OperatorID, comp.X, comp.Y)
	}
	return s
}
