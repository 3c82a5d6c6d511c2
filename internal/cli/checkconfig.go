package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gategrid/pkg/config"
)

// checkConfigCommand creates the command validating a configuration file.
func (c *CLI) checkConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config [file]",
		Short: "Validate a configuration file and the catalog it names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(args[0])
			if err != nil {
				printError("%s", args[0])
				return err
			}
			cat, err := cfg.LoadCatalog()
			if err != nil {
				printError("%s: catalog %s", args[0], cfg.Catalog)
				return err
			}

			printSuccess("%s", args[0])
			printKeyValue("grid", fmt.Sprintf("%d columns x %d rows", cfg.Grid.Columns, cfg.Grid.Rows))
			width, height := cfg.Grid.Extent()
			printKeyValue("extent", fmt.Sprintf("%dx%d px", width, height))
			catalogName := cfg.Catalog
			if catalogName == "" {
				catalogName = "built-in"
			}
			printKeyValue("catalog", fmt.Sprintf("%s (%d operators)", catalogName, cat.Len()))
			printKeyValue("log level", cfg.LogLevel)
			if cfg.Catalog == "" {
				printInfo("Using the built-in catalog")
			}
			return nil
		},
	}
}
