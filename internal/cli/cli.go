// Package cli implements the gategrid command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gategrid/pkg/buildinfo"
	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/config"
	"github.com/matzehuels/gategrid/pkg/grid"
	"github.com/matzehuels/gategrid/pkg/ids"
	"github.com/matzehuels/gategrid/pkg/observability"
	"github.com/matzehuels/gategrid/pkg/placement"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "gategrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the configuration loaded by the root command.
func (c *CLI) Config() config.Config {
	return c.cfg
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Gategrid places quantum gates on a circuit grid",
		Long: `Gategrid is the placement engine of a quantum circuit editor: gates dropped
on a grid of qubit rows and time-step columns, dragged, and expanded in place
to reveal the gates inside a composite.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "configuration file (TOML)")

	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.checkConfigCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration file and attaches the logger to the
// command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.configPath != "" {
		cfg, err := config.LoadFile(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		level, _ := cfg.Level()
		c.Logger.SetLevel(level)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Editor Factory
// =============================================================================

// editorOpts are the flags shared by commands that build an editor.
type editorOpts struct {
	catalog string
	columns int
	rows    int
	uuids   bool
}

func (o *editorOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.catalog, "catalog", "", "catalog file (default: configured or built-in catalog)")
	cmd.Flags().IntVar(&o.columns, "columns", 0, "grid columns (default: configured value)")
	cmd.Flags().IntVar(&o.rows, "rows", 0, "grid rows (default: configured value)")
	cmd.Flags().BoolVar(&o.uuids, "uuid", false, "use random tile ids instead of tile-1, tile-2, ...")
}

// catalogPath returns the catalog file that loadCatalog reads: path when
// set, else the configured one. Empty means the built-in catalog.
func (c *CLI) catalogPath(path string) string {
	if path != "" {
		return path
	}
	return c.cfg.Catalog
}

// loadCatalog returns the catalog named by path, or the configured one.
func (c *CLI) loadCatalog(path string) (*catalog.Catalog, error) {
	if p := c.catalogPath(path); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Default(), nil
}

// gridSpec applies flag overrides to the configured grid.
func (c *CLI) gridSpec(o editorOpts) (grid.Spec, error) {
	spec := c.cfg.Grid
	if o.columns != 0 {
		spec.Columns = o.columns
	}
	if o.rows != 0 {
		spec.Rows = o.rows
	}
	return spec, spec.Validate()
}

// newEditor builds an editor whose hooks log every gesture at debug level.
func (c *CLI) newEditor(logger *log.Logger, o editorOpts) (*placement.Editor, error) {
	cat, err := c.loadCatalog(o.catalog)
	if err != nil {
		return nil, err
	}
	spec, err := c.gridSpec(o)
	if err != nil {
		return nil, err
	}

	var gen ids.Generator = ids.NewCounter("")
	if o.uuids {
		gen = ids.NewUUID()
	}
	return placement.New(spec, cat,
		placement.WithLogger(logger.WithPrefix("editor")),
		placement.WithIDs(gen),
		placement.WithHooks(observability.NewLogHooks(logger)),
	)
}
