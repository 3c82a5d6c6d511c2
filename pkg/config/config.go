// Package config loads gategrid configuration files.
//
// A configuration file is TOML:
//
//	log_level = "debug"
//	catalog   = "gates.toml"
//
//	[grid]
//	columns = 12
//	rows    = 4
//
// Keys that are absent keep the values of [Default]. A relative catalog path
// is resolved against the directory of the configuration file.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/grid"
)

// Config holds the settings an editor is built from.
type Config struct {
	Grid grid.Spec `toml:"grid"`

	// Catalog is the path of a TOML catalog file. Empty selects the
	// built-in catalog.
	Catalog string `toml:"catalog"`

	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Grid:     grid.Default(),
		LogLevel: "info",
	}
}

// Validate checks the grid constants and the log level.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[grid]")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
	}
	return lvl, nil
}

// LoadCatalog returns the catalog named by Catalog, or the built-in one.
func (c Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.Catalog)
}

// Load reads a configuration from r.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a configuration from path.
func LoadFile(path string) (Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, err
	}
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}
	return cfg, nil
}
