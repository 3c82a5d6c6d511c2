package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gategrid/pkg/errors"
)

// file is the document layout of a catalog file.
type file struct {
	// IncludeDefaults prepends the built-in operators so a file only needs
	// to declare its additions.
	IncludeDefaults bool          `toml:"include_defaults" yaml:"include_defaults"`
	Operators       []OperatorDef `toml:"operator" yaml:"operators"`
}

func (f file) build() (*Catalog, error) {
	defs := f.Operators
	if f.IncludeDefaults {
		defs = append(DefaultDefs(), defs...)
	}
	if len(defs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog defines no operators")
	}
	return New(defs...)
}

// Load reads a TOML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog")
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog key %q", undecoded[0].String())
	}
	return f.build()
}

// LoadFile reads a catalog from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML.
func LoadFile(path string) (*Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open catalog %s", path)
	}
	if isYAML(path) {
		return ParseYAML(data)
	}
	return Parse(data)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
