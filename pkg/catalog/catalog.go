package catalog

import (
	"sort"

	"github.com/matzehuels/gategrid/pkg/errors"
)

// Component is one sub-placement of a composite operator, relative to the
// composite's top-left cell.
type Component struct {
	OperatorID string `toml:"operator" yaml:"operator"`
	X          int    `toml:"x" yaml:"x"`
	Y          int    `toml:"y" yaml:"y"`
	W          int    `toml:"w" yaml:"w"`
	H          int    `toml:"h" yaml:"h"`
}

// OperatorDef describes a tile type.
type OperatorDef struct {
	ID         string      `toml:"id" yaml:"id"`
	Name       string      `toml:"name" yaml:"name"`
	Symbol     string      `toml:"symbol" yaml:"symbol"`
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	Fill       string      `toml:"fill" yaml:"fill"`
	Composite  bool        `toml:"composite" yaml:"composite"`
	Components []Component `toml:"component" yaml:"components"`
}

// BaseWidth returns the operator's width in cells; zero means 1.
func (d OperatorDef) BaseWidth() int { return atLeastOne(d.Width) }

// BaseHeight returns the operator's height in cells; zero means 1.
func (d OperatorDef) BaseHeight() int { return atLeastOne(d.Height) }

// Expandable reports whether the operator can be shown in expanded mode.
func (d OperatorDef) Expandable() bool {
	return d.Composite && len(d.Components) > 0
}

// BoundingWidth returns max(c.X) - min(c.X) + 1 over the components.
// The second result is false when the operator is not expandable.
func (d OperatorDef) BoundingWidth() (int, bool) {
	if !d.Expandable() {
		return 0, false
	}
	lo, hi := d.Components[0].X, d.Components[0].X
	for _, c := range d.Components[1:] {
		lo = min(lo, c.X)
		hi = max(hi, c.X)
	}
	return hi - lo + 1, true
}

// Label returns the symbol shown on the tile, falling back to the id.
func (d OperatorDef) Label() string {
	if d.Symbol != "" {
		return d.Symbol
	}
	return d.ID
}

func (d OperatorDef) clone() OperatorDef {
	if d.Components != nil {
		d.Components = append([]Component(nil), d.Components...)
	}
	return d
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Catalog is an immutable registry of operator definitions keyed by id.
// It is safe for concurrent reads.
type Catalog struct {
	defs  map[string]OperatorDef
	order []string
}

// New validates defs and builds a catalog preserving their order.
func New(defs ...OperatorDef) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]OperatorDef, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		if err := errors.ValidateOperatorID(d.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "operator %q", d.ID)
		}
		if _, dup := c.defs[d.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate operator id %q", d.ID)
		}
		if d.Width < 0 || d.Height < 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "operator %q: negative footprint %dx%d", d.ID, d.Width, d.Height)
		}
		if !d.Composite && len(d.Components) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "operator %q lists components but is not composite", d.ID)
		}
		c.defs[d.ID] = d.clone()
		c.order = append(c.order, d.ID)
	}

	// Components are checked once every id is known so definitions may
	// appear in any order.
	for _, id := range c.order {
		if err := c.validateComponents(c.defs[id]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Use it for package-level catalogs.
func MustNew(defs ...OperatorDef) *Catalog {
	c, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validateComponents(d OperatorDef) error {
	for i, comp := range d.Components {
		ref, ok := c.defs[comp.OperatorID]
		if !ok {
			return errors.New(errors.ErrCodeInvalidCatalog, "operator %q component %d: unknown operator %q", d.ID, i, comp.OperatorID)
		}
		if ref.Composite {
			return errors.New(errors.ErrCodeInvalidCatalog, "operator %q component %d: nested composite %q", d.ID, i, ref.ID)
		}
		if comp.X < 0 || comp.Y < 0 || comp.W < 0 || comp.H < 0 {
			return errors.New(errors.ErrCodeInvalidCatalog, "operator %q component %d: negative geometry", d.ID, i)
		}
		if comp.Y+atLeastOne(comp.H) > d.BaseHeight() {
			return errors.New(errors.ErrCodeInvalidCatalog, "operator %q component %d: extends below the operator's %d rows", d.ID, i, d.BaseHeight())
		}
	}
	return nil
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id string) (OperatorDef, bool) {
	if c == nil {
		return OperatorDef{}, false
	}
	d, ok := c.defs[id]
	if !ok {
		return OperatorDef{}, false
	}
	return d.clone(), true
}

// Has reports whether id is defined.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.defs[id]
	return ok
}

// All returns every definition in registration order.
func (c *Catalog) All() []OperatorDef {
	if c == nil {
		return nil
	}
	out := make([]OperatorDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id].clone())
	}
	return out
}

// IDs returns the operator ids sorted alphabetically.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)
	return ids
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
