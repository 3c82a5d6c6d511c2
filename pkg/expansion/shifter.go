package expansion

import (
	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/footprint"
	"github.com/matzehuels/gategrid/pkg/grid"
	"github.com/matzehuels/gategrid/pkg/layout"
)

// Result is the outcome of a state transition.
type Result struct {
	Layout      layout.Layout
	State       layout.Expansion
	Diagnostics []layout.Diagnostic

	// Passes is the number of shifting passes run; zero when nothing was
	// expanded.
	Passes int
}

// Shifter computes expansion transitions on a fixed grid and catalog.
type Shifter struct {
	spec grid.Spec
	cat  footprint.Lookup
}

// NewShifter returns a shifter for spec and cat.
func NewShifter(spec grid.Spec, cat footprint.Lookup) *Shifter {
	return &Shifter{spec: spec, cat: cat}
}

// Collapse returns l with every tile reset to its operator's base width.
// Heights and positions are untouched.
func (s *Shifter) Collapse(l layout.Layout) layout.Layout {
	return l.Map(func(t layout.Tile) layout.Tile {
		if def, ok := s.cat.Lookup(t.OperatorID); ok {
			t.W = def.BaseWidth()
		}
		return t
	})
}

// Expand widens tileID to its expanded width and shifts tiles out of the
// columns it covers. On error l is returned unchanged inside Result.
func (s *Shifter) Expand(l layout.Layout, tileID string) (Result, error) {
	unchanged := Result{Layout: l, State: layout.Collapsed}

	target, ok := l.Find(tileID)
	if !ok {
		return unchanged, errors.New(errors.ErrCodeNotFound, "tile %q is not on the grid", tileID)
	}
	def, ok := s.cat.Lookup(target.OperatorID)
	if !ok {
		return unchanged, errors.New(errors.ErrCodeUnknownOperator, "tile %q refers to unknown operator %q", tileID, target.OperatorID)
	}
	width, ok := footprint.ExpandedWidth(def)
	if !ok {
		return unchanged, errors.New(errors.ErrCodeNotExpandable, "operator %q has no components to expand", def.ID)
	}
	if target.X+width > s.spec.Columns {
		return unchanged, errors.New(errors.ErrCodeExpansionWouldOverflow,
			"tile %q at column %d needs %d columns, grid has %d", tileID, target.X, width, s.spec.Columns)
	}

	target.W, target.H = width, def.BaseHeight()
	widened, _ := l.Replace(target)

	shifted, passes, diags := s.shift(widened, target, width)
	return Result{
		Layout:      shifted,
		State:       layout.Expanded(tileID),
		Diagnostics: diags,
		Passes:      passes,
	}, nil
}

// shift moves tiles out of target's columns by width until a pass moves
// nothing or the pass budget runs out.
func (s *Shifter) shift(l layout.Layout, target layout.Tile, width int) (layout.Layout, int, []layout.Diagnostic) {
	protected := target.Rect()
	maxPasses := max(1, l.Len())

	passes := 0
	for passes < maxPasses {
		passes++
		moved := false
		l = l.Map(func(t layout.Tile) layout.Tile {
			if t.ID == target.ID || t.ID == layout.PlaceholderID {
				return t
			}
			if !grid.ColumnsIntersect(t.Rect(), protected) {
				return t
			}
			if right := t.X + width; right+t.W <= s.spec.Columns {
				t.X = right
				moved = true
				return t
			}
			if left := t.X - width; left >= 0 {
				t.X = left
				moved = true
			}
			return t
		})
		if !moved {
			break
		}
	}

	var diags []layout.Diagnostic
	for _, id := range l.Overlapping(protected, target.ID, layout.PlaceholderID) {
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeResidualOverlap, id,
			"no free position outside columns %v of expanded tile %q", protected.Columns(), target.ID))
	}
	return l, passes, diags
}

// Transition moves from the current state to target, where an empty target
// means collapse. Requests that would not change the state return l as is.
// On error the returned Result carries l and current unchanged.
func (s *Shifter) Transition(l layout.Layout, current layout.Expansion, target string) (Result, error) {
	if target == "" {
		if !current.Active() {
			return Result{Layout: l, State: current}, nil
		}
		return Result{Layout: s.Collapse(l), State: layout.Collapsed}, nil
	}
	if current.Is(target) {
		return Result{Layout: l, State: current}, nil
	}

	base := l
	if current.Active() {
		base = s.Collapse(l)
	}
	res, err := s.Expand(base, target)
	if err != nil {
		return Result{Layout: l, State: current}, err
	}
	return res, nil
}
