package placement

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/expansion"
	"github.com/matzehuels/gategrid/pkg/footprint"
	"github.com/matzehuels/gategrid/pkg/grid"
	"github.com/matzehuels/gategrid/pkg/ids"
	"github.com/matzehuels/gategrid/pkg/layout"
	"github.com/matzehuels/gategrid/pkg/observability"
)

// Outcome is the editor state after a gesture. For rejected gestures it
// holds the unchanged state.
type Outcome struct {
	Layout    layout.Layout
	Expansion layout.Expansion

	// Tile is the tile created by Drop or moved by DragStop.
	Tile layout.Tile

	Diagnostics []layout.Diagnostic
}

// Editor owns the current layout and expansion state and resolves gestures
// against them.
type Editor struct {
	spec    grid.Spec
	cat     *catalog.Catalog
	shifter *expansion.Shifter
	ids     ids.Generator
	logger  *log.Logger
	hooks   observability.PlacementHooks

	layout    layout.Layout
	expansion layout.Expansion
	dragging  string
}

// New creates an editor for spec and cat with an empty layout.
func New(spec grid.Spec, cat *catalog.Catalog, opts ...Option) (*Editor, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "editor needs a non-empty catalog")
	}

	e := &Editor{
		spec:    spec,
		cat:     cat,
		shifter: expansion.NewShifter(spec, cat),
		ids:     ids.NewUUID(),
		logger:  log.Default(),
		hooks:   observability.Placement(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.layout.Validate(spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "initial layout")
	}
	for _, t := range e.layout.Tiles() {
		if !cat.Has(t.OperatorID) {
			return nil, errors.New(errors.ErrCodeUnknownOperator, "initial layout: tile %q refers to unknown operator %q", t.ID, t.OperatorID)
		}
	}
	return e, nil
}

// Layout returns the current layout snapshot.
func (e *Editor) Layout() layout.Layout { return e.layout }

// Expansion returns the current expansion state.
func (e *Editor) Expansion() layout.Expansion { return e.expansion }

// Spec returns the grid constants.
func (e *Editor) Spec() grid.Spec { return e.spec }

// Catalog returns the operator catalog.
func (e *Editor) Catalog() *catalog.Catalog { return e.cat }

// Dragging returns the id recorded by DragStart, or empty.
func (e *Editor) Dragging() string { return e.dragging }

// Footprint returns the effective footprint of tileID under the current
// expansion state.
func (e *Editor) Footprint(tileID string) (grid.Rect, bool) {
	t, ok := e.layout.Find(tileID)
	if !ok {
		return grid.Rect{}, false
	}
	w, h := footprint.Effective(t, e.cat, e.expansion)
	return grid.Rect{X: t.X, Y: t.Y, W: w, H: h}, true
}

func (e *Editor) outcome(tile layout.Tile, diags []layout.Diagnostic) Outcome {
	return Outcome{
		Layout:      e.layout,
		Expansion:   e.expansion,
		Tile:        tile,
		Diagnostics: diags,
	}
}

// reject logs err and returns the unchanged state alongside it.
func (e *Editor) reject(err error, keyvals ...any) (Outcome, error) {
	e.logger.Warn(errors.UserMessage(err), append([]any{"code", errors.GetCode(err)}, keyvals...)...)
	return e.outcome(layout.Tile{}, nil), err
}

func (e *Editor) report(diags []layout.Diagnostic) {
	for _, d := range diags {
		e.logger.Warn(d.Message, "code", d.Code, "tile", d.TileID)
		e.hooks.OnDiagnostic(string(d.Code), d.TileID, d.Message)
	}
}

// =============================================================================
// Drop
// =============================================================================

// Drop places a new tile of operatorID with its top-left cell at (x, y).
func (e *Editor) Drop(operatorID string, x, y int) (Outcome, error) {
	out, err := e.drop(operatorID, x, y)
	e.hooks.OnDrop(operatorID, out.Tile.ID, x, y, err)
	return out, err
}

func (e *Editor) drop(operatorID string, x, y int) (Outcome, error) {
	def, ok := e.cat.Lookup(operatorID)
	if !ok {
		return e.reject(errors.New(errors.ErrCodeUnknownOperator, "cannot place gate: unknown operator %q", operatorID))
	}

	w, h := footprint.Base(def)
	r := grid.Rect{X: x, Y: y, W: w, H: h}
	if !grid.Fits(r, e.spec) {
		return e.reject(errors.New(errors.ErrCodeOutOfBounds, "cannot place gate: %s at %v is outside the grid", operatorID, r),
			"operator", operatorID)
	}

	var diags []layout.Diagnostic
	nx, err := e.avoidExpanded(r, "")
	if err != nil {
		return e.reject(err, "operator", operatorID)
	}

	id := e.ids.Next()
	if err := errors.ValidateID(id); err != nil {
		return e.reject(errors.Wrap(errors.ErrCodeInternal, err, "id generator returned invalid id %q", id))
	}
	if _, dup := e.layout.Find(id); dup {
		return e.reject(errors.New(errors.ErrCodeInternal, "id generator returned duplicate id %q", id))
	}
	if nx != x {
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeRelocated, id,
			"moved from column %d to %d to clear expanded tile %q", x, nx, e.expansion.TileID))
	}

	tile := layout.Tile{ID: id, OperatorID: operatorID, X: nx, Y: y, W: w, H: h}
	e.layout = e.layout.Append(tile)
	e.report(diags)
	e.logger.Debug("placed gate", "tile", id, "operator", operatorID, "at", tile.Rect())
	return e.outcome(tile, diags), nil
}

// =============================================================================
// Drag
// =============================================================================

// DragStart records that tileID is being dragged.
func (e *Editor) DragStart(tileID string) error {
	if _, ok := e.layout.Find(tileID); !ok {
		_, err := e.reject(errors.New(errors.ErrCodeNotFound, "cannot drag: tile %q is not on the grid", tileID))
		return err
	}
	e.dragging = tileID
	e.hooks.OnDragStart(tileID)
	return nil
}

// DragMove previews where DragStop would put tileID for the raw position
// (x, y) without changing anything.
func (e *Editor) DragMove(tileID string, x, y int) (grid.Rect, error) {
	t, _, err := e.resolveMove(tileID, x, y)
	e.hooks.OnDragMove(tileID, x, y, err)
	return t.Rect(), err
}

// DragStop moves tileID to the raw position (x, y) reported by the
// interaction layer, after clamping it into the grid and clearing the
// expanded tile's columns. The moved tile is drawn on top.
func (e *Editor) DragStop(tileID string, x, y int) (Outcome, error) {
	out, err := e.dragStop(tileID, x, y)
	e.dragging = ""
	if err == nil {
		x, y = out.Tile.X, out.Tile.Y
	}
	e.hooks.OnDragStop(tileID, x, y, err)
	return out, err
}

func (e *Editor) dragStop(tileID string, x, y int) (Outcome, error) {
	moved, diags, err := e.resolveMove(tileID, x, y)
	if err != nil {
		return e.reject(err, "x", x, "y", y)
	}
	e.layout, _ = e.layout.MoveToTop(moved)
	e.report(diags)
	e.logger.Debug("moved gate", "tile", tileID, "to", moved.Rect())
	return e.outcome(moved, diags), nil
}

// resolveMove computes the committed position of a drag without applying it.
func (e *Editor) resolveMove(tileID string, x, y int) (layout.Tile, []layout.Diagnostic, error) {
	t, ok := e.layout.Find(tileID)
	if !ok {
		return layout.Tile{}, nil, errors.New(errors.ErrCodeNotFound, "cannot move gate: tile %q is not on the grid", tileID)
	}

	var diags []layout.Diagnostic
	w, h := footprint.Effective(t, e.cat, e.expansion)

	cx := grid.Clamp(x, 0, e.spec.Columns-w)
	switch {
	case x < 0:
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeClamped, tileID, "exceeds left grid boundary, column %d clamped to %d", x, cx))
	case x != cx:
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeClamped, tileID, "exceeds right grid boundary, column %d clamped to %d", x, cx))
	}
	cy := grid.Clamp(y, 0, e.spec.Rows-h)
	if cy != y {
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeClamped, tileID, "exceeds grid rows, row %d clamped to %d", y, cy))
	}

	r := grid.Rect{X: cx, Y: cy, W: w, H: h}
	nx, err := e.avoidExpanded(r, tileID)
	if err != nil {
		return layout.Tile{}, nil, err
	}
	if nx != cx {
		diags = append(diags, layout.NewDiagnostic(errors.ErrCodeRelocated, tileID,
			"moved from column %d to %d to clear expanded tile %q", cx, nx, e.expansion.TileID))
	}
	return t.WithRect(r.WithX(nx)), diags, nil
}

// avoidExpanded returns the column at which r clears the expanded tile's
// columns: r.X when it already does, the first column right of the expanded
// tile when r fits there, else the column that puts r flush against its
// left edge. movingID is exempt from protection.
func (e *Editor) avoidExpanded(r grid.Rect, movingID string) (int, error) {
	if !e.expansion.Active() || e.expansion.Is(movingID) {
		return r.X, nil
	}
	xt, ok := e.layout.Find(e.expansion.TileID)
	if !ok {
		return r.X, nil
	}
	w, h := footprint.Effective(xt, e.cat, e.expansion)
	protected := grid.Rect{X: xt.X, Y: xt.Y, W: w, H: h}
	if !grid.ColumnsIntersect(r, protected) {
		return r.X, nil
	}

	if right := protected.Right(); right+r.W <= e.spec.Columns {
		return right, nil
	}
	if left := protected.X - r.W; left >= 0 {
		return left, nil
	}
	return 0, errors.New(errors.ErrCodeBlockedByExpansion,
		"conflicts with expanded gate %q in columns %v and no valid position", e.expansion.TileID, protected.Columns())
}

// =============================================================================
// Expansion
// =============================================================================

// SetExpansion expands tileID, or collapses when tileID is empty.
func (e *Editor) SetExpansion(tileID string) (Outcome, error) {
	from := e.expansion.TileID
	res, err := e.shifter.Transition(e.layout, e.expansion, tileID)
	e.hooks.OnExpansion(from, res.State.TileID, err)
	if err != nil {
		return e.reject(err, "tile", tileID)
	}

	e.layout, e.expansion = res.Layout, res.State
	e.report(res.Diagnostics)
	e.logger.Debug("expansion changed", "from", from, "to", e.expansion, "passes", res.Passes)
	return e.outcome(layout.Tile{}, res.Diagnostics), nil
}

// Toggle expands tileID, or collapses it when it is already expanded.
func (e *Editor) Toggle(tileID string) (Outcome, error) {
	if e.expansion.Is(tileID) {
		return e.SetExpansion("")
	}
	return e.SetExpansion(tileID)
}

// Collapse clears the expansion state.
func (e *Editor) Collapse() Outcome {
	out, _ := e.SetExpansion("")
	return out
}
