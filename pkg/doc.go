// Package pkg provides the libraries behind the gategrid circuit editor.
//
// # Overview
//
// Gategrid places quantum gates ("operators") on a grid of qubit rows and
// time-step columns. Gates are dropped from a palette, dragged, and a
// composite gate may be expanded in place to show the gates it is made of,
// pushing its neighbours out of the way. The pkg directory is organized into
// three areas:
//
//  1. Geometry and data: [grid], [catalog], [footprint], [layout]
//  2. Placement rules: [expansion], [placement]
//  3. Support: [config], [replay], [ids], [errors], [observability], [buildinfo]
//
// # Architecture
//
// A gesture flows through the packages like this:
//
//	interaction layer (drop / drag / expand)
//	         ↓
//	    [placement] Editor (owns the layout and expansion state)
//	         ↓
//	    [footprint] + [grid] (effective size, bounds, column conflicts)
//	         ↓
//	    [expansion] Shifter (fixed-point shifting of neighbours)
//	         ↓
//	    new immutable [layout] snapshot + diagnostics
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/gategrid/pkg/catalog"
//	    "github.com/matzehuels/gategrid/pkg/grid"
//	    "github.com/matzehuels/gategrid/pkg/placement"
//	)
//
//	ed, _ := placement.New(grid.Default(), catalog.Default())
//	out, _ := ed.Drop(catalog.IDCustom, 2, 0)
//	_, _ = ed.Drop(catalog.IDHadamard, 3, 2)
//	out, _ = ed.Toggle(out.Tile.ID) // the H gate moves to column 7
//
// # Main Packages
//
// [grid] - Grid constants, rectangles with half-open spans, bounds and
// overlap checks.
//
// [catalog] - Operator definitions keyed by id, composite components, the
// built-in quantum gate set and TOML catalog files.
//
// [layout] - Placed tiles, the immutable layout snapshot, the expansion
// state and diagnostics.
//
// [expansion] - The state machine for entering and leaving expanded mode.
//
// [placement] - The Editor: drop, drag and expansion gestures with
// relocation around the expanded gate.
//
// [replay] - TOML gesture scripts replayed against an Editor for debugging
// and regression tests.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/placement/   # Specific package
//	go test -run Example ./... # Examples only
package pkg
