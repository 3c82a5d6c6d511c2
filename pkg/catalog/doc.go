// Package catalog is the static registry of operator (gate) definitions
// that tiles are created from.
//
// # Definitions
//
// An [OperatorDef] has a base footprint in grid cells and a display fill.
// Composite operators additionally list [Component] sub-placements, each
// positioned relative to the composite's top-left cell and referring to
// another operator in the same catalog. The bounding width of those
// components is the width a composite takes while it is expanded.
//
// # Building A Catalog
//
// A catalog is built once and never changes:
//
//	cat := catalog.Default()               // built-in quantum gates
//	cat, err := catalog.New(defs...)       // custom definitions
//	cat, err := catalog.LoadFile("ops.toml") // TOML file
//
// [New] validates ids, rejects duplicates and checks that every component
// refers to a known, non-composite operator.
//
// # TOML Format
//
//	[[operator]]
//	id = "H"
//	name = "Hadamard"
//	fill = "#f4c542"
//
//	[[operator]]
//	id = "BELL"
//	composite = true
//	height = 2
//
//	  [[operator.component]]
//	  operator = "H"
//	  x = 0
//	  y = 0
//
//	  [[operator.component]]
//	  operator = "CNOT"
//	  x = 1
//	  y = 0
//	  h = 2
package catalog
