// Package replay drives a placement editor from a scripted list of
// gestures.
//
// Scripts are TOML documents with one [[step]] table per gesture:
//
//	[[step]]
//	op       = "drop"
//	operator = "CG"
//	x        = 2
//	as       = "custom"
//
//	[[step]]
//	op   = "expand"
//	tile = "custom"
//
//	[[step]]
//	op       = "drop"
//	operator = "H"
//	x        = 3
//	expect   = "RELOCATED"
//
// A drop step may name its tile with as; later steps refer to it by that
// alias, so scripts do not depend on the id generator. An expect key names
// the error or diagnostic code the step must produce.
//
// Scripts are a debugging and regression aid for the placement rules, not a
// circuit file format: they record gestures, never a layout.
package replay
