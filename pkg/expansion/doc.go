// Package expansion switches a composite tile in and out of expanded mode
// and moves other tiles out of the columns it takes.
//
// # State Machine
//
// The state is either collapsed or expanded(tile):
//
//	collapsed      --expand(t)--> expanded(t)
//	expanded(a)    --expand(t)--> expanded(t)   (a is collapsed first)
//	expanded(a)    --collapse---> collapsed
//
// Only tiles whose operator is composite with at least one component can be
// expanded.
//
// # Shifting
//
// Entering expansion widens the tile to its components' bounding width W and
// protects the columns it now covers, on every row. Every other tile whose
// columns intersect them is moved right by W when that stays on the grid,
// otherwise left by W when that stays on the grid, otherwise left where it
// is. Passes repeat over fresh snapshots until one moves nothing, capped at
// one pass per tile. Tiles still inside the protected columns after the last
// pass are reported as RESIDUAL_OVERLAP diagnostics; the transition still
// succeeds.
//
// Collapsing restores every tile's base width and never moves anything.
package expansion
