// Package observability provides hooks for observing editor gestures.
//
// The placement engine never depends on its observers: hooks receive events
// after a gesture has been resolved and cannot influence the outcome. This
// is where a presentation layer attaches drag-placeholder styling, metrics
// or tracing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for editor events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Editors capture the registered hooks when they are created; a per-editor
// override is available through placement.WithHooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(observability.NewLogHooks(logger))
//	    // ... create editors
//	}
//
// The editor calls hooks to emit events:
//
//	observability.Placement().OnDrop(operatorID, tileID, x, y, err)
package observability

import (
	"sync"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from the placement editor. A non-nil err
// means the gesture was rejected and the layout did not change.
type PlacementHooks interface {
	// Gesture events
	OnDrop(operatorID, tileID string, x, y int, err error)
	OnDragStart(tileID string)
	OnDragMove(tileID string, x, y int, err error)
	OnDragStop(tileID string, x, y int, err error)

	// Expansion events; empty ids mean collapsed.
	OnExpansion(from, to string, err error)

	// OnDiagnostic records a non-fatal note such as a clamp or a residual
	// overlap.
	OnDiagnostic(code, tileID, message string)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnDrop(string, string, int, int, error) {}
func (NoopPlacementHooks) OnDragStart(string)                     {}
func (NoopPlacementHooks) OnDragMove(string, int, int, error)     {}
func (NoopPlacementHooks) OnDragStop(string, int, int, error)     {}
func (NoopPlacementHooks) OnExpansion(string, string, error)      {}
func (NoopPlacementHooks) OnDiagnostic(string, string, string)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any editor is created.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
}
