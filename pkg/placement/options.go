package placement

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/ids"
	"github.com/matzehuels/gategrid/pkg/layout"
	"github.com/matzehuels/gategrid/pkg/observability"
)

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for rejections and diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIDs sets the tile id generator. The default generates UUIDs.
func WithIDs(g ids.Generator) Option {
	return func(e *Editor) {
		if g != nil {
			e.ids = g
		}
	}
}

// WithHooks overrides the globally registered observability hooks.
func WithHooks(h observability.PlacementHooks) Option {
	return func(e *Editor) {
		if h != nil {
			e.hooks = h
		}
	}
}

// WithLayout seeds the editor with an existing settled layout. New rejects
// layouts that violate the grid bounds.
func WithLayout(l layout.Layout) Option {
	return func(e *Editor) {
		e.layout = l
	}
}
