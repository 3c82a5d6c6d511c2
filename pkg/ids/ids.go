// Package ids generates identities for placed tiles.
//
// The editor never derives ids from the clock. Production code uses
// [UUID]; tests and replay scripts use [Counter] so ids are predictable
// ("tile-1", "tile-2", ...).
package ids

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique id on every call.
type Generator interface {
	Next() string
}

// DefaultPrefix is the prefix Counter uses when none is given.
const DefaultPrefix = "tile-"

// Counter yields prefix1, prefix2, ... It is safe for concurrent use.
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter returns a counter starting at 1. An empty prefix selects
// DefaultPrefix.
func NewCounter(prefix string) *Counter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Counter{prefix: prefix}
}

// Next implements Generator.
func (c *Counter) Next() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() UUID { return UUID{} }

// Next implements Generator.
func (UUID) Next() string { return uuid.NewString() }

// Func adapts a function to Generator.
type Func func() string

// Next implements Generator.
func (f Func) Next() string { return f() }
