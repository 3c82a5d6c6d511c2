package footprint

import (
	"testing"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/layout"
)

func TestEffective(t *testing.T) {
	cat := catalog.Default()
	custom := layout.Tile{ID: "t1", OperatorID: catalog.IDCustom}
	cnot := layout.Tile{ID: "t2", OperatorID: catalog.IDCNOT}

	tests := []struct {
		name  string
		tile  layout.Tile
		exp   layout.Expansion
		wantW int
		wantH int
	}{
		{"composite collapsed", custom, layout.Collapsed, 1, 2},
		{"composite expanded", custom, layout.Expanded("t1"), 4, 2},
		{"composite while other expanded", custom, layout.Expanded("t2"), 1, 2},
		{"plain operator marked expanded", cnot, layout.Expanded("t2"), 1, 2},
		{"unknown operator", layout.Tile{ID: "t3", OperatorID: "nope"}, layout.Collapsed, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Effective(tt.tile, cat, tt.exp)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Effective() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEffectiveIgnoresStoredFootprint(t *testing.T) {
	// A stale W on the tile must not leak into the computed footprint.
	tile := layout.Tile{ID: "t1", OperatorID: catalog.IDBell, W: 9, H: 9}
	if w, h := Effective(tile, catalog.Default(), layout.Collapsed); w != 1 || h != 2 {
		t.Errorf("Effective() = %dx%d, want 1x2", w, h)
	}
}

func TestExpandedWidth(t *testing.T) {
	cat := catalog.Default()
	for id, want := range map[string]int{catalog.IDBell: 2, catalog.IDCustom: 4, catalog.IDGHZ: 3} {
		def, _ := cat.Lookup(id)
		if got, ok := ExpandedWidth(def); !ok || got != want {
			t.Errorf("ExpandedWidth(%s) = %d, %v, want %d", id, got, ok, want)
		}
	}
	h, _ := cat.Lookup(catalog.IDHadamard)
	if _, ok := ExpandedWidth(h); ok {
		t.Error("ExpandedWidth(H) ok = true")
	}
}
