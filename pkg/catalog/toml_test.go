package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gategrid/pkg/errors"
)

const sampleCatalog = `
[[operator]]
id = "H"
name = "Hadamard"
fill = "#f4c542"

[[operator]]
id = "CX"
height = 2

[[operator]]
id = "PAIR"
composite = true
height = 2

  [[operator.component]]
  operator = "H"
  x = 0
  y = 0

  [[operator.component]]
  operator = "CX"
  x = 1
  y = 0
  h = 2
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}

	h, _ := cat.Lookup("H")
	if h.Name != "Hadamard" || h.Fill != "#f4c542" {
		t.Errorf("H = %+v", h)
	}

	pair, _ := cat.Lookup("PAIR")
	if w, ok := pair.BoundingWidth(); !ok || w != 2 {
		t.Errorf("PAIR BoundingWidth() = %d, %v, want 2, true", w, ok)
	}
	if pair.Components[1].H != 2 {
		t.Errorf("component h = %d, want 2", pair.Components[1].H)
	}
}

func TestParseIncludeDefaults(t *testing.T) {
	doc := `
include_defaults = true

[[operator]]
id = "RX"
name = "Rotation X"
`
	cat, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cat.Has(IDCustom) || !cat.Has("RX") {
		t.Errorf("catalog missing defaults or additions: %v", cat.IDs())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "[[operator]\nid=", "decode catalog"},
		{"empty", "", "no operators"},
		{"unknown key", "[[operator]]\nid = \"H\"\ncolour = \"red\"\n", "unknown catalog key"},
		{"duplicate", "[[operator]]\nid = \"H\"\n[[operator]]\nid = \"H\"\n", "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
				t.Errorf("code = %q, want INVALID_CATALOG", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.toml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !cat.Has("PAIR") {
		t.Error("PAIR missing")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile(missing) error = nil")
	}
}
