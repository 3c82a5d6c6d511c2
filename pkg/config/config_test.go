package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/grid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Config
		code  errors.Code
	}{
		{
			name:  "empty document",
			input: "",
			want:  Default(),
		},
		{
			name:  "partial grid keeps defaults",
			input: "[grid]\ncolumns = 12\nrows = 4\n",
			want: Config{
				Grid:     grid.Spec{Columns: 12, Rows: 4, CellSize: 50, MarginX: 10, MarginY: 10},
				LogLevel: "info",
			},
		},
		{
			name:  "catalog and level",
			input: "catalog = \"gates.toml\"\nlog_level = \"debug\"\n",
			want:  Config{Grid: grid.Default(), Catalog: "gates.toml", LogLevel: "debug"},
		},
		{name: "zero columns", input: "[grid]\ncolumns = 0\n", code: errors.ErrCodeInvalidConfig},
		{name: "negative rows", input: "[grid]\nrows = -1\n", code: errors.ErrCodeInvalidConfig},
		{name: "bad level", input: "log_level = \"loud\"\n", code: errors.ErrCodeInvalidConfig},
		{name: "unknown key", input: "colour = \"red\"\n", code: errors.ErrCodeInvalidConfig},
		{name: "syntax error", input: "[grid\n", code: errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if code := errors.GetCode(err); code != tt.code {
				t.Fatalf("Parse() code = %q, want %q (err=%v)", code, tt.code, err)
			}
			if tt.code == "" && got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := Config{LogLevel: tt.level}.Level()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFileResolvesCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogTOML := "include_defaults = true\n\n[[operator]]\nid = \"RX\"\n"
	if err := os.WriteFile(filepath.Join(dir, "gates.toml"), []byte(catalogTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "gategrid.toml")
	if err := os.WriteFile(path, []byte("catalog = \"gates.toml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if want := filepath.Join(dir, "gates.toml"); cfg.Catalog != want {
		t.Errorf("Catalog = %q, want %q", cfg.Catalog, want)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if !cat.Has("RX") || !cat.Has(catalog.IDHadamard) {
		t.Errorf("catalog ids = %v", cat.IDs())
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("LoadFile(\"\") error = %v, want INVALID_PATH", err)
	}
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadFile(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	cat, err := Default().LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if cat != catalog.Default() {
		t.Error("empty Catalog should select the built-in catalog")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader("[grid]\ncolumns = 8\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Columns != 8 || cfg.Grid.Rows != grid.DefaultRows {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
}

func TestExampleConfig(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "examples", "gategrid.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Grid != grid.Default() {
		t.Errorf("Grid = %+v, want defaults", cfg.Grid)
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	qft, ok := cat.Lookup("QFT2")
	if !ok {
		t.Fatal("QFT2 missing from example catalog")
	}
	if w, _ := qft.BoundingWidth(); w != 4 {
		t.Errorf("QFT2 BoundingWidth() = %d, want 4", w)
	}
}
