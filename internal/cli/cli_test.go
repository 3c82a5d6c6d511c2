package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/catalog"
	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/grid"
	"github.com/matzehuels/gategrid/pkg/layout"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (*CLI, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return c, root.ExecuteContext(context.Background())
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"catalog", "replay", "check-config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "gategrid.toml", "log_level = \"debug\"\n\n[grid]\ncolumns = 6\n")

	c, err := execute(t, "--config", cfgPath, "catalog")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if c.Config().Grid.Columns != 6 {
		t.Errorf("Config().Grid.Columns = %d, want 6", c.Config().Grid.Columns)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("logger level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", "[grid]\ncolumns = 12\n")
	bad := writeFile(t, dir, "bad.toml", "[grid]\ncolumns = 0\n")

	if _, err := execute(t, "check-config", good); err != nil {
		t.Errorf("check-config good.toml: %v", err)
	}
	if _, err := execute(t, "check-config", bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("check-config bad.toml error = %v, want INVALID_CONFIG", err)
	}
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.toml", `
[[step]]
op = "drop"
operator = "CG"
x = 2
as = "cg"

[[step]]
op = "toggle"
tile = "cg"
`)
	mismatch := writeFile(t, dir, "mismatch.toml", `
[[step]]
op = "drop"
operator = "H"
x = 9
expect = "OUT_OF_BOUNDS"
`)

	if _, err := execute(t, "replay", ok); err != nil {
		t.Errorf("replay ok.toml: %v", err)
	}
	if _, err := execute(t, "replay", ok, "--columns", "5"); !errors.Is(err, errors.ErrCodeInvalidScript) {
		t.Errorf("replay with 5 columns error = %v, want a mismatch", err)
	}
	if _, err := execute(t, "replay", mismatch); !errors.Is(err, errors.ErrCodeInvalidScript) {
		t.Errorf("replay mismatch.toml error = %v, want INVALID_SCRIPT", err)
	}
	if _, err := execute(t, "replay", ok, "--rows=-1"); !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Errorf("replay with -1 rows error = %v, want INVALID_GRID", err)
	}
}

func TestGridView(t *testing.T) {
	l := layout.New(
		layout.Tile{ID: "a", OperatorID: catalog.IDCNOT, X: 0, Y: 0, W: 1, H: 2},
		layout.Tile{ID: "b", OperatorID: catalog.IDHadamard, X: 2, Y: 2, W: 1, H: 1},
		layout.Tile{ID: "c", OperatorID: "gone", X: 3, Y: 0, W: 1, H: 1},
	)
	got := gridView(l, catalog.Default(), grid.Spec{Columns: 4, Rows: 3})
	want := strings.Join([]string{
		"CX   ·    ·    gone",
		"░    ·    ·    ·   ",
		"·    ·    H    ·   ",
	}, "\n")
	if got != want {
		t.Errorf("gridView() =\n%s\nwant\n%s", got, want)
	}
}

func TestGridViewAlignsWideLabels(t *testing.T) {
	cat := catalog.MustNew(
		catalog.OperatorDef{ID: "Q", Symbol: "量子"},
		catalog.OperatorDef{ID: "H"},
		catalog.OperatorDef{ID: "M", Symbol: "MEASURE"},
		catalog.OperatorDef{ID: "P", Symbol: "⊕"},
	)
	l := layout.New(
		layout.Tile{ID: "a", OperatorID: "Q", X: 0, Y: 0, W: 1, H: 1},
		layout.Tile{ID: "b", OperatorID: "H", X: 0, Y: 1, W: 1, H: 1},
		layout.Tile{ID: "c", OperatorID: "M", X: 1, Y: 2, W: 1, H: 1},
		layout.Tile{ID: "d", OperatorID: "P", X: 2, Y: 1, W: 1, H: 1},
	)

	lines := strings.Split(gridView(l, cat, grid.Spec{Columns: 3, Rows: 3}), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := 3*cellWidth + 2
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("row %d width = %d, want %d: %q", i, w, want, line)
		}
	}
	if !strings.Contains(lines[2], "MEAS") || strings.Contains(lines[2], "MEASU") {
		t.Errorf("long label not cut to the cell: %q", lines[2])
	}
}

func TestCatalogTable(t *testing.T) {
	out := catalogTable(catalog.Default()).String()
	for _, want := range []string{"ID", "Expanded", "CNOT", "GHZ", "H@0,0"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog table missing %q", want)
		}
	}
}

func TestReplayWatchStopsOnCancel(t *testing.T) {
	script := writeFile(t, t.TempDir(), "watch.toml", "[[step]]\nop = \"collapse\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"replay", "--watch", script})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Errorf("replay --watch error = %v", err)
	}
}

func TestWatchedFilesFollowLoadedCatalog(t *testing.T) {
	dir := t.TempDir()
	catPath := writeFile(t, dir, "gates.toml", "include_defaults = true\n")
	cfgPath := writeFile(t, dir, "gategrid.toml", "catalog = \"gates.toml\"\n")

	tests := []struct {
		name   string
		config string
		flag   string
		want   []string
	}{
		{name: "built-in", want: []string{"s.toml"}},
		{name: "from config", config: cfgPath, want: []string{"s.toml", catPath}},
		{name: "flag wins", config: cfgPath, flag: "other.toml", want: []string{"s.toml", "other.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"catalog"}
			if tt.config != "" {
				args = append([]string{"--config", tt.config}, args...)
			}
			c, err := execute(t, args...)
			if err != nil {
				t.Fatal(err)
			}
			got := c.watchedFiles("s.toml", editorOpts{catalog: tt.flag})
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("watchedFiles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), "gategrid") {
				t.Errorf("completion %s output does not mention gategrid", shell)
			}
		})
	}
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "tcsh"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err == nil {
		t.Error("completion tcsh should fail")
	}
}
