package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02"

	got := String()
	for _, want := range []string{"version: v0.3.0", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v0.3.0") {
		t.Errorf("Template() = %q", tmpl)
	}
}
