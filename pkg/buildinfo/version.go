// Package buildinfo reports which gategrid build is running.
//
// Release builds stamp the three variables with the linker:
//
//	pkg=github.com/matzehuels/gategrid/pkg/buildinfo
//	go build -ldflags "-X $pkg.Version=v0.3.0 -X $pkg.Commit=$(git rev-parse --short HEAD) -X $pkg.Date=$(date -u +%F)" ./cmd/gategrid
//
// Local builds keep the placeholder values.
package buildinfo

import "fmt"

// Stamped at link time; see the package comment.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the version, commit and build date on separate lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the text printed by gategrid --version.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
