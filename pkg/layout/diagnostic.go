package layout

import (
	"fmt"

	"github.com/matzehuels/gategrid/pkg/errors"
)

// PlaceholderID is the id a presentation layer gives the transient tile it
// shows under the pointer during a drop. Layout transitions skip it.
const PlaceholderID = "__dropping-elem__"

// Diagnostic is a non-fatal note produced while resolving a gesture, such
// as a clamp or an overlap the shifter could not resolve.
type Diagnostic struct {
	Code    errors.Code
	TileID  string
	Message string
}

// NewDiagnostic builds a diagnostic with a formatted message.
func NewDiagnostic(code errors.Code, tileID, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, TileID: tileID, Message: fmt.Sprintf(format, args...)}
}

func (d Diagnostic) String() string {
	if d.TileID == "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Code, d.TileID, d.Message)
}
