package observability

import (
	"github.com/charmbracelet/log"
)

// LogHooks writes every placement event to a logger at debug level. The
// editor already warns about diagnostics, so they are traced here too.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) OnDrop(operatorID, tileID string, x, y int, err error) {
	h.Logger.Debug("drop", "operator", operatorID, "tile", tileID, "x", x, "y", y, "err", err)
}

func (h *LogHooks) OnDragStart(tileID string) {
	h.Logger.Debug("drag start", "tile", tileID)
}

func (h *LogHooks) OnDragMove(tileID string, x, y int, err error) {
	h.Logger.Debug("drag move", "tile", tileID, "x", x, "y", y, "err", err)
}

func (h *LogHooks) OnDragStop(tileID string, x, y int, err error) {
	h.Logger.Debug("drag stop", "tile", tileID, "x", x, "y", y, "err", err)
}

func (h *LogHooks) OnExpansion(from, to string, err error) {
	h.Logger.Debug("expansion", "from", from, "to", to, "err", err)
}

func (h *LogHooks) OnDiagnostic(code, tileID, message string) {
	h.Logger.Debug("diagnostic", "code", code, "tile", tileID, "message", message)
}
