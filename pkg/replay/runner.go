package replay

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gategrid/pkg/errors"
	"github.com/matzehuels/gategrid/pkg/layout"
	"github.com/matzehuels/gategrid/pkg/placement"
)

// Result is the outcome of one step.
type Result struct {
	Step    Step
	Outcome placement.Outcome
	Err     error

	// Mismatch is set when the step did not produce Step.Expect, or failed
	// without expecting to.
	Mismatch bool
}

// Failed reports whether the step broke for a reason other than a placement
// rule, such as a bad id generator. Rejected gestures are not failures.
func (r Result) Failed() bool {
	return r.Err != nil && !errors.IsRejection(r.Err)
}

// Codes returns the error code followed by every diagnostic code.
func (r Result) Codes() []errors.Code {
	var codes []errors.Code
	if r.Err != nil {
		codes = append(codes, errors.GetCode(r.Err))
	}
	for _, d := range r.Outcome.Diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// Report collects the results of a replay.
type Report struct {
	Results   []Result
	Layout    layout.Layout
	Expansion layout.Expansion
}

// Mismatches returns the number of steps whose outcome differed from
// their expectation.
func (r Report) Mismatches() int {
	n := 0
	for _, res := range r.Results {
		if res.Mismatch {
			n++
		}
	}
	return n
}

// Runner replays scripts against an editor.
type Runner struct {
	Editor *placement.Editor
	Logger *log.Logger

	aliases map[string]string
}

// NewRunner creates a runner for ed. A nil logger selects log.Default().
func NewRunner(ed *placement.Editor, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Editor: ed, Logger: logger, aliases: make(map[string]string)}
}

// Run replays every step of s in order. Rejected gestures do not stop the
// replay; they are recorded in the report.
func (r *Runner) Run(s Script) Report {
	rep := Report{Results: make([]Result, 0, len(s.Steps))}
	for i, st := range s.Steps {
		res := r.step(st)
		res.Mismatch = !expected(res, st.Expect)
		rep.Results = append(rep.Results, res)

		if res.Failed() {
			r.Logger.Error("step failed", "step", i+1, "gesture", st, "err", res.Err)
		} else if res.Mismatch {
			r.Logger.Warn("unexpected outcome", "step", i+1, "gesture", st, "expect", st.Expect, "got", res.Codes())
		} else {
			r.Logger.Debug("step", "n", i+1, "gesture", st, "codes", res.Codes())
		}
	}
	rep.Layout = r.Editor.Layout()
	rep.Expansion = r.Editor.Expansion()
	return rep
}

func (r *Runner) resolve(tile string) string {
	if id, ok := r.aliases[tile]; ok {
		return id
	}
	return tile
}

func (r *Runner) step(st Step) Result {
	var (
		out placement.Outcome
		err error
	)
	ed := r.Editor
	switch st.Op {
	case OpDrop:
		out, err = ed.Drop(st.Operator, st.X, st.Y)
		if err == nil && st.As != "" {
			r.aliases[st.As] = out.Tile.ID
		}
	case OpDrag:
		id := r.resolve(st.Tile)
		if err = ed.DragStart(id); err == nil {
			out, err = ed.DragStop(id, st.X, st.Y)
		} else {
			out = placement.Outcome{Layout: ed.Layout(), Expansion: ed.Expansion()}
		}
	case OpExpand:
		out, err = ed.SetExpansion(r.resolve(st.Tile))
	case OpToggle:
		out, err = ed.Toggle(r.resolve(st.Tile))
	case OpCollapse:
		out = ed.Collapse()
	}
	return Result{Step: st, Outcome: out, Err: err}
}

func expected(res Result, want errors.Code) bool {
	if want == "" {
		return res.Err == nil
	}
	for _, c := range res.Codes() {
		if c == want {
			return true
		}
	}
	return false
}
