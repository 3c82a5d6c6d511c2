package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gategrid/pkg/errors"
)

// Op is a gesture kind.
type Op string

// Supported gestures.
const (
	OpDrop     Op = "drop"
	OpDrag     Op = "drag"
	OpExpand   Op = "expand"
	OpCollapse Op = "collapse"
	OpToggle   Op = "toggle"
)

// Step is one gesture.
type Step struct {
	Op       Op     `toml:"op"`
	Operator string `toml:"operator"`
	Tile     string `toml:"tile"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`

	// As names the tile created by a drop.
	As string `toml:"as"`

	// Expect is the error or diagnostic code the step must produce. Empty
	// means the step must succeed.
	Expect errors.Code `toml:"expect"`
}

func (s Step) String() string {
	switch s.Op {
	case OpDrop:
		return fmt.Sprintf("drop %s at (%d,%d)", s.Operator, s.X, s.Y)
	case OpDrag:
		return fmt.Sprintf("drag %s to (%d,%d)", s.Tile, s.X, s.Y)
	case OpCollapse:
		return "collapse"
	default:
		return fmt.Sprintf("%s %s", s.Op, s.Tile)
	}
}

// Script is an ordered list of gestures.
type Script struct {
	Description string `toml:"description"`
	Steps       []Step `toml:"step"`
}

// Validate checks that every step carries the fields its op needs.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidScript, "script has no steps")
	}
	aliases := make(map[string]bool)
	for i, st := range s.Steps {
		n := i + 1
		switch st.Op {
		case OpDrop:
			if st.Operator == "" {
				return errors.New(errors.ErrCodeInvalidScript, "step %d: drop needs an operator", n)
			}
			if st.As != "" {
				if aliases[st.As] {
					return errors.New(errors.ErrCodeInvalidScript, "step %d: alias %q already used", n, st.As)
				}
				aliases[st.As] = true
			}
		case OpDrag, OpExpand, OpToggle:
			if st.Tile == "" {
				return errors.New(errors.ErrCodeInvalidScript, "step %d: %s needs a tile", n, st.Op)
			}
		case OpCollapse:
		case "":
			return errors.New(errors.ErrCodeInvalidScript, "step %d: missing op", n)
		default:
			return errors.New(errors.ErrCodeInvalidScript, "step %d: unknown op %q", n, st.Op)
		}
		if st.As != "" && st.Op != OpDrop {
			return errors.New(errors.ErrCodeInvalidScript, "step %d: only drop steps may set as", n)
		}
	}
	return nil
}

// Load reads a script from r.
func Load(r io.Reader) (Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Script{}, errors.Wrap(errors.ErrCodeInvalidScript, err, "read script")
	}
	return Parse(data)
}

// Parse decodes and validates a script document.
func Parse(data []byte) (Script, error) {
	var s Script
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return Script{}, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Script{}, errors.New(errors.ErrCodeInvalidScript, "unknown script key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadFile reads a script from path.
func LoadFile(path string) (Script, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Script{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Script{}, errors.Wrap(errors.ErrCodeInvalidScript, err, "open script %s", path)
	}
	defer f.Close()
	return Load(f)
}
