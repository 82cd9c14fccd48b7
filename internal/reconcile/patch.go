package reconcile

import (
	"fmt"

	"go.trai.ch/zerr"
)

var ErrInvalidMode = zerr.New("reconcile: invalid mode")

// Mode selects how children of an element are matched between renders.
type Mode string

const (
	// ModeKeyed matches children by key and patches matches in place.
	ModeKeyed Mode = "keyed"
	// ModePositional matches children by index only.
	ModePositional Mode = "positional"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeKeyed, ModePositional:
		return Mode(s), nil
	case "":
		return ModeKeyed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

type Op string

const (
	OpCreate     Op = "create"
	OpRemove     Op = "remove"
	OpReplace    Op = "replace"
	OpMove       Op = "move"
	OpSetAttr    Op = "set-attr"
	OpRemoveAttr Op = "remove-attr"
	OpSetText    Op = "set-text"
	OpSetKey     Op = "set-key"
)

// Patch records one change applied to the live surface.
type Patch struct {
	Op        Op
	ElementID uint64
	Key       string
	Name      string
	Value     string
	Index     int
}

func (p Patch) String() string {
	switch p.Op {
	case OpSetAttr:
		return fmt.Sprintf("%s #%d %s=%q", p.Op, p.ElementID, p.Name, p.Value)
	case OpRemoveAttr:
		return fmt.Sprintf("%s #%d %s", p.Op, p.ElementID, p.Name)
	case OpSetText, OpSetKey:
		return fmt.Sprintf("%s #%d %q", p.Op, p.ElementID, p.Value)
	case OpMove:
		return fmt.Sprintf("%s #%d -> %d", p.Op, p.ElementID, p.Index)
	default:
		return fmt.Sprintf("%s #%d key=%q", p.Op, p.ElementID, p.Key)
	}
}

// Count returns how many patches have the given op.
func Count(patches []Patch, op Op) int {
	n := 0
	for _, p := range patches {
		if p.Op == op {
			n++
		}
	}
	return n
}
