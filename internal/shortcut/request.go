package shortcut

import (
	"strings"

	"github.com/dshills/keybridge/internal/key"
)

// Simple is one half of a shortcut definition: a logical key plus the
// OS-abstract modifier flags. CtrlCmd and WinCtrl are resolved to
// concrete Ctrl/Meta by the mapper depending on the OS family.
type Simple struct {
	CtrlCmd bool
	WinCtrl bool
	Shift   bool
	Alt     bool
	Key     key.KeyCode
}

// String returns a canonical spec form, e.g. "ctrlcmd+shift+/".
func (s Simple) String() string {
	var parts []string
	if s.CtrlCmd {
		parts = append(parts, "ctrlcmd")
	}
	if s.WinCtrl {
		parts = append(parts, "winctrl")
	}
	if s.Shift {
		parts = append(parts, "shift")
	}
	if s.Alt {
		parts = append(parts, "alt")
	}
	parts = append(parts, strings.ToLower(s.Key.String()))
	return strings.Join(parts, "+")
}

// Request is a full shortcut definition: a first part and, for chorded
// (press-then-press) shortcuts, a chord part.
type Request struct {
	First Simple
	// Chord is nil for simple shortcuts.
	Chord *Simple
}

// IsChord returns true if the request has a chord part.
func (r Request) IsChord() bool {
	return r.Chord != nil
}

// String returns a canonical spec form, chord parts space-separated.
func (r Request) String() string {
	if r.Chord == nil {
		return r.First.String()
	}
	return r.First.String() + " " + r.Chord.String()
}
