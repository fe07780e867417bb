package mapper

import "github.com/dshills/keybridge/internal/key"

// Keypress is one concrete, physically achievable key combination: a
// scan code plus the modifiers that must be held with it.
type Keypress struct {
	Mods key.Modifier
	Code key.ScanCode
}

// String returns a form like "Ctrl+Shift+[KeyM]".
func (k Keypress) String() string {
	if k.Mods == key.ModNone {
		return "[" + k.Code.String() + "]"
	}
	return k.Mods.String() + "+[" + k.Code.String() + "]"
}

// Combination is one concrete way to perform a full request: a first
// keypress plus, for chorded shortcuts, a chord keypress.
type Combination struct {
	First Keypress
	// Chord is nil for simple shortcuts.
	Chord *Keypress
}

// IsChord returns true if the combination has a chord part.
func (c Combination) IsChord() bool {
	return c.Chord != nil
}

// String returns the first and chord parts space-separated.
func (c Combination) String() string {
	if c.Chord == nil {
		return c.First.String()
	}
	return c.First.String() + " " + c.Chord.String()
}
