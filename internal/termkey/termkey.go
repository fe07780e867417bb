// Package termkey bridges tcell key events to shortcut requests, so a
// terminal frontend can ask the mapper how the key it just saw would
// resolve. Terminal Ctrl maps to the portable CtrlCmd flag and Meta to
// WinCtrl, matching how shortcut definitions are written.
package termkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/shortcut"
)

// specialKeys maps tcell's non-rune keys to logical key codes.
var specialKeys = map[tcell.Key]key.KeyCode{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyEsc:        key.KeyEscape,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// FromEvent converts a tcell key event into a shortcut request part.
// Returns false for keys with no logical code (media keys, bare
// modifiers, characters outside the US reference set).
func FromEvent(ev *tcell.EventKey) (shortcut.Simple, bool) {
	if ev == nil {
		return shortcut.Simple{}, false
	}

	s := shortcut.Simple{
		CtrlCmd: ev.Modifiers()&tcell.ModCtrl != 0,
		WinCtrl: ev.Modifiers()&tcell.ModMeta != 0,
		Shift:   ev.Modifiers()&tcell.ModShift != 0,
		Alt:     ev.Modifiers()&tcell.ModAlt != 0,
	}

	if kc, ok := specialKeys[ev.Key()]; ok {
		s.Key = kc
		return s, true
	}

	// Terminals deliver Ctrl+letter as dedicated control key codes.
	// Tab, Enter, and Backspace share values with Ctrl-I/M/H and are
	// already claimed by the special-key table above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		s.CtrlCmd = true
		s.Key = key.KeyA + key.KeyCode(k-tcell.KeyCtrlA)
		return s, true
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			s.Key = key.KeySpace
			return s, true
		}
		kc := key.KeyCodeFromChar(r)
		if kc == key.KeyNone {
			return shortcut.Simple{}, false
		}
		// An uppercase rune means the terminal already applied Shift.
		if r >= 'A' && r <= 'Z' {
			s.Shift = true
		}
		s.Key = kc
		return s, true
	}

	return shortcut.Simple{}, false
}
