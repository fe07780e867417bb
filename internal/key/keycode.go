package key

import (
	"fmt"
	"strings"
)

// KeyCode identifies a logical key as used by shortcut definitions.
// Character-producing codes are defined against the standard US layout:
// KeySlash means "the key that produces '/' on US", wherever that
// character lives on the active layout.
type KeyCode uint16

const (
	// KeyNone represents no key.
	KeyNone KeyCode = iota

	// Letters.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row.
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyDigit0

	// US punctuation.
	KeySemicolon
	KeyEqual
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyBackquote
	KeyBracketLeft
	KeyBackslash
	KeyBracketRight
	KeyQuote

	// KeyIntlBackslash is the extra key on ISO keyboards. It has no
	// US-layout reference character and no immutable position, so it
	// cannot be resolved; it exists so callers can name it.
	KeyIntlBackslash

	// Layout-invariant keys.
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyNumLock
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpadEnter
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpad0
	KeyNumpadDecimal
	KeyContextMenu

	// KeyCodeCount is the number of key codes, for dense tables.
	KeyCodeCount
)

// keyCodeLabels is indexed by KeyCode ordinal and holds the canonical
// display name of each key.
var keyCodeLabels = [KeyCodeCount]string{
	KeyNone:           "None",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyDigit1:         "1",
	KeyDigit2:         "2",
	KeyDigit3:         "3",
	KeyDigit4:         "4",
	KeyDigit5:         "5",
	KeyDigit6:         "6",
	KeyDigit7:         "7",
	KeyDigit8:         "8",
	KeyDigit9:         "9",
	KeyDigit0:         "0",
	KeySemicolon:      ";",
	KeyEqual:          "=",
	KeyComma:          ",",
	KeyMinus:          "-",
	KeyPeriod:         ".",
	KeySlash:          "/",
	KeyBackquote:      "`",
	KeyBracketLeft:    "[",
	KeyBackslash:      "\\",
	KeyBracketRight:   "]",
	KeyQuote:          "'",
	KeyIntlBackslash:  "OEM_102",
	KeyEnter:          "Enter",
	KeyEscape:         "Escape",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeySpace:          "Space",
	KeyCapsLock:       "CapsLock",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyPageUp:         "PageUp",
	KeyDelete:         "Delete",
	KeyEnd:            "End",
	KeyPageDown:       "PageDown",
	KeyRight:          "Right",
	KeyLeft:           "Left",
	KeyDown:           "Down",
	KeyUp:             "Up",
	KeyNumLock:        "NumLock",
	KeyNumpadDivide:   "NumPad_Divide",
	KeyNumpadMultiply: "NumPad_Multiply",
	KeyNumpadSubtract: "NumPad_Subtract",
	KeyNumpadAdd:      "NumPad_Add",
	KeyNumpadEnter:    "NumPad_Enter",
	KeyNumpad1:        "NumPad1",
	KeyNumpad2:        "NumPad2",
	KeyNumpad3:        "NumPad3",
	KeyNumpad4:        "NumPad4",
	KeyNumpad5:        "NumPad5",
	KeyNumpad6:        "NumPad6",
	KeyNumpad7:        "NumPad7",
	KeyNumpad8:        "NumPad8",
	KeyNumpad9:        "NumPad9",
	KeyNumpad0:        "NumPad0",
	KeyNumpadDecimal:  "NumPad_Decimal",
	KeyContextMenu:    "ContextMenu",
}

// String returns the canonical display name for the key code.
func (k KeyCode) String() string {
	if k < KeyCodeCount {
		return keyCodeLabels[k]
	}
	return fmt.Sprintf("KeyCode(%d)", uint16(k))
}

// IsLetter returns true for the letter key codes A-Z.
func (k KeyCode) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the digit-row key codes.
func (k KeyCode) IsDigit() bool {
	return k >= KeyDigit1 && k <= KeyDigit0
}

// keyCodeNameMap maps key names (lowercase) to KeyCode values.
// Includes aliases in the style shortcut definitions use.
var keyCodeNameMap = map[string]KeyCode{
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"cr":          KeyEnter,
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"tab":         KeyTab,
	"space":       KeySpace,
	"capslock":    KeyCapsLock,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
	"printscreen": KeyPrintScreen,
	"scrolllock":  KeyScrollLock,
	"pause":       KeyPause,
	"insert":      KeyInsert,
	"ins":         KeyInsert,
	"home":        KeyHome,
	"pageup":      KeyPageUp,
	"pgup":        KeyPageUp,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"end":         KeyEnd,
	"pagedown":    KeyPageDown,
	"pgdn":        KeyPageDown,
	"right":       KeyRight,
	"left":        KeyLeft,
	"down":        KeyDown,
	"up":          KeyUp,
	"numlock":     KeyNumLock,
	"contextmenu": KeyContextMenu,
	"oem_102":     KeyIntlBackslash,
}

// KeyCodeFromName returns the KeyCode for a key name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyCodeFromName(name string) KeyCode {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyCodeNameMap[name]; ok {
		return k
	}
	if r := []rune(name); len(r) == 1 {
		return KeyCodeFromChar(r[0])
	}
	return KeyNone
}

// KeyCodeFromChar returns the KeyCode whose US-layout unshifted (or,
// for letters, shifted) character is r. Returns KeyNone for characters
// outside the US reference set.
func KeyCodeFromChar(r rune) KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A')
	case r == '0':
		return KeyDigit0
	case r >= '1' && r <= '9':
		return KeyDigit1 + KeyCode(r-'1')
	}
	switch r {
	case ';':
		return KeySemicolon
	case '=':
		return KeyEqual
	case ',':
		return KeyComma
	case '-':
		return KeyMinus
	case '.':
		return KeyPeriod
	case '/':
		return KeySlash
	case '`':
		return KeyBackquote
	case '[':
		return KeyBracketLeft
	case '\\':
		return KeyBackslash
	case ']':
		return KeyBracketRight
	case '\'':
		return KeyQuote
	}
	return KeyNone
}
