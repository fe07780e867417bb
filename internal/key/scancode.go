package key

import "fmt"

// ScanCode identifies a physical key position, independent of the
// active keyboard layout. Names follow the W3C KeyboardEvent.code
// convention.
type ScanCode uint16

const (
	// ScanNone represents no key position.
	ScanNone ScanCode = iota

	// Alphanumeric block, layout-remappable.
	ScanKeyA
	ScanKeyB
	ScanKeyC
	ScanKeyD
	ScanKeyE
	ScanKeyF
	ScanKeyG
	ScanKeyH
	ScanKeyI
	ScanKeyJ
	ScanKeyK
	ScanKeyL
	ScanKeyM
	ScanKeyN
	ScanKeyO
	ScanKeyP
	ScanKeyQ
	ScanKeyR
	ScanKeyS
	ScanKeyT
	ScanKeyU
	ScanKeyV
	ScanKeyW
	ScanKeyX
	ScanKeyY
	ScanKeyZ
	ScanDigit1
	ScanDigit2
	ScanDigit3
	ScanDigit4
	ScanDigit5
	ScanDigit6
	ScanDigit7
	ScanDigit8
	ScanDigit9
	ScanDigit0
	ScanMinus
	ScanEqual
	ScanBracketLeft
	ScanBracketRight
	ScanBackslash
	ScanSemicolon
	ScanQuote
	ScanBackquote
	ScanComma
	ScanPeriod
	ScanSlash
	ScanIntlBackslash

	// Layout-invariant positions.
	ScanEnter
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
	ScanCapsLock
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
	ScanPrintScreen
	ScanScrollLock
	ScanPause
	ScanInsert
	ScanHome
	ScanPageUp
	ScanDelete
	ScanEnd
	ScanPageDown
	ScanArrowRight
	ScanArrowLeft
	ScanArrowDown
	ScanArrowUp
	ScanNumLock
	ScanNumpadDivide
	ScanNumpadMultiply
	ScanNumpadSubtract
	ScanNumpadAdd
	ScanNumpadEnter
	ScanNumpad1
	ScanNumpad2
	ScanNumpad3
	ScanNumpad4
	ScanNumpad5
	ScanNumpad6
	ScanNumpad7
	ScanNumpad8
	ScanNumpad9
	ScanNumpad0
	ScanNumpadDecimal
	ScanContextMenu

	// ScanCodeCount is the number of scan codes, for dense tables.
	ScanCodeCount
)

// scanCodeNames is indexed by ScanCode ordinal.
var scanCodeNames = [ScanCodeCount]string{
	ScanNone:           "None",
	ScanKeyA:           "KeyA",
	ScanKeyB:           "KeyB",
	ScanKeyC:           "KeyC",
	ScanKeyD:           "KeyD",
	ScanKeyE:           "KeyE",
	ScanKeyF:           "KeyF",
	ScanKeyG:           "KeyG",
	ScanKeyH:           "KeyH",
	ScanKeyI:           "KeyI",
	ScanKeyJ:           "KeyJ",
	ScanKeyK:           "KeyK",
	ScanKeyL:           "KeyL",
	ScanKeyM:           "KeyM",
	ScanKeyN:           "KeyN",
	ScanKeyO:           "KeyO",
	ScanKeyP:           "KeyP",
	ScanKeyQ:           "KeyQ",
	ScanKeyR:           "KeyR",
	ScanKeyS:           "KeyS",
	ScanKeyT:           "KeyT",
	ScanKeyU:           "KeyU",
	ScanKeyV:           "KeyV",
	ScanKeyW:           "KeyW",
	ScanKeyX:           "KeyX",
	ScanKeyY:           "KeyY",
	ScanKeyZ:           "KeyZ",
	ScanDigit1:         "Digit1",
	ScanDigit2:         "Digit2",
	ScanDigit3:         "Digit3",
	ScanDigit4:         "Digit4",
	ScanDigit5:         "Digit5",
	ScanDigit6:         "Digit6",
	ScanDigit7:         "Digit7",
	ScanDigit8:         "Digit8",
	ScanDigit9:         "Digit9",
	ScanDigit0:         "Digit0",
	ScanMinus:          "Minus",
	ScanEqual:          "Equal",
	ScanBracketLeft:    "BracketLeft",
	ScanBracketRight:   "BracketRight",
	ScanBackslash:      "Backslash",
	ScanSemicolon:      "Semicolon",
	ScanQuote:          "Quote",
	ScanBackquote:      "Backquote",
	ScanComma:          "Comma",
	ScanPeriod:         "Period",
	ScanSlash:          "Slash",
	ScanIntlBackslash:  "IntlBackslash",
	ScanEnter:          "Enter",
	ScanEscape:         "Escape",
	ScanBackspace:      "Backspace",
	ScanTab:            "Tab",
	ScanSpace:          "Space",
	ScanCapsLock:       "CapsLock",
	ScanF1:             "F1",
	ScanF2:             "F2",
	ScanF3:             "F3",
	ScanF4:             "F4",
	ScanF5:             "F5",
	ScanF6:             "F6",
	ScanF7:             "F7",
	ScanF8:             "F8",
	ScanF9:             "F9",
	ScanF10:            "F10",
	ScanF11:            "F11",
	ScanF12:            "F12",
	ScanPrintScreen:    "PrintScreen",
	ScanScrollLock:     "ScrollLock",
	ScanPause:          "Pause",
	ScanInsert:         "Insert",
	ScanHome:           "Home",
	ScanPageUp:         "PageUp",
	ScanDelete:         "Delete",
	ScanEnd:            "End",
	ScanPageDown:       "PageDown",
	ScanArrowRight:     "ArrowRight",
	ScanArrowLeft:      "ArrowLeft",
	ScanArrowDown:      "ArrowDown",
	ScanArrowUp:        "ArrowUp",
	ScanNumLock:        "NumLock",
	ScanNumpadDivide:   "NumpadDivide",
	ScanNumpadMultiply: "NumpadMultiply",
	ScanNumpadSubtract: "NumpadSubtract",
	ScanNumpadAdd:      "NumpadAdd",
	ScanNumpadEnter:    "NumpadEnter",
	ScanNumpad1:        "Numpad1",
	ScanNumpad2:        "Numpad2",
	ScanNumpad3:        "Numpad3",
	ScanNumpad4:        "Numpad4",
	ScanNumpad5:        "Numpad5",
	ScanNumpad6:        "Numpad6",
	ScanNumpad7:        "Numpad7",
	ScanNumpad8:        "Numpad8",
	ScanNumpad9:        "Numpad9",
	ScanNumpad0:        "Numpad0",
	ScanNumpadDecimal:  "NumpadDecimal",
	ScanContextMenu:    "ContextMenu",
}

// scanCodeByName maps W3C code names to scan codes.
var scanCodeByName = func() map[string]ScanCode {
	m := make(map[string]ScanCode, ScanCodeCount)
	for sc := ScanNone + 1; sc < ScanCodeCount; sc++ {
		m[scanCodeNames[sc]] = sc
	}
	return m
}()

// String returns the W3C code name for the scan code.
func (s ScanCode) String() string {
	if s < ScanCodeCount {
		return scanCodeNames[s]
	}
	return fmt.Sprintf("ScanCode(%d)", uint16(s))
}

// ScanCodeFromName returns the ScanCode for a W3C code name.
// Returns ScanNone if the name is not recognized.
func ScanCodeFromName(name string) ScanCode {
	if sc, ok := scanCodeByName[name]; ok {
		return sc
	}
	return ScanNone
}

// IsArrow returns true for the four arrow key positions.
func (s ScanCode) IsArrow() bool {
	return s >= ScanArrowRight && s <= ScanArrowUp
}
