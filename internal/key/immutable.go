package key

// The immutable table is the fixed ScanCode<->KeyCode bijection for
// keys whose position never depends on the active layout (Enter,
// arrows, function keys, the numpad, and so on). It is built exactly
// once, during package initialization, and only read afterwards; the
// two arrays are never exported and no mutators exist.
//
// Scan codes present here must never be registered in a layout reverse
// index: resolution for them bypasses layout lookup entirely.

var immutableScanToKey [ScanCodeCount]KeyCode
var immutableKeyToScan [KeyCodeCount]ScanCode

var immutableReady = buildImmutableTables()

func buildImmutableTables() bool {
	d := func(kc KeyCode, sc ScanCode) {
		immutableScanToKey[sc] = kc
		immutableKeyToScan[kc] = sc
	}

	d(KeyEnter, ScanEnter)
	d(KeyEscape, ScanEscape)
	d(KeyBackspace, ScanBackspace)
	d(KeyTab, ScanTab)
	d(KeySpace, ScanSpace)
	d(KeyCapsLock, ScanCapsLock)
	d(KeyF1, ScanF1)
	d(KeyF2, ScanF2)
	d(KeyF3, ScanF3)
	d(KeyF4, ScanF4)
	d(KeyF5, ScanF5)
	d(KeyF6, ScanF6)
	d(KeyF7, ScanF7)
	d(KeyF8, ScanF8)
	d(KeyF9, ScanF9)
	d(KeyF10, ScanF10)
	d(KeyF11, ScanF11)
	d(KeyF12, ScanF12)
	d(KeyPrintScreen, ScanPrintScreen)
	d(KeyScrollLock, ScanScrollLock)
	d(KeyPause, ScanPause)
	d(KeyInsert, ScanInsert)
	d(KeyHome, ScanHome)
	d(KeyPageUp, ScanPageUp)
	d(KeyDelete, ScanDelete)
	d(KeyEnd, ScanEnd)
	d(KeyPageDown, ScanPageDown)
	d(KeyRight, ScanArrowRight)
	d(KeyLeft, ScanArrowLeft)
	d(KeyDown, ScanArrowDown)
	d(KeyUp, ScanArrowUp)
	d(KeyNumLock, ScanNumLock)
	d(KeyNumpadDivide, ScanNumpadDivide)
	d(KeyNumpadMultiply, ScanNumpadMultiply)
	d(KeyNumpadSubtract, ScanNumpadSubtract)
	d(KeyNumpadAdd, ScanNumpadAdd)
	d(KeyNumpadEnter, ScanNumpadEnter)
	d(KeyNumpad1, ScanNumpad1)
	d(KeyNumpad2, ScanNumpad2)
	d(KeyNumpad3, ScanNumpad3)
	d(KeyNumpad4, ScanNumpad4)
	d(KeyNumpad5, ScanNumpad5)
	d(KeyNumpad6, ScanNumpad6)
	d(KeyNumpad7, ScanNumpad7)
	d(KeyNumpad8, ScanNumpad8)
	d(KeyNumpad9, ScanNumpad9)
	d(KeyNumpad0, ScanNumpad0)
	d(KeyNumpadDecimal, ScanNumpadDecimal)
	d(KeyContextMenu, ScanContextMenu)

	return true
}

// ImmutableKeyCode returns the layout-invariant KeyCode for a scan
// code, if one exists. Scan codes without an immutable mapping fall
// through to layout-dependent label lookup.
func ImmutableKeyCode(sc ScanCode) (KeyCode, bool) {
	if !immutableReady || sc >= ScanCodeCount {
		return KeyNone, false
	}
	kc := immutableScanToKey[sc]
	return kc, kc != KeyNone
}

// ImmutableScanCode returns the layout-invariant ScanCode for a key
// code, if one exists. Key codes without an immutable mapping fall
// through to layout-dependent resolution.
func ImmutableScanCode(kc KeyCode) (ScanCode, bool) {
	if !immutableReady || kc >= KeyCodeCount {
		return ScanNone, false
	}
	sc := immutableKeyToScan[kc]
	return sc, sc != ScanNone
}
