package mapper

import (
	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/layout"
)

// arrowGlyphs are the UI labels for the arrow positions on families
// that render directional glyphs.
var arrowGlyphs = map[key.ScanCode]string{
	key.ScanArrowUp:    "↑",
	key.ScanArrowDown:  "↓",
	key.ScanArrowLeft:  "←",
	key.ScanArrowRight: "→",
}

// Label projects a scan code to a human-readable label, independent of
// any resolution. forUI selects presentation conventions (arrow glyphs
// on macOS); aria and other textual surfaces pass false.
//
// Returns ErrLabelUnavailable when neither the immutable table nor the
// layout table covers the code; the caller must supply a fallback
// rather than guessing.
func (m *Mapper) Label(sc key.ScanCode, forUI bool) (string, error) {
	if forUI && m.os.UsesArrowGlyphs() {
		if glyph, ok := arrowGlyphs[sc]; ok {
			return glyph, nil
		}
	}

	if kc, ok := key.ImmutableKeyCode(sc); ok {
		return kc.String(), nil
	}

	if km, ok := m.table.Mapping(sc); ok {
		r := km.Rune(layout.ModStateNone)
		if r >= 'a' && r <= 'z' {
			return string(r - 'a' + 'A'), nil
		}
		if r != 0 {
			return string(r), nil
		}
	}

	m.log.WithField("code", sc.String()).Warn("no label for scan code")
	return "", ErrLabelUnavailable
}
