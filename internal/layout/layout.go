package layout

import (
	"fmt"

	"github.com/dshills/keybridge/internal/key"
)

// ModState is one of the four modifier states a layout table describes.
type ModState uint8

const (
	// ModStateNone is the plain, unmodified state.
	ModStateNone ModState = iota
	// ModStateShift is Shift held.
	ModStateShift
	// ModStateAltGr is AltGr held (delivered to the resolver as
	// Ctrl+Alt, mirroring how the OS synthesizes AltGr).
	ModStateAltGr
	// ModStateShiftAltGr is Shift and AltGr held together.
	ModStateShiftAltGr

	// ModStateCount is the number of modifier states.
	ModStateCount
)

// HasShift returns true if the state includes Shift.
func (s ModState) HasShift() bool {
	return s == ModStateShift || s == ModStateShiftAltGr
}

// HasAltGr returns true if the state includes AltGr.
func (s ModState) HasAltGr() bool {
	return s == ModStateAltGr || s == ModStateShiftAltGr
}

// String returns a short name for the state.
func (s ModState) String() string {
	switch s {
	case ModStateNone:
		return "plain"
	case ModStateShift:
		return "shift"
	case ModStateAltGr:
		return "altgr"
	case ModStateShiftAltGr:
		return "shift+altgr"
	default:
		return fmt.Sprintf("ModState(%d)", uint8(s))
	}
}

// Mapping is the raw, externally supplied record for one physical key:
// the string produced under each modifier state and whether that state
// is a dead key. Strings may be empty (the state produces nothing) or
// hold more than one code point (normalization keeps the first
// grapheme).
type Mapping struct {
	Value          string
	WithShift      string
	WithAltGr      string
	WithShiftAltGr string

	ValueIsDeadKey          bool
	WithShiftIsDeadKey      bool
	WithAltGrIsDeadKey      bool
	WithShiftAltGrIsDeadKey bool
}

// KeyMapping is the normalized form of a Mapping: one rune per state
// (0 when the state produces no character) plus the dead-key flags.
// Dead-key flags are recorded but resolution does not gate on them;
// dead positions are offered as candidates like any other.
type KeyMapping struct {
	runes [ModStateCount]rune
	dead  [ModStateCount]bool
}

// Rune returns the character produced under the given state, or 0.
func (m KeyMapping) Rune(s ModState) rune {
	if s >= ModStateCount {
		return 0
	}
	return m.runes[s]
}

// IsDeadKey returns the dead-key flag for the given state.
func (m KeyMapping) IsDeadKey(s ModState) bool {
	if s >= ModStateCount {
		return false
	}
	return m.dead[s]
}

// Table is an ingested, normalized layout table. It is immutable and
// safe for concurrent readers.
type Table struct {
	keys map[key.ScanCode]KeyMapping
}

// NewTable normalizes the supplied mappings into a Table. The input
// map is copied; the caller may reuse it.
func NewTable(entries map[key.ScanCode]Mapping) *Table {
	keys := make(map[key.ScanCode]KeyMapping, len(entries))
	for sc, m := range entries {
		if sc == key.ScanNone || sc >= key.ScanCodeCount {
			continue
		}
		keys[sc] = KeyMapping{
			runes: [ModStateCount]rune{
				ModStateNone:       NormalizeChar(m.Value),
				ModStateShift:      NormalizeChar(m.WithShift),
				ModStateAltGr:      NormalizeChar(m.WithAltGr),
				ModStateShiftAltGr: NormalizeChar(m.WithShiftAltGr),
			},
			dead: [ModStateCount]bool{
				ModStateNone:       m.ValueIsDeadKey,
				ModStateShift:      m.WithShiftIsDeadKey,
				ModStateAltGr:      m.WithAltGrIsDeadKey,
				ModStateShiftAltGr: m.WithShiftAltGrIsDeadKey,
			},
		}
	}
	return &Table{keys: keys}
}

// Mapping returns the normalized mapping for a scan code.
func (t *Table) Mapping(sc key.ScanCode) (KeyMapping, bool) {
	m, ok := t.keys[sc]
	return m, ok
}

// Len returns the number of physical keys the table describes.
func (t *Table) Len() int {
	return len(t.keys)
}
