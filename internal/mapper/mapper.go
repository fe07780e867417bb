package mapper

import (
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/layout"
	"github.com/dshills/keybridge/internal/platform"
)

// Mapper resolves shortcut requests against one ingested keyboard
// layout. Build a new Mapper when the host layout changes; instances
// are immutable and safe for concurrent readers.
type Mapper struct {
	os    platform.OS
	table *layout.Table
	index map[rune][]Keypress
	log   logrus.FieldLogger
}

// New builds a Mapper for the given OS family and layout table. A nil
// logger discards diagnostics.
func New(os platform.OS, table *layout.Table, log logrus.FieldLogger) *Mapper {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	m := &Mapper{
		os:    os,
		table: table,
		log:   log.WithField("component", "mapper"),
	}
	m.index = m.buildIndex()
	return m
}

// modsForState maps a layout modifier state to resolver modifiers.
// AltGr is delivered as Ctrl+Alt, mirroring how the OS synthesizes it.
func modsForState(s layout.ModState) key.Modifier {
	var mods key.Modifier
	if s.HasShift() {
		mods |= key.ModShift
	}
	if s.HasAltGr() {
		mods |= key.ModCtrl | key.ModAlt
	}
	return mods
}

// buildIndex derives the character -> candidate keypress index from
// the layout table. Scan codes are walked in ordinal order and each
// candidate list is sorted by modifier count then ordinal, so two
// builds from the same table produce identical orderings.
func (m *Mapper) buildIndex() map[rune][]Keypress {
	index := make(map[rune][]Keypress)
	seen := make(map[rune]map[key.ScanCode]bool)

	for sc := key.ScanNone + 1; sc < key.ScanCodeCount; sc++ {
		if _, immutable := key.ImmutableKeyCode(sc); immutable {
			// Immutable positions never take part in layout lookup.
			continue
		}
		km, ok := m.table.Mapping(sc)
		if !ok {
			continue
		}
		for state := layout.ModStateNone; state < layout.ModStateCount; state++ {
			r := km.Rune(state)
			if r == 0 || !isRemappable(r) {
				continue
			}
			if seen[r][sc] {
				// A scan code registers under a character once.
				continue
			}
			if seen[r] == nil {
				seen[r] = make(map[key.ScanCode]bool)
			}
			seen[r][sc] = true
			index[r] = append(index[r], Keypress{Mods: modsForState(state), Code: sc})
		}
	}

	for r, cands := range index {
		sort.SliceStable(cands, func(i, j int) bool {
			ci, cj := cands[i].Mods.Count(), cands[j].Mods.Count()
			if ci != cj {
				return ci < cj
			}
			return cands[i].Code < cands[j].Code
		})
		index[r] = cands
	}

	for r := range remappableChars {
		if len(index[r]) == 0 {
			m.log.WithField("char", string(r)).Debug("layout produces no candidates for character")
		}
	}

	return index
}

// OS returns the OS family the mapper was built for.
func (m *Mapper) OS() platform.OS {
	return m.os
}

// Candidates returns the ordered candidate list for a character, or
// nil. The returned slice is shared; callers must not modify it.
func (m *Mapper) Candidates(r rune) []Keypress {
	return m.index[r]
}
