package mapper

import (
	"testing"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/layout"
	"github.com/dshills/keybridge/internal/platform"
)

func usMapper(os platform.OS) *Mapper {
	return New(os, layout.USStandard(), nil)
}

func TestIndexPrefersFewerModifiers(t *testing.T) {
	// '/' on AltGr+KeyQ and plain on Slash: the plain candidate must
	// come first even though KeyQ has the lower ordinal.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyQ:  {Value: "q", WithShift: "Q", WithAltGr: "/"},
		key.ScanSlash: {Value: "/", WithShift: "?"},
	})
	m := New(platform.Linux, table, nil)

	cands := m.Candidates('/')
	if len(cands) != 2 {
		t.Fatalf("got %d candidates for '/', want 2", len(cands))
	}
	if cands[0].Code != key.ScanSlash || cands[0].Mods != key.ModNone {
		t.Errorf("first candidate = %v, want plain Slash", cands[0])
	}
	if cands[1].Code != key.ScanKeyQ || cands[1].Mods != key.ModCtrl|key.ModAlt {
		t.Errorf("second candidate = %v, want Ctrl+Alt KeyQ", cands[1])
	}
}

func TestIndexTiesBreakByOrdinal(t *testing.T) {
	// US maps '\' on both Backslash and IntlBackslash with no
	// modifiers; Backslash has the lower ordinal and sorts first.
	m := usMapper(platform.Linux)

	cands := m.Candidates('\\')
	if len(cands) != 2 {
		t.Fatalf("got %d candidates for '\\', want 2", len(cands))
	}
	if cands[0].Code != key.ScanBackslash || cands[1].Code != key.ScanIntlBackslash {
		t.Errorf("candidate order = %v, %v", cands[0].Code, cands[1].Code)
	}
}

func TestIndexDropsDuplicateScanCodes(t *testing.T) {
	// A key producing the same character in two states registers once,
	// under the state seen first (fewest modifiers after sorting).
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyA: {Value: "a", WithShift: "a"},
	})
	m := New(platform.Linux, table, nil)

	cands := m.Candidates('a')
	if len(cands) != 1 {
		t.Fatalf("got %d candidates for 'a', want 1", len(cands))
	}
	if cands[0].Mods != key.ModNone {
		t.Errorf("candidate mods = %v, want none", cands[0].Mods)
	}
}

func TestIndexSkipsImmutablePositions(t *testing.T) {
	// Even a (bogus) table entry for an immutable position must not
	// land in the reverse index.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanEnter: {Value: "x"},
	})
	m := New(platform.Linux, table, nil)

	if cands := m.Candidates('x'); len(cands) != 0 {
		t.Errorf("got %d candidates for 'x', want 0", len(cands))
	}
}

func TestIndexSkipsNonRemappableChars(t *testing.T) {
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyQ: {Value: "é", WithAltGr: "€"},
	})
	m := New(platform.Linux, table, nil)

	if cands := m.Candidates('é'); len(cands) != 0 {
		t.Errorf("'é' should not be indexed, got %v", cands)
	}
	if cands := m.Candidates('€'); len(cands) != 0 {
		t.Errorf("'€' should not be indexed, got %v", cands)
	}
}

func TestIndexDeterministic(t *testing.T) {
	// Two mappers from the same table must agree on every ordering.
	a := usMapper(platform.Linux)
	b := usMapper(platform.Linux)

	for r := range remappableChars {
		ca, cb := a.Candidates(r), b.Candidates(r)
		if len(ca) != len(cb) {
			t.Fatalf("char %q: %d vs %d candidates", r, len(ca), len(cb))
		}
		for i := range ca {
			if ca[i] != cb[i] {
				t.Errorf("char %q candidate %d: %v vs %v", r, i, ca[i], cb[i])
			}
		}
	}
}

func TestIndexReplaysToSameChar(t *testing.T) {
	// Applying a candidate's modifier state to its own key must
	// reproduce the character it is registered under.
	table := layout.USStandard()
	m := New(platform.Linux, table, nil)

	for r := range remappableChars {
		for _, cand := range m.Candidates(r) {
			km, ok := table.Mapping(cand.Code)
			if !ok {
				t.Fatalf("char %q: candidate %v has no table entry", r, cand)
			}
			var state layout.ModState
			switch {
			case cand.Mods.HasShift() && cand.Mods.HasCtrl():
				state = layout.ModStateShiftAltGr
			case cand.Mods.HasCtrl():
				state = layout.ModStateAltGr
			case cand.Mods.HasShift():
				state = layout.ModStateShift
			default:
				state = layout.ModStateNone
			}
			if got := km.Rune(state); got != r {
				t.Errorf("char %q: candidate %v replays to %q", r, cand, got)
			}
		}
	}
}
