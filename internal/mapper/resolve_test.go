package mapper

import (
	"testing"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/layout"
	"github.com/dshills/keybridge/internal/platform"
	"github.com/dshills/keybridge/internal/shortcut"
)

func TestResolveSimpleSlash(t *testing.T) {
	m := usMapper(platform.Linux)

	got := m.ResolveSimple(shortcut.Simple{Key: key.KeySlash})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	if got[0] != (Keypress{Mods: key.ModNone, Code: key.ScanSlash}) {
		t.Errorf("alternative = %v", got[0])
	}

	got = m.ResolveSimple(shortcut.Simple{Key: key.KeySlash, Shift: true})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	if got[0] != (Keypress{Mods: key.ModShift, Code: key.ScanSlash}) {
		t.Errorf("alternative = %v", got[0])
	}
}

func TestResolveSimpleShiftSelectsCharOnly(t *testing.T) {
	// On a layout where '?' is an unshifted key, requesting shift+/
	// must yield that key without Shift: the request's shift flag only
	// picks the desired character.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanMinus: {Value: "?"},
	})
	m := New(platform.Linux, table, nil)

	got := m.ResolveSimple(shortcut.Simple{Key: key.KeySlash, Shift: true})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	if got[0] != (Keypress{Mods: key.ModNone, Code: key.ScanMinus}) {
		t.Errorf("alternative = %v, want plain Minus", got[0])
	}
}

func TestResolveSimpleAltGrCandidate(t *testing.T) {
	// '/' only on AltGr+KeyM: a bare request picks up Ctrl+Alt.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyM: {Value: "m", WithShift: "M", WithAltGr: "/"},
	})
	m := New(platform.Linux, table, nil)

	got := m.ResolveSimple(shortcut.Simple{Key: key.KeySlash})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	want := Keypress{Mods: key.ModCtrl | key.ModAlt, Code: key.ScanKeyM}
	if got[0] != want {
		t.Errorf("alternative = %v, want %v", got[0], want)
	}

	// The same request with ctrl held conflicts with the candidate's
	// own Ctrl requirement; no other candidate exists.
	got = m.ResolveSimple(shortcut.Simple{CtrlCmd: true, Key: key.KeySlash})
	if len(got) != 0 {
		t.Errorf("got %d alternatives, want 0 (modifier conflict)", len(got))
	}

	// Alt conflicts the same way.
	got = m.ResolveSimple(shortcut.Simple{Alt: true, Key: key.KeySlash})
	if len(got) != 0 {
		t.Errorf("got %d alternatives, want 0 (modifier conflict)", len(got))
	}
}

func TestResolveSimpleConflictSkipsToNextCandidate(t *testing.T) {
	// With both an AltGr candidate and a plain one, a ctrl-laden
	// request drops only the AltGr candidate.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyM:  {Value: "m", WithShift: "M", WithAltGr: "/"},
		key.ScanSlash: {Value: "/", WithShift: "?"},
	})
	m := New(platform.Linux, table, nil)

	got := m.ResolveSimple(shortcut.Simple{CtrlCmd: true, Key: key.KeySlash})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	want := Keypress{Mods: key.ModCtrl, Code: key.ScanSlash}
	if got[0] != want {
		t.Errorf("alternative = %v, want %v", got[0], want)
	}
}

func TestResolveSimpleImmutableBypass(t *testing.T) {
	// Layout-invariant keys resolve identically on any table, even an
	// empty one, and carry the request's modifiers through.
	empty := layout.NewTable(nil)
	for _, m := range []*Mapper{usMapper(platform.Linux), New(platform.Linux, empty, nil)} {
		got := m.ResolveSimple(shortcut.Simple{CtrlCmd: true, Shift: true, Key: key.KeyEnter})
		if len(got) != 1 {
			t.Fatalf("got %d alternatives, want 1", len(got))
		}
		want := Keypress{Mods: key.ModCtrl | key.ModShift, Code: key.ScanEnter}
		if got[0] != want {
			t.Errorf("alternative = %v, want %v", got[0], want)
		}
	}
}

func TestResolveSimpleImmutableCoversWholeTable(t *testing.T) {
	empty := New(platform.Linux, layout.NewTable(nil), nil)
	for kc := key.KeyNone + 1; kc < key.KeyCodeCount; kc++ {
		sc, ok := key.ImmutableScanCode(kc)
		if !ok {
			continue
		}
		got := empty.ResolveSimple(shortcut.Simple{Key: kc})
		if len(got) != 1 || got[0].Code != sc {
			t.Errorf("key %v: alternatives = %v, want single press of %v", kc, got, sc)
		}
	}
}

func TestResolveSimpleCtrlMetaByFamily(t *testing.T) {
	tests := []struct {
		os   platform.OS
		req  shortcut.Simple
		want key.Modifier
	}{
		{platform.Linux, shortcut.Simple{CtrlCmd: true, Key: key.KeyA}, key.ModCtrl},
		{platform.Windows, shortcut.Simple{CtrlCmd: true, Key: key.KeyA}, key.ModCtrl},
		{platform.MacOS, shortcut.Simple{CtrlCmd: true, Key: key.KeyA}, key.ModMeta},
		{platform.Linux, shortcut.Simple{WinCtrl: true, Key: key.KeyA}, key.ModMeta},
		{platform.MacOS, shortcut.Simple{WinCtrl: true, Key: key.KeyA}, key.ModCtrl},
	}

	for _, tt := range tests {
		got := usMapper(tt.os).ResolveSimple(tt.req)
		if len(got) != 1 {
			t.Fatalf("%v on %v: got %d alternatives", tt.req, tt.os, len(got))
		}
		if got[0].Mods != tt.want {
			t.Errorf("%v on %v: mods = %v, want %v", tt.req, tt.os, got[0].Mods, tt.want)
		}
	}
}

func TestResolveSimpleUnmappableKey(t *testing.T) {
	m := usMapper(platform.Linux)
	if got := m.ResolveSimple(shortcut.Simple{Key: key.KeyIntlBackslash}); len(got) != 0 {
		t.Errorf("got %d alternatives for OEM_102, want 0", len(got))
	}
}

func TestResolveSimpleCharNotProducible(t *testing.T) {
	// A table without any key producing 'z'.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyA: {Value: "a", WithShift: "A"},
	})
	m := New(platform.Linux, table, nil)

	if got := m.ResolveSimple(shortcut.Simple{Key: key.KeyZ}); len(got) != 0 {
		t.Errorf("got %d alternatives for 'z', want 0", len(got))
	}
}

func TestResolveDeadKeyPositionsStillOffered(t *testing.T) {
	// Dead-key flags are recorded but do not remove candidates.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanBackquote: {Value: "`", ValueIsDeadKey: true, WithShift: "~"},
	})
	m := New(platform.Linux, table, nil)

	got := m.ResolveSimple(shortcut.Simple{Key: key.KeyBackquote})
	if len(got) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(got))
	}
	if got[0].Code != key.ScanBackquote {
		t.Errorf("alternative = %v", got[0])
	}
}

func TestResolveSimpleRequest(t *testing.T) {
	m := usMapper(platform.Linux)

	combos := m.Resolve(shortcut.MustParse("ctrl+shift+a"))
	if len(combos) != 1 {
		t.Fatalf("got %d combinations, want 1", len(combos))
	}
	if combos[0].IsChord() {
		t.Error("simple request should have no chord part")
	}
	want := Keypress{Mods: key.ModCtrl | key.ModShift, Code: key.ScanKeyA}
	if combos[0].First != want {
		t.Errorf("first = %v, want %v", combos[0].First, want)
	}
}

func TestResolveChordCrossProduct(t *testing.T) {
	// First part has one alternative, chord part two ('\' on both
	// Backslash and IntlBackslash): 1 x 2 combinations, first-major.
	m := usMapper(platform.Linux)

	combos := m.Resolve(shortcut.MustParse("ctrl+k ctrl+\\"))
	if len(combos) != 2 {
		t.Fatalf("got %d combinations, want 2", len(combos))
	}
	for _, c := range combos {
		if c.First.Code != key.ScanKeyK {
			t.Errorf("first part = %v, want KeyK", c.First)
		}
		if c.Chord == nil {
			t.Fatal("chord part missing")
		}
	}
	if combos[0].Chord.Code != key.ScanBackslash || combos[1].Chord.Code != key.ScanIntlBackslash {
		t.Errorf("chord order = %v, %v", combos[0].Chord.Code, combos[1].Chord.Code)
	}
}

func TestResolveChordEmptyPartEmptiesWhole(t *testing.T) {
	// 'z' is unproducible on this table, in either chord position.
	table := layout.NewTable(map[key.ScanCode]layout.Mapping{
		key.ScanKeyA: {Value: "a", WithShift: "A"},
	})
	m := New(platform.Linux, table, nil)

	z := shortcut.Simple{Key: key.KeyZ}
	a := shortcut.Simple{Key: key.KeyA}

	if got := m.Resolve(shortcut.Request{First: a, Chord: &z}); len(got) != 0 {
		t.Errorf("chord with unproducible second part: got %d, want 0", len(got))
	}
	if got := m.Resolve(shortcut.Request{First: z, Chord: &a}); len(got) != 0 {
		t.Errorf("chord with unproducible first part: got %d, want 0", len(got))
	}
}
