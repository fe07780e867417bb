package termkey

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/shortcut"
)

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want shortcut.Simple
		ok   bool
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', 0),
			shortcut.Simple{Key: key.KeyA},
			true,
		},
		{
			"uppercase rune implies shift",
			tcell.NewEventKey(tcell.KeyRune, 'A', 0),
			shortcut.Simple{Shift: true, Key: key.KeyA},
			true,
		},
		{
			"ctrl maps to ctrlcmd",
			tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl),
			shortcut.Simple{CtrlCmd: true, Key: key.KeyS},
			true,
		},
		{
			"meta maps to winctrl",
			tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModMeta),
			shortcut.Simple{WinCtrl: true, Key: key.KeyS},
			true,
		},
		{
			"alt shift combo",
			tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModAlt|tcell.ModShift),
			shortcut.Simple{Alt: true, Shift: true, Key: key.KeySlash},
			true,
		},
		{
			"space",
			tcell.NewEventKey(tcell.KeyRune, ' ', 0),
			shortcut.Simple{Key: key.KeySpace},
			true,
		},
		{
			"function key",
			tcell.NewEventKey(tcell.KeyF5, 0, 0),
			shortcut.Simple{Key: key.KeyF5},
			true,
		},
		{
			"arrow with ctrl",
			tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl),
			shortcut.Simple{CtrlCmd: true, Key: key.KeyUp},
			true,
		},
		{
			"both backspace variants",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, 0),
			shortcut.Simple{Key: key.KeyBackspace},
			true,
		},
		{
			"control key code",
			tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			shortcut.Simple{CtrlCmd: true, Key: key.KeyS},
			true,
		},
		{
			"rune outside reference set",
			tcell.NewEventKey(tcell.KeyRune, '€', 0),
			shortcut.Simple{},
			false,
		},
	}

	for _, tt := range tests {
		got, ok := FromEvent(tt.ev)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: FromEvent() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestFromEventNil(t *testing.T) {
	if _, ok := FromEvent(nil); ok {
		t.Error("FromEvent(nil) should not map")
	}
}
