package mapper

import (
	"strings"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/platform"
)

// ResolvedKeybinding is one concrete combination rendered for the
// various UI surfaces. Label, AriaLabel, and HTMLLabel are fully
// supported; Accelerator and Persistable need the US-fallback
// resolver and return ErrNotImplemented until it is integrated.
type ResolvedKeybinding interface {
	// Label is the display label, platform conventions applied
	// ("Ctrl+Shift+A", "⌃⇧A" on macOS).
	Label() string

	// AriaLabel is the screen-reader label, always full words
	// ("Control+Shift+A").
	AriaLabel() string

	// HTMLLabel is the label split into renderable parts, chord
	// parts flattened in order ("Ctrl", "Shift", "A").
	HTMLLabel() []string

	// Accelerator is the native-menu accelerator string.
	Accelerator() (string, error)

	// Persistable is the user-settings form of the binding.
	Persistable() (string, error)
}

// Keybinding renders a resolved combination for UI consumption.
func (m *Mapper) Keybinding(c Combination) ResolvedKeybinding {
	return resolvedKeybinding{m: m, combo: c}
}

type resolvedKeybinding struct {
	m     *Mapper
	combo Combination
}

// modifierNames returns the ordered modifier labels for one keypress,
// in the conventional Ctrl, Shift, Alt, Meta order.
func (r resolvedKeybinding) modifierNames(mods key.Modifier, aria bool) []string {
	mac := r.m.os == platform.MacOS

	var names []string
	add := func(has bool, macGlyph, macWord, word, ariaWord string) {
		if !has {
			return
		}
		switch {
		case mac && !aria:
			names = append(names, macGlyph)
		case mac:
			names = append(names, macWord)
		case aria:
			names = append(names, ariaWord)
		default:
			names = append(names, word)
		}
	}
	meta := "Super"
	metaAria := "Super"
	if r.m.os == platform.Windows {
		meta, metaAria = "Win", "Windows"
	}
	add(mods.HasCtrl(), "⌃", "Control", "Ctrl", "Control")
	add(mods.HasShift(), "⇧", "Shift", "Shift", "Shift")
	add(mods.HasAlt(), "⌥", "Option", "Alt", "Alt")
	add(mods.HasMeta(), "⌘", "Command", meta, metaAria)
	return names
}

// partLabel renders one keypress as label parts.
func (r resolvedKeybinding) partLabel(kp Keypress, forUI, aria bool) []string {
	parts := r.modifierNames(kp.Mods, aria)
	label, err := r.m.Label(kp.Code, forUI)
	if err != nil {
		// Visible fallback, never silent.
		label = "[" + kp.Code.String() + "]"
	}
	return append(parts, label)
}

func (r resolvedKeybinding) render(forUI, aria bool, joiner string) string {
	first := strings.Join(r.partLabel(r.combo.First, forUI, aria), joiner)
	if r.combo.Chord == nil {
		return first
	}
	return first + " " + strings.Join(r.partLabel(*r.combo.Chord, forUI, aria), joiner)
}

// Label implements ResolvedKeybinding.
func (r resolvedKeybinding) Label() string {
	if r.m.os == platform.MacOS {
		// macOS labels run the glyphs together.
		return r.render(true, false, "")
	}
	return r.render(true, false, "+")
}

// AriaLabel implements ResolvedKeybinding.
func (r resolvedKeybinding) AriaLabel() string {
	return r.render(false, true, "+")
}

// HTMLLabel implements ResolvedKeybinding.
func (r resolvedKeybinding) HTMLLabel() []string {
	parts := r.partLabel(r.combo.First, true, false)
	if r.combo.Chord != nil {
		parts = append(parts, r.partLabel(*r.combo.Chord, true, false)...)
	}
	return parts
}

// Accelerator implements ResolvedKeybinding. Accelerator strings need
// the US-fallback resolver, which is not integrated yet.
func (r resolvedKeybinding) Accelerator() (string, error) {
	return "", ErrNotImplemented
}

// Persistable implements ResolvedKeybinding. The settings form needs
// the US-fallback resolver, which is not integrated yet.
func (r resolvedKeybinding) Persistable() (string, error) {
	return "", ErrNotImplemented
}
