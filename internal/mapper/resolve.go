package mapper

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/keybridge/internal/key"
	"github.com/dshills/keybridge/internal/shortcut"
)

// ResolveSimple returns every physical keypress that performs one
// shortcut part on this layout, in preference order. An empty result
// means the part cannot be produced; the reason is logged.
func (m *Mapper) ResolveSimple(req shortcut.Simple) []Keypress {
	// Pin the OS-abstract modifiers to concrete Ctrl/Meta.
	ctrl, meta := req.CtrlCmd, req.WinCtrl
	if m.os.CtrlMetaSwapped() {
		ctrl, meta = req.WinCtrl, req.CtrlCmd
	}

	var reqMods key.Modifier
	if ctrl {
		reqMods |= key.ModCtrl
	}
	if req.Alt {
		reqMods |= key.ModAlt
	}
	if meta {
		reqMods |= key.ModMeta
	}

	// Layout-invariant keys bypass layout lookup entirely.
	if sc, ok := key.ImmutableScanCode(req.Key); ok {
		mods := reqMods
		if req.Shift {
			mods |= key.ModShift
		}
		return []Keypress{{Mods: mods, Code: sc}}
	}

	// The request's shift flag only selects the desired character
	// here; the shift bit of each result comes from the layout.
	desired, ok := desiredChar(req.Key, req.Shift)
	if !ok {
		m.log.WithField("key", req.Key.String()).Debug("unmappable logical key")
		return nil
	}

	cands := m.index[desired]
	if len(cands) == 0 {
		m.log.WithField("char", string(desired)).Debug("character not producible on this layout")
		return nil
	}

	out := make([]Keypress, 0, len(cands))
	for _, cand := range cands {
		// A candidate that itself needs Ctrl or Alt to produce the
		// character cannot serve a request that claims the same
		// modifier: holding it changes what the key produces.
		if (cand.Mods.HasCtrl() && ctrl) || (cand.Mods.HasAlt() && req.Alt) {
			m.log.WithFields(logrus.Fields{
				"char":      string(desired),
				"candidate": cand.String(),
			}).Debug("candidate rejected: modifier conflict")
			continue
		}
		out = append(out, Keypress{Mods: cand.Mods | reqMods, Code: cand.Code})
	}
	return out
}

// Resolve returns every concrete combination that performs a request.
// For chorded requests the result is the full cross product of the two
// parts' alternatives, first-part major; if either part has none, the
// chord cannot be performed and the result is empty.
func (m *Mapper) Resolve(req shortcut.Request) []Combination {
	first := m.ResolveSimple(req.First)
	if len(first) == 0 {
		return nil
	}

	if req.Chord == nil {
		out := make([]Combination, len(first))
		for i, f := range first {
			out[i] = Combination{First: f}
		}
		return out
	}

	chord := m.ResolveSimple(*req.Chord)
	if len(chord) == 0 {
		return nil
	}

	out := make([]Combination, 0, len(first)*len(chord))
	for _, f := range first {
		for _, c := range chord {
			c := c
			out = append(out, Combination{First: f, Chord: &c})
		}
	}
	return out
}
