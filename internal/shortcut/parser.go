package shortcut

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keybridge/internal/key"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty shortcut specification")
	ErrInvalidSpec = errors.New("invalid shortcut specification")
)

// Parse parses a shortcut specification string into a Request.
//
// Supported formats:
//   - Simple: "ctrl+s", "alt+f4", "ctrl+shift+/"
//   - Chorded: "ctrl+k ctrl+c" (two parts separated by a space)
//
// Modifier aliases: ctrl/control/cmd/meta map to CtrlCmd,
// winctrl maps to WinCtrl, alt/option/opt map to Alt.
func Parse(spec string) (Request, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Request{}, ErrEmptySpec
	}

	parts := strings.Fields(spec)
	switch len(parts) {
	case 1:
		first, err := ParseSimple(parts[0])
		if err != nil {
			return Request{}, err
		}
		return Request{First: first}, nil
	case 2:
		first, err := ParseSimple(parts[0])
		if err != nil {
			return Request{}, err
		}
		chord, err := ParseSimple(parts[1])
		if err != nil {
			return Request{}, err
		}
		return Request{First: first, Chord: &chord}, nil
	default:
		return Request{}, fmt.Errorf("%w: at most two chord parts, got %d", ErrInvalidSpec, len(parts))
	}
}

// ParseSimple parses one plus-joined part like "ctrl+shift+p".
func ParseSimple(spec string) (Simple, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Simple{}, ErrEmptySpec
	}

	var s Simple

	// Separate the key part from the modifier prefix. A trailing '+'
	// means the key itself is '+' ("ctrl++").
	keyPart := spec
	modPart := ""
	if spec == "+" {
		keyPart = "+"
	} else if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modPart = strings.TrimSuffix(spec, "++")
	} else if idx := strings.LastIndex(spec, "+"); idx >= 0 {
		keyPart = spec[idx+1:]
		modPart = spec[:idx]
	}

	if modPart != "" {
		for _, p := range strings.Split(modPart, "+") {
			switch strings.ToLower(strings.TrimSpace(p)) {
			case "ctrl", "control", "ctrlcmd", "cmd", "command", "meta":
				s.CtrlCmd = true
			case "winctrl", "win", "super":
				s.WinCtrl = true
			case "shift":
				s.Shift = true
			case "alt", "option", "opt":
				s.Alt = true
			default:
				return Simple{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
		}
	}

	kc := key.KeyCodeFromName(keyPart)
	if keyPart == "+" {
		// '+' is shifted '=' on the reference layout.
		kc = key.KeyEqual
		s.Shift = true
	}
	if kc == key.KeyNone {
		return Simple{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	s.Key = kc

	// A single uppercase letter implies Shift.
	if r := []rune(keyPart); len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z' {
		s.Shift = true
	}
	return s, nil
}

// MustParse parses a specification and panics on error. Use only for
// known-valid specs in initialization code.
func MustParse(spec string) Request {
	r, err := Parse(spec)
	if err != nil {
		panic("invalid shortcut specification: " + spec + ": " + err.Error())
	}
	return r
}
