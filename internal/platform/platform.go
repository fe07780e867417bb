// Package platform carries the opaque OS-family tag the mapper is
// constructed with. The mapper never queries the host OS itself; the
// caller decides which family it is targeting.
package platform

import "fmt"

// OS identifies an operating system family.
type OS uint8

const (
	// Linux covers Linux and the other non-mac, non-Windows families.
	Linux OS = iota
	// MacOS is the macOS family.
	MacOS
	// Windows is the Windows family.
	Windows
)

// String returns the family name.
func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	default:
		return fmt.Sprintf("OS(%d)", uint8(o))
	}
}

// FromName parses an OS family name. Recognized: "linux", "macos",
// "darwin", "mac", "windows", "win".
func FromName(name string) (OS, error) {
	switch name {
	case "linux":
		return Linux, nil
	case "macos", "darwin", "mac":
		return MacOS, nil
	case "windows", "win":
		return Windows, nil
	default:
		return Linux, fmt.Errorf("unknown OS family %q", name)
	}
}

// CtrlMetaSwapped reports whether the family maps the OS-abstract
// CtrlCmd modifier to Meta and WinCtrl to Ctrl (macOS), rather than
// the other way around.
func (o OS) CtrlMetaSwapped() bool {
	return o == MacOS
}

// UsesArrowGlyphs reports whether UI labels for the arrow keys use the
// directional glyph characters instead of the key names.
func (o OS) UsesArrowGlyphs() bool {
	return o == MacOS
}
