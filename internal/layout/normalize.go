package layout

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// combiningToSpacing folds combining diacritical marks to their
// spacing equivalents. Shortcut resolution and labels compare base
// glyphs, not raw code points: a layout whose Backquote position
// produces U+0300 (combining grave) still answers for '`'.
var combiningToSpacing = map[rune]rune{
	0x0300: 0x0060, // grave accent
	0x0301: 0x00B4, // acute accent
	0x0302: 0x005E, // circumflex
	0x0303: 0x007E, // tilde
	0x0304: 0x00AF, // macron
	0x0306: 0x02D8, // breve
	0x0307: 0x02D9, // dot above
	0x0308: 0x00A8, // diaeresis
	0x030A: 0x02DA, // ring above
	0x030B: 0x02DD, // double acute
	0x030C: 0x02C7, // caron
	0x0327: 0x00B8, // cedilla
	0x0328: 0x02DB, // ogonek
	0x0345: 0x037A, // ypogegrammeni
}

// NormalizeChar reduces a layout-table value string to the single rune
// the rest of the system works with: NFC-compose, keep the first
// grapheme cluster, take its first code point, and fold combining
// marks to their spacing form. Returns 0 for an empty value.
func NormalizeChar(s string) rune {
	if s == "" {
		return 0
	}
	s = norm.NFC.String(s)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if cluster == "" {
		return 0
	}
	r := []rune(cluster)[0]
	if spacing, ok := combiningToSpacing[r]; ok {
		return spacing
	}
	return r
}
