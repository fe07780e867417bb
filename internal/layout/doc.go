// Package layout holds the OS-supplied keyboard layout table: for each
// physical key, the character produced under each of the four modifier
// states (plain, Shift, AltGr, Shift+AltGr) plus per-state dead-key
// flags.
//
// Tables are normalized on ingestion (Unicode NFC, first grapheme
// cluster, combining diacritics folded to their spacing equivalents)
// and are immutable afterwards. A layout change on the host requires
// ingesting a fresh table and building a fresh mapper; there is no
// in-place update.
package layout
