// Package key defines the two keyboard code spaces and the modifier
// bitmask used throughout keybridge:
//
//   - ScanCode: a physical key position, named after the W3C
//     KeyboardEvent.code values ("KeyA", "Slash", "Enter"). Scan codes
//     are layout-independent: ScanKeyQ is the same physical key on
//     QWERTY and AZERTY even though it produces different characters.
//   - KeyCode: a logical key identity as used by shortcut definitions
//     ("the letter A", "the slash key", "F5"). Key codes are defined
//     against the standard US layout.
//   - Modifier: a Ctrl/Alt/Shift/Meta bitmask.
//
// The two code spaces are related only through the immutable table
// (for keys whose position never depends on layout, such as Enter and
// the function keys) or through layout-dependent resolution performed
// by the mapper package.
package key
