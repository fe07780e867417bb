// Package mapper translates OS-abstract shortcut requests into the
// concrete physical key presses that produce them on the active
// keyboard layout, and projects physical key codes back into display
// labels.
//
// A Mapper is built once per active layout from a layout.Table. During
// construction it derives a reverse index: for every character in the
// remappable set, the ordered list of (scan code, modifiers) pairs
// that produce it. The index order is deterministic: fewest modifiers
// first, then scan code ordinal, so the preferred candidate is stable
// across builds.
//
// Resolution of a request proceeds in three stages: layout-invariant
// keys (Enter, F-keys, the numpad...) short-circuit through the
// immutable table; otherwise the request's logical key and shift flag
// select a desired character against the US reference layout; the
// reverse index then yields every physically achievable candidate,
// minus those whose own Ctrl/Alt requirements collide with modifiers
// the request already demands.
//
// A constructed Mapper is immutable and safe for concurrent use.
package mapper
