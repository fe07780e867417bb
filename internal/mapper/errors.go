package mapper

import "errors"

// Resolution and labeling failure modes. All are diagnostic: per-
// candidate failures skip to the next candidate, and exhausting every
// candidate surfaces as an empty result, never a panic.
var (
	// ErrUnmappableKey means the logical key has no US reference
	// character and no immutable position, so no layout can host it.
	ErrUnmappableKey = errors.New("logical key has no reference character")

	// ErrCharNotProducible means the active layout produces the
	// desired character on no key under any modifier state.
	ErrCharNotProducible = errors.New("character not producible on this layout")

	// ErrModifierConflict means one candidate needed Ctrl or Alt that
	// the request already claims, which would change the character.
	ErrModifierConflict = errors.New("candidate modifiers conflict with request")

	// ErrLabelUnavailable means the immutable table and the layout
	// table disagree about a scan code; callers must show a fallback.
	ErrLabelUnavailable = errors.New("no label available for scan code")

	// ErrNotImplemented marks the accelerator and persistable
	// renderings, which need the US-fallback collaborator.
	ErrNotImplemented = errors.New("not implemented")
)
