package colorlit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion layer.
var (
	// ErrStaleMatch is returned when a Match no longer describes the buffer
	// it is applied to.
	ErrStaleMatch = errors.New("colorlit: match does not describe buffer")

	// ErrOverlappingEdits is returned by Apply when two edits overlap.
	ErrOverlappingEdits = errors.New("colorlit: overlapping edits")

	// ErrEditOutOfBounds is returned by Apply when an edit lies outside the buffer.
	ErrEditOutOfBounds = errors.New("colorlit: edit out of bounds")
)

// OutOfRangeError is returned when a channel lies outside [0, 1] and
// clamping is disabled.
type OutOfRangeError struct {
	Channel string
	Value   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("colorlit: %s channel %g out of range [0, 1]", e.Channel, e.Value)
}

// MalformedHexError is returned when an explicitly requested hex parse sees
// the wrong digit count or a non-hex character.
type MalformedHexError struct {
	Text   string
	Digits int
	// Pos is the byte offset of the first invalid character, or -1 when the
	// digit count is wrong.
	Pos int
}

func (e *MalformedHexError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("colorlit: malformed hex %q: invalid character at offset %d", e.Text, e.Pos)
	}
	return fmt.Sprintf("colorlit: malformed hex %q: %d digits, want 6 or 8", e.Text, e.Digits)
}

// UnknownNotationError is returned when a conversion targets an unsupported
// notation.
type UnknownNotationError struct {
	Kind Notation
	Name string
}

func (e *UnknownNotationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("colorlit: unknown notation %q", e.Name)
	}
	return fmt.Sprintf("colorlit: unknown notation %d", uint8(e.Kind))
}

// SyntaxError is returned when text does not have the shape its notation
// requires.
type SyntaxError struct {
	Kind   Notation
	Text   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("colorlit: invalid %s %q: %s", e.Kind, e.Text, e.Reason)
}
