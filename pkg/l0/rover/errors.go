package rover

import (
	"errors"
	"fmt"
)

// ParsingErrorKind classifies a ParsingError.
type ParsingErrorKind int

// Parsing error kinds.
const (
	ZeroLengthSlice ParsingErrorKind = iota + 1
	InvalidSubsystem
	InvalidPart
	NoEboxPart
	LengthInconsistency
	ChecksumMismatch
)

// String implements fmt.Stringer.
func (k ParsingErrorKind) String() string {
	switch k {
	case ZeroLengthSlice:
		return "zero length slice"
	case InvalidSubsystem:
		return "invalid subsystem"
	case InvalidPart:
		return "invalid part"
	case NoEboxPart:
		return "no ebox part"
	case LengthInconsistency:
		return "length inconsistency"
	case ChecksumMismatch:
		return "checksum mismatch"
	}
	return fmt.Sprintf("parsing error kind %d", int(k))
}

// ParsingError reports a frame which can't be decoded.
// Only the fields relevant to Kind are set.
type ParsingError struct {
	Kind           ParsingErrorKind
	Subsystem      Subsystem
	Part           Part
	Length         int
	ExpectedLength int
	Stored         uint8
	Computed       uint8
}

// Error implements error.
func (e *ParsingError) Error() string {
	switch e.Kind {
	case InvalidSubsystem:
		return fmt.Sprintf("invalid subsystem 0x%02x", byte(e.Subsystem))
	case InvalidPart:
		return fmt.Sprintf("invalid part 0x%02x of %s", byte(e.Part), e.Subsystem)
	case NoEboxPart:
		return fmt.Sprintf("no part in %s frame", e.Subsystem)
	case LengthInconsistency:
		return fmt.Sprintf("length inconsistency for %s/%s: got %d bytes, expect %d",
			e.Subsystem, e.Part, e.Length, e.ExpectedLength)
	case ChecksumMismatch:
		return fmt.Sprintf("checksum mismatch for %s/%s: stored %d, computed %d",
			e.Subsystem, e.Part, e.Stored, e.Computed)
	}
	return e.Kind.String()
}

// Is matches any ParsingError of the same kind, so errors.Is works
// with the Err* values below.
func (e *ParsingError) Is(target error) bool {
	t, ok := target.(*ParsingError)
	return ok && t.Kind == e.Kind
}

var (
	// ErrZeroLengthSlice matches empty input.
	ErrZeroLengthSlice error = &ParsingError{Kind: ZeroLengthSlice}
	// ErrInvalidSubsystem matches an unknown subsystem byte.
	ErrInvalidSubsystem error = &ParsingError{Kind: InvalidSubsystem}
	// ErrInvalidPart matches an unknown part byte.
	ErrInvalidPart error = &ParsingError{Kind: InvalidPart}
	// ErrNoEboxPart matches an ebox frame without part byte.
	ErrNoEboxPart error = &ParsingError{Kind: NoEboxPart}
	// ErrLengthInconsistency matches a frame of wrong length.
	ErrLengthInconsistency error = &ParsingError{Kind: LengthInconsistency}
	// ErrChecksumMismatch matches a frame whose checksum is wrong.
	ErrChecksumMismatch error = &ParsingError{Kind: ChecksumMismatch}

	// ErrNilMessage indicates a nil Message passed to Encode.
	ErrNilMessage = errors.New("nil message")
)

// InvariantError indicates the encoder produced a frame its own
// decoder rejects or decodes into a different message. It never
// unwraps into a ParsingError.
type InvariantError struct {
	Message Message
	Frame   []byte
	// Cause is the decode error, nil when the frame decoded into a
	// different message.
	Cause error
}

// Error implements error.
func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encoder invariant violated: %v encoded as [% x] fails to decode: %v",
			e.Message, e.Frame, e.Cause)
	}
	return fmt.Sprintf("encoder invariant violated: %v encoded as [% x] decodes differently",
		e.Message, e.Frame)
}
