package brdoc

import "errors"

// Rejection reasons. Each one is terminal: the input is invalid and retrying
// cannot change the outcome.
var (
	// ErrMalformedLength is returned when the normalized input does not have
	// exactly the number of digits the identifier kind requires.
	ErrMalformedLength = errors.New("malformed identifier length")

	// ErrNonDigitCharacter is returned when a position that must hold a decimal
	// digit holds anything else.
	ErrNonDigitCharacter = errors.New("identifier contains a non-digit character")

	// ErrDegenerateSequence is returned when every digit of the identifier is
	// the same.
	ErrDegenerateSequence = errors.New("identifier is a repeated-digit sequence")

	// ErrCheckDigitMismatch is returned when a computed verification digit
	// differs from the one in the input.
	ErrCheckDigitMismatch = errors.New("identifier check digit mismatch")

	// ErrUnknownKind is returned for identifier kinds this package does not know.
	ErrUnknownKind = errors.New("unknown identifier kind")
)

// Reason codes returned by Reason.
const (
	ReasonMalformedLength    = "malformed_length"
	ReasonNonDigitCharacter  = "non_digit_character"
	ReasonDegenerateSequence = "degenerate_sequence"
	ReasonCheckDigitMismatch = "check_digit_mismatch"
	ReasonUnknownKind        = "unknown_kind"
)

// Reason maps an error returned by Check to a stable machine-readable code.
// It returns an empty string for nil and "invalid" for errors from elsewhere.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedLength):
		return ReasonMalformedLength
	case errors.Is(err, ErrNonDigitCharacter):
		return ReasonNonDigitCharacter
	case errors.Is(err, ErrDegenerateSequence):
		return ReasonDegenerateSequence
	case errors.Is(err, ErrCheckDigitMismatch):
		return ReasonCheckDigitMismatch
	case errors.Is(err, ErrUnknownKind):
		return ReasonUnknownKind
	default:
		return "invalid"
	}
}
