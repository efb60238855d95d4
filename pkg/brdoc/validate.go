package brdoc

import "unicode/utf8"

// ValidateCPF reports whether raw is a valid CPF. Dots and dashes are
// ignored, so "335.516.700-21" and "33551670021" are equivalent.
func ValidateCPF(raw string) bool {
	return CheckCPF(raw) == nil
}

// ValidateCNPJ reports whether raw is a valid CNPJ. Dots, dashes and slashes
// are ignored.
func ValidateCNPJ(raw string) bool {
	return CheckCNPJ(raw) == nil
}

// Validate reports whether raw is a valid identifier of the given kind.
func Validate(kind Kind, raw string) bool {
	return Check(kind, raw) == nil
}

// CheckCPF is the diagnostic variant of ValidateCPF.
func CheckCPF(raw string) error {
	return Check(KindCPF, raw)
}

// CheckCNPJ is the diagnostic variant of ValidateCNPJ.
func CheckCNPJ(raw string) error {
	return Check(KindCNPJ, raw)
}

// Check validates raw as an identifier of the given kind and returns nil when
// it is valid. Otherwise the first failing step decides the error, in this
// order: ErrMalformedLength, ErrNonDigitCharacter, ErrDegenerateSequence,
// ErrCheckDigitMismatch.
func Check(kind Kind, raw string) error {
	s, ok := kind.Mode().scheme()
	if !ok {
		return ErrUnknownKind
	}

	normalized := Normalize(kind, raw)
	if utf8.RuneCountInString(normalized) != kind.Len() {
		return ErrMalformedLength
	}

	digits, err := parseDigits(normalized)
	if err != nil {
		return err
	}

	if repeated(digits) {
		return ErrDegenerateSequence
	}

	return s.verify(digits)
}
