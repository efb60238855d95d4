package validator

import (
	"fmt"

	"github.com/dmitrymomot/brkit/pkg/brdoc"
)

// ValidCPF validates an individual taxpayer identifier. The translation key
// carries the rejection reason, e.g. "validation.cpf.check_digit_mismatch".
func ValidCPF(field, value string) Rule {
	return documentRule(field, "cpf", brdoc.CheckCPF(value), brdoc.KindCPF.Len())
}

// ValidCNPJ validates a business taxpayer identifier.
func ValidCNPJ(field, value string) Rule {
	return documentRule(field, "cnpj", brdoc.CheckCNPJ(value), brdoc.KindCNPJ.Len())
}

// ValidTaxID accepts either a CPF or a CNPJ, picking the kind from the digit
// count.
func ValidTaxID(field, value string) Rule {
	kind, ok := brdoc.Detect(value)
	if !ok {
		return documentRule(field, "tax_id", brdoc.ErrMalformedLength, 0)
	}
	return documentRule(field, "tax_id", brdoc.Check(kind, value), kind.Len())
}

func documentRule(field, prefix string, err error, length int) Rule {
	reason := brdoc.Reason(err)
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        documentMessage(prefix, reason, length),
			TranslationKey: "validation." + prefix + "." + reason,
			TranslationValues: map[string]any{
				"field":  field,
				"length": length,
			},
		},
	}
}

func documentMessage(prefix, reason string, length int) string {
	switch reason {
	case brdoc.ReasonMalformedLength:
		if length == 0 {
			return "must have 11 (CPF) or 14 (CNPJ) digits"
		}
		return fmt.Sprintf("must have %d digits", length)
	case brdoc.ReasonNonDigitCharacter:
		return "must contain only digits and separators"
	case brdoc.ReasonDegenerateSequence:
		return "cannot be a sequence of repeated digits"
	case brdoc.ReasonCheckDigitMismatch:
		return "check digits do not match"
	default:
		return "must be a valid " + prefix
	}
}
