package validator

import "github.com/dmitrymomot/brkit/pkg/fieldcheck"

func fieldRule(field string, ok func(string) bool, value, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return ok(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidRG validates a state identity card number.
func ValidRG(field, value string) Rule {
	return fieldRule(field, fieldcheck.RG, value,
		"must have 7 to 11 letters or digits, including at least one digit",
		"validation.rg")
}

// ValidPhoneBR validates a phone number with area code.
func ValidPhoneBR(field, value string) Rule {
	return fieldRule(field, fieldcheck.Phone, value,
		"must be a phone number with area code, e.g. (48) 2775-8157",
		"validation.phone")
}

// ValidPassword enforces the strong password policy of fieldcheck.Password.
func ValidPassword(field, value string) Rule {
	return fieldRule(field, fieldcheck.Password, value,
		"must contain an uppercase letter, a digit and one of @#._- and no other symbols",
		"validation.password")
}

// ValidFullName requires a first name of at least three letters followed by
// at least one more name.
func ValidFullName(field, value string) Rule {
	return fieldRule(field, fieldcheck.FullName, value,
		"must be a full name",
		"validation.full_name")
}

// ValidDate validates a YYYY-MM-DD calendar date.
func ValidDate(field, value string) Rule {
	return fieldRule(field, fieldcheck.Date, value,
		"must be a valid date in YYYY-MM-DD format",
		"validation.date")
}

// ValidEmail accepts a bare address with a dotted domain, no display name.
func ValidEmail(field, value string) Rule {
	return fieldRule(field, fieldcheck.Email, value,
		"must be a valid email address",
		"validation.email")
}

// ValidCEP validates a postal code in 00000-000 form.
func ValidCEP(field, value string) Rule {
	return fieldRule(field, fieldcheck.CEP, value,
		"must be a postal code in 00000-000 format",
		"validation.cep")
}
