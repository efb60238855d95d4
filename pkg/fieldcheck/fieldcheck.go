// Package fieldcheck is a bank of independent predicates for common
// Brazilian form fields. Each function takes the raw user input and reports
// whether it is acceptable; none of them share state or depend on each other.
package fieldcheck

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const nameLetters = `a-zA-ZáàâãéèêíïóôõöúçñÁÀÂÃÉÈÍÏÓÔÕÖÚÇÑ`

var (
	rgRegex          = regexp.MustCompile(`^[A-Za-z0-9]{7,11}$`)
	phoneRegex       = regexp.MustCompile(`^\(?[1-9]{2}\)? ?(?:[2-8]|9[1-9])[0-9]{3}-?[0-9]{4}$`)
	passwordRegex    = regexp.MustCompile(`^[a-zA-Z0-9@#._-]+$`)
	letterRegex      = regexp.MustCompile(`[a-zA-Z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	upperRegex       = regexp.MustCompile(`[A-Z]`)
	passwordSymRegex = regexp.MustCompile(`[@#._-]`)
	fullNameRegex    = regexp.MustCompile(`^[` + nameLetters + `]{3,} ([` + nameLetters + ` ]+){2,}$`)
	cepRegex         = regexp.MustCompile(`^[0-9]{5}-[0-9]{3}$`)
)

// RG reports whether value looks like a state identity card number: 7 to 11
// letters or digits, at least one of them a digit, once dots and dashes are
// removed.
func RG(value string) bool {
	rg := strings.NewReplacer(".", "", "-", "").Replace(value)
	return rgRegex.MatchString(rg) && digitRegex.MatchString(rg)
}

// Phone reports whether value is a landline or mobile number with area code,
// e.g. "(48) 2775-8157", "48 99123-4567" or "4827758157".
func Phone(value string) bool {
	return phoneRegex.MatchString(value)
}

// Password reports whether value is a strong password: only letters, digits
// and @#._- are allowed, and it must contain a letter, a digit, an uppercase
// letter and one of those symbols.
func Password(value string) bool {
	return passwordRegex.MatchString(value) &&
		letterRegex.MatchString(value) &&
		digitRegex.MatchString(value) &&
		upperRegex.MatchString(value) &&
		passwordSymRegex.MatchString(value)
}

// FullName reports whether value is a first name of at least three letters
// followed by at least one more name.
func FullName(value string) bool {
	return fullNameRegex.MatchString(value)
}

// Date reports whether value in "YYYY-MM-DD" form names a real calendar day.
// Parts need not be zero-padded, so "2024-2-29" is accepted.
func Date(value string) bool {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return false
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if year < 1 || year > 32767 || month < 1 || month > 12 || day < 1 {
		return false
	}

	// time.Date normalizes overflowing days into the next month.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

// Email reports whether value is a bare e-mail address with a dotted domain.
// Display names ("Ana <ana@example.com>") are rejected.
func Email(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// CEP reports whether value is a postal code in the "00000-000" form.
func CEP(value string) bool {
	return cepRegex.MatchString(value)
}
