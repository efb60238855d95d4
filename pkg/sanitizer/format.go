package sanitizer

import "strings"

// FormatCPF renders 11 digits as "000.000.000-00". Separators already in the
// input are ignored; any other digit count returns the input unchanged.
func FormatCPF(cpf string) string {
	d := KeepDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders 14 digits as "00.000.000/0000-00".
func FormatCNPJ(cnpj string) string {
	d := KeepDigits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// FormatCEP renders 8 digits as "00000-000".
func FormatCEP(cep string) string {
	d := KeepDigits(cep)
	if len(d) != 8 {
		return cep
	}
	return d[0:5] + "-" + d[5:8]
}

// FormatPhoneBR renders 10-digit landlines as "(00) 0000-0000" and 11-digit
// mobiles as "(00) 00000-0000".
func FormatPhoneBR(phone string) string {
	d := KeepDigits(phone)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return phone
	}
}

// MaskCPF hides everything but the check digits: "***.***.***-21".
// Input that is not 11 digits is fully masked.
func MaskCPF(cpf string) string {
	d := KeepDigits(cpf)
	if len(d) != 11 {
		return strings.Repeat("*", len(d))
	}
	return "***.***.***-" + d[9:11]
}

// MaskCNPJ keeps the branch number and check digits, which are not personal:
// "**.***.***/0001-07".
func MaskCNPJ(cnpj string) string {
	d := KeepDigits(cnpj)
	if len(d) != 14 {
		return strings.Repeat("*", len(d))
	}
	return "**.***.***/" + d[8:12] + "-" + d[12:14]
}

// MaskString keeps visibleChars runes at both ends and masks the middle.
// Strings too short to keep anything hidden are masked entirely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	n := len(runes)
	if n <= visibleChars*2 {
		return strings.Repeat("*", n)
	}

	return string(runes[:visibleChars]) + strings.Repeat("*", n-visibleChars*2) + string(runes[n-visibleChars:])
}
