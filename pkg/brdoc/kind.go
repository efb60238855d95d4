package brdoc

import "strings"

// Kind identifies a taxpayer identifier format.
type Kind uint8

const (
	// KindCPF is the 11-digit individual taxpayer identifier.
	KindCPF Kind = iota + 1
	// KindCNPJ is the 14-digit business taxpayer identifier.
	KindCNPJ
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

func (k Kind) String() string {
	switch k {
	case KindCPF:
		return "cpf"
	case KindCNPJ:
		return "cnpj"
	default:
		return "unknown"
	}
}

// Len returns the number of digits a normalized identifier of this kind has.
// It returns 0 for unknown kinds.
func (k Kind) Len() int {
	switch k {
	case KindCPF:
		return cpfLength
	case KindCNPJ:
		return cnpjLength
	default:
		return 0
	}
}

// Separators returns the formatting characters Normalize strips for this kind.
func (k Kind) Separators() string {
	switch k {
	case KindCPF:
		return ".-"
	case KindCNPJ:
		return ".-/"
	default:
		return ""
	}
}

// Mode returns the checksum scheme used by this kind.
func (k Kind) Mode() Mode {
	switch k {
	case KindCPF:
		return ModeCPF
	case KindCNPJ:
		return ModeCNPJ
	default:
		return 0
	}
}

// ParseKind parses a kind name such as "cpf" or "CNPJ".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpf":
		return KindCPF, nil
	case "cnpj":
		return KindCNPJ, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Detect guesses the kind of raw from its digit count once every CNPJ
// separator is removed. The second result is false when neither length fits.
func Detect(raw string) (Kind, bool) {
	switch len([]rune(Normalize(KindCNPJ, raw))) {
	case cpfLength:
		return KindCPF, true
	case cnpjLength:
		return KindCNPJ, true
	default:
		return 0, false
	}
}
