package brdoc

// Mode selects a check-digit scheme.
type Mode uint8

const (
	// ModeCPF weights descend from 10 (first digit) or 11 (second digit) to 2;
	// the digit is (sum*10) mod 11 with 10 mapped to 0.
	ModeCPF Mode = iota + 1
	// ModeCNPJ weights run 5..2 then 9..2 (first digit) or 6..2 then 9..2
	// (second digit); the digit is 0 when sum mod 11 < 2, else 11 - (sum mod 11).
	ModeCNPJ
)

// Weight tables as published by Receita Federal. Do not derive them in loops.
var (
	cpfFirstWeights  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// scheme bundles the weight tables of a mode with its remainder arithmetic.
type scheme struct {
	first     []int
	second    []int
	remainder func(sum int) int
	digit     func(rem int) int
}

var (
	cpfScheme = scheme{
		first:  cpfFirstWeights,
		second: cpfSecondWeights,
		remainder: func(sum int) int {
			return (sum * 10) % 11
		},
		digit: func(rem int) int {
			if rem == 10 {
				return 0
			}
			return rem
		},
	}

	cnpjScheme = scheme{
		first:  cnpjFirstWeights,
		second: cnpjSecondWeights,
		remainder: func(sum int) int {
			return sum % 11
		},
		digit: func(rem int) int {
			if rem < 2 {
				return 0
			}
			return 11 - rem
		},
	}
)

func (m Mode) scheme() (scheme, bool) {
	switch m {
	case ModeCPF:
		return cpfScheme, true
	case ModeCNPJ:
		return cnpjScheme, true
	default:
		return scheme{}, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCPF:
		return "cpf"
	case ModeCNPJ:
		return "cnpj"
	default:
		return "unknown"
	}
}

// weightedSum multiplies each digit by the weight at the same position.
// digits must be at least as long as weights.
func weightedSum(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum
}

// checkDigit computes a single verification digit over the prefix of digits
// covered by weights.
func (s scheme) checkDigit(digits, weights []int) int {
	return s.digit(s.remainder(weightedSum(digits, weights)))
}

// verify compares both computed verification digits with the two trailing
// digits. digits must already have the full length for the mode.
func (s scheme) verify(digits []int) error {
	n := len(s.first)
	if s.checkDigit(digits, s.first) != digits[n] {
		return ErrCheckDigitMismatch
	}
	if s.checkDigit(digits, s.second) != digits[n+1] {
		return ErrCheckDigitMismatch
	}
	return nil
}

// CheckDigits computes the two verification digits for base, which must hold
// exactly the leading 9 (CPF) or 12 (CNPJ) digits. Separators are not
// accepted here.
func CheckDigits(mode Mode, base string) (first, second int, err error) {
	s, ok := mode.scheme()
	if !ok {
		return 0, 0, ErrUnknownKind
	}
	digits, err := parseDigits(base)
	if err != nil {
		return 0, 0, err
	}
	if len(digits) != len(s.first) {
		return 0, 0, ErrMalformedLength
	}

	first = s.checkDigit(digits, s.first)
	digits = append(digits, first)
	second = s.checkDigit(digits, s.second)
	return first, second, nil
}
