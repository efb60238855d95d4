package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
)

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare digits", input: "33551670021", expected: "335.516.700-21"},
		{name: "already formatted", input: "335.516.700-21", expected: "335.516.700-21"},
		{name: "odd separators", input: "335 516/700.21", expected: "335.516.700-21"},
		{name: "too short is preserved", input: "12345", expected: "12345"},
		{name: "too long is preserved", input: "335516700211", expected: "335516700211"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FormatCPF(tt.input))
		})
	}
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "62.193.755/0001-07", sanitizer.FormatCNPJ("62193755000107"))
	assert.Equal(t, "62.193.755/0001-07", sanitizer.FormatCNPJ("62.193.755/0001-07"))
	assert.Equal(t, "6219375500010", sanitizer.FormatCNPJ("6219375500010"))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "88108-167", sanitizer.FormatCEP("88108167"))
	assert.Equal(t, "88108-167", sanitizer.FormatCEP("88.108-167"))
	assert.Equal(t, "8810816", sanitizer.FormatCEP("8810816"))
}

func TestFormatPhoneBR(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"4827758157", "(48) 2775-8157"},
		{"(48) 2775-8157", "(48) 2775-8157"},
		{"11991234567", "(11) 99123-4567"},
		{"48 99123 4567", "(48) 99123-4567"},
		{"123", "123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizer.FormatPhoneBR(tt.input), "input %q", tt.input)
	}
}

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "***.***.***-21", sanitizer.MaskCPF("335.516.700-21"))
	assert.Equal(t, "*****", sanitizer.MaskCPF("12345"))
	assert.Equal(t, "", sanitizer.MaskCPF(""))
}

func TestMaskCNPJ(t *testing.T) {
	assert.Equal(t, "**.***.***/0001-07", sanitizer.MaskCNPJ("62.193.755/0001-07"))
	assert.Equal(t, "***", sanitizer.MaskCNPJ("1/2-3"))
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "ab****gh", sanitizer.MaskString("abcdefgh", 2))
	assert.Equal(t, "****", sanitizer.MaskString("abcd", 2))
	assert.Equal(t, "ã***ç", sanitizer.MaskString("ãbcdç", 1))
	assert.Equal(t, "*****", sanitizer.MaskString("abcde", -1))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "a b", sanitizer.Trim("  a b \n"))
	assert.Equal(t, "João da Silva", sanitizer.NormalizeWhitespace("  João \t da\n\nSilva  "))
	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x07c"))
	assert.Equal(t, "a\tb", sanitizer.RemoveControlChars("a\tb"))
	assert.Equal(t, "33551670021", sanitizer.RemoveChars("335.516.700-21", ".-"))
	assert.Equal(t, "33551670021", sanitizer.KeepDigits("CPF: 335.516.700-21"))
	assert.Equal(t, "", sanitizer.KeepDigits("３３５"))
}

func TestApplyAndCompose(t *testing.T) {
	digits := sanitizer.Compose(sanitizer.Trim, sanitizer.KeepDigits)
	assert.Equal(t, "33551670021", digits(" 335.516.700-21 "))

	upper := sanitizer.Apply("  ana  ", sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "ANA", upper)

	assert.Equal(t, "Nome de teste", sanitizer.Input(" Nome\x00  de\tteste "))
	assert.Equal(t, "value", sanitizer.Apply("value"))
}
