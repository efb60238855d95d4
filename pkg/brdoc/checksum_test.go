package brdoc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightTables(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}, cpfFirstWeights)
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, cpfSecondWeights)
	assert.Equal(t, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}, cnpjFirstWeights)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}, cnpjSecondWeights)
	assert.Len(t, cpfSecondWeights, cpfLength-1)
	assert.Len(t, cnpjSecondWeights, cnpjLength-1)
}

func TestRemainderMapping(t *testing.T) {
	t.Parallel()

	t.Run("cpf maps 10 to 0", func(t *testing.T) {
		for rem := 0; rem <= 9; rem++ {
			assert.Equal(t, rem, cpfScheme.digit(rem))
		}
		assert.Equal(t, 0, cpfScheme.digit(10))
	})

	t.Run("cnpj maps below 2 to 0", func(t *testing.T) {
		assert.Equal(t, 0, cnpjScheme.digit(0))
		assert.Equal(t, 0, cnpjScheme.digit(1))
		for rem := 2; rem <= 10; rem++ {
			assert.Equal(t, 11-rem, cnpjScheme.digit(rem))
		}
	})

	t.Run("schemes agree on every sum", func(t *testing.T) {
		// (10*sum) mod 11 equals (11 - sum mod 11) mod 11, so both mappings
		// yield the same digit even though the weights differ.
		for sum := 0; sum < 500; sum++ {
			assert.Equal(t,
				cpfScheme.checkDigit([]int{1}, []int{sum}),
				cnpjScheme.checkDigit([]int{1}, []int{sum}),
				"sum %d", sum)
		}
	})
}

// TestSingleDigitMutation checks the error-detection property of both
// schemes: changing one summed digit always moves the raw mod-11 remainder of
// the first check, and the identifier is rejected whenever either recomputed
// check digit differs from the stored one. A mutation can only slip through
// when both mapped digits collide (10 and 0 for CPF, 0 and 1 for CNPJ).
func TestSingleDigitMutation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind  Kind
		bases []string
	}{
		{KindCPF, []string{"335516700", "529982247", "123456789", "987654321", "100000003", "246813579", "000071271"}},
		{KindCNPJ, []string{"621937550001", "112223330001", "123456780001", "987654320001", "100000000002"}},
	}

	for _, tc := range cases {
		s, ok := tc.kind.Mode().scheme()
		require.True(t, ok)

		for _, base := range tc.bases {
			first, second, err := CheckDigits(tc.kind.Mode(), base)
			require.NoError(t, err)
			full := base + strconv.Itoa(first) + strconv.Itoa(second)
			require.NoError(t, Check(tc.kind, full), "generated identifier must be valid: %s", full)

			original, err := parseDigits(full)
			require.NoError(t, err)
			originalRem := s.remainder(weightedSum(original, s.first))

			for pos := range len(base) {
				for d := 0; d <= 9; d++ {
					if d == original[pos] {
						continue
					}
					mutated := append([]int(nil), original...)
					mutated[pos] = d
					if repeated(mutated) {
						continue
					}

					rem := s.remainder(weightedSum(mutated, s.first))
					assert.NotEqual(t, originalRem, rem, "%s: remainder unchanged after mutating position %d to %d", full, pos, d)

					firstMoved := s.checkDigit(mutated, s.first) != first
					secondMoved := s.checkDigit(mutated, s.second) != second
					if firstMoved || secondMoved {
						assert.ErrorIs(t, s.verify(mutated), ErrCheckDigitMismatch, "%s: mutation at %d to %d accepted", full, pos, d)
						assert.False(t, Validate(tc.kind, digitsString(mutated)))
						continue
					}

					assert.Equal(t, s.digit(originalRem), s.digit(rem),
						"%s: undetected mutation at %d to %d must be a mapping collision", full, pos, d)
					assert.True(t, Validate(tc.kind, digitsString(mutated)))
				}
			}
		}
	}
}

// The CPF second-pass weight of the leading digit is 11, which vanishes mod
// 11, so a leading-digit change whose first remainder moves between 10 and 0
// leaves both check digits intact. Both numbers are valid by the published
// algorithm.
func TestCPFLeadingDigitCollision(t *testing.T) {
	t.Parallel()

	original, mutated := "00007127103", "10007127103"

	s, ok := ModeCPF.scheme()
	require.True(t, ok)
	a, err := parseDigits(original)
	require.NoError(t, err)
	b, err := parseDigits(mutated)
	require.NoError(t, err)

	assert.Equal(t, 10, s.remainder(weightedSum(a, s.first)))
	assert.Equal(t, 0, s.remainder(weightedSum(b, s.first)))
	assert.Equal(t, s.remainder(weightedSum(a, s.second)), s.remainder(weightedSum(b, s.second)))

	assert.True(t, ValidateCPF(original))
	assert.True(t, ValidateCPF(mutated))
}

func digitsString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
