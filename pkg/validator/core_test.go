package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cpf", Message: "check digits do not match"})
		errs.Add(validator.ValidationError{Field: "email", Message: "must be a valid email address"})

		assert.Equal(t, "validation failed: cpf: check digits do not match; email: must be a valid email address", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "cpf", Message: "invalid"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("cpf"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("email"))
	assert.Equal(t, []string{"password", "cpf"}, errs.Fields())
}

type stubTranslator map[string]string

func (s stubTranslator) T(lang, key string, args ...string) string {
	tmpl, ok := s[lang+":"+key]
	if !ok {
		return key
	}
	for i := 0; i+1 < len(args); i += 2 {
		tmpl = strings.ReplaceAll(tmpl, "%{"+args[i]+"}", args[i+1])
	}
	return tmpl
}

func TestValidationErrors_Messages(t *testing.T) {
	err := validator.Apply(
		validator.ValidCPF("cpf", "123.456.789-00"),
		validator.MaxLen("name", "Ana Maria", 3),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)

	t.Run("without translator", func(t *testing.T) {
		msgs := verrs.Messages(nil, "pt-BR")
		assert.Equal(t, []string{"check digits do not match"}, msgs["cpf"])
		assert.Equal(t, []string{"must be at most 3 characters long"}, msgs["name"])
	})

	t.Run("with translator", func(t *testing.T) {
		tr := stubTranslator{
			"pt-BR:validation.cpf.check_digit_mismatch": "CPF inválido",
			"pt-BR:validation.max_length":               "máximo de %{max} caracteres",
		}
		msgs := verrs.Messages(tr, "pt-BR")
		assert.Equal(t, []string{"CPF inválido"}, msgs["cpf"])
		assert.Equal(t, []string{"máximo de 3 caracteres"}, msgs["name"])
	})

	t.Run("missing translation falls back to message", func(t *testing.T) {
		msgs := verrs.Messages(stubTranslator{}, "en")
		assert.Equal(t, []string{"check digits do not match"}, msgs["cpf"])
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ana"),
			validator.ValidCPF("cpf", "335.516.700-21"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidCPF("cpf", "111.111.111-11"),
			validator.ValidCEP("cep", "88108-167"),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "cpf"}, verrs.Fields())
	})
}

func TestWhen(t *testing.T) {
	rules := validator.When(false, validator.Required("a", ""))
	assert.Empty(t, rules)
	assert.NoError(t, validator.Apply(rules...))

	rules = validator.When(true, validator.Required("a", ""))
	assert.Len(t, rules, 1)
	assert.Error(t, validator.Apply(rules...))
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("form: %w", validator.Apply(validator.Required("a", "")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("a"))

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.True(t, validator.IsValidationError(wrapped))
}

func TestStringRules(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.Required("f", "x")))
	assert.Error(t, validator.Apply(validator.Required("f", "")))
	assert.NoError(t, validator.Apply(validator.MaxLen("f", "ção", 3)))
	assert.Error(t, validator.Apply(validator.MaxLen("f", "abcd", 3)))

	verrs := validator.ExtractValidationErrors(validator.Apply(validator.MaxLen("f", "abcd", 3)))
	require.NotNil(t, verrs)
	assert.Equal(t, "validation.max_length", verrs[0].TranslationKey)
	assert.Equal(t, 3, verrs[0].TranslationValues["max"])
}
