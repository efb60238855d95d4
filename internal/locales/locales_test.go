package locales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/internal/locales"
	"github.com/dmitrymomot/brkit/pkg/i18n"
)

func TestLocalesCoverSameKeys(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(locales.FS, "."))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "pt-BR"}, tr.SupportedLanguages())

	keys := []string{
		"error.bad_request",
		"error.malformed_path",
		"error.not_found",
		"error.rate_limited",
		"error.request_too_large",
		"error.unknown_kind",
		"error.unsupported_media_type",
		"error.validation_failed",
		"validation.required",
		"validation.max_length",
		"validation.rg",
		"validation.phone",
		"validation.password",
		"validation.full_name",
		"validation.date",
		"validation.email",
		"validation.cep",
	}
	for _, prefix := range []string{"cpf", "cnpj", "tax_id"} {
		for _, reason := range []string{"malformed_length", "non_digit_character", "degenerate_sequence", "check_digit_mismatch"} {
			keys = append(keys, "validation."+prefix+"."+reason)
		}
	}

	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: missing %s", lang, key)
		}
	}
}
