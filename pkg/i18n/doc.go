// Package i18n translates validation messages.
//
// Translations are nested maps keyed by language code and loaded once through
// a TranslationAdapter (an in-memory map or YAML files in an fs.FS such as an
// embed.FS). Keys use dot notation ("validation.cpf.check_digit_mismatch")
// and messages may reference named parameters as "%{name}".
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(locales.FS, "."),
//	    i18n.WithDefaultLanguage("pt-BR"),
//	    i18n.WithLogger(log),
//	)
//	msg := tr.T("pt-BR", "validation.max_length", "max", "50")
//
// Language negotiation is delegated to golang.org/x/text/language: Match picks
// the best supported language for an Accept-Language header and Middleware
// stores the result in the request context, from which Locale reads it back.
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
