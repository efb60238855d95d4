package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator resolves translation keys for a set of languages.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tr := range translations {
		if lang == "" || tr == nil {
			return nil, fmt.Errorf("invalid translations for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the sorted language codes with translations,
// the default language first when it has translations.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	if _, ok := t.translations[t.defaultLang]; ok {
		langs = append([]string{t.defaultLang}, langs...)
	}
	return langs
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	m, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(m, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from args
// given as key, value, key, value, ... An odd trailing argument is ignored.
//
// Unsupported languages fall back to the default language. When the key is
// missing it is returned as is (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	m, ok := t.translations[lang]
	if !ok {
		m, ok = t.translations[t.defaultLang]
	}

	var val any
	if ok {
		val, ok = lookup(m, key)
	}

	s, isString := val.(string)
	if !ok || !isString {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		if t.fallbackToKey {
			return substitute(key, args)
		}
		return ""
	}

	return substitute(s, args)
}

// lookup traverses m following a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
