package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength caps the Accept-Language header size considered.
const maxAcceptLanguageLength = 4096

// Match returns the supported language that best satisfies an
// Accept-Language header, or def when nothing matches.
//
// Regional variants fall back to their base language and vice versa
// ("pt" selects "pt-BR", "en-GB" selects "en").
func Match(header string, supported []string, def string) string {
	if header == "" || len(supported) == 0 {
		return def
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return def
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return def
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return def
	}
	return names[idx]
}
