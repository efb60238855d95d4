package i18n

import "net/http"

// LangQueryParam overrides the Accept-Language header when present.
const LangQueryParam = "lang"

// Middleware negotiates the request language against the translator's
// supported languages and stores it with SetLocale.
//
// An explicit "?lang=" value wins when it names a supported language.
func Middleware(tr *Translator) func(http.Handler) http.Handler {
	supported := tr.SupportedLanguages()
	def := tr.DefaultLanguage()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := r.URL.Query().Get(LangQueryParam); q != "" {
				lang = Match(q, supported, "")
			}
			if lang == "" {
				lang = Match(r.Header.Get("Accept-Language"), supported, def)
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
