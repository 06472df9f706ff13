package middleware

import (
	"net/http"

	"github.com/diewo77/go-assets/i18n"
)

// Prefs resolves the request language (query > cookie > Accept-Language >
// fallback) and stores it with i18n.WithLang. A query-provided language is
// persisted in a cookie for ~30 days.
func Prefs(fallback string) func(http.Handler) http.Handler {
	if !i18n.Supported(fallback) {
		fallback = i18n.DefaultLang
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if c, err := r.Cookie("lang"); err == nil && i18n.Supported(c.Value) {
				lang = c.Value
			}
			if ql := r.URL.Query().Get("lang"); i18n.Supported(ql) {
				lang = ql
				http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
			}
			if lang == "" && r.Header.Get("Accept-Language") != "" {
				if d := i18n.DetectLanguage(r.Header.Get("Accept-Language")); i18n.Supported(d) {
					lang = d
				}
			}
			if lang == "" {
				lang = fallback
			}
			next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
		})
	}
}

// LangFrom returns the language chosen by Prefs.
func LangFrom(r *http.Request) string {
	return i18n.LangFromContext(r.Context())
}
