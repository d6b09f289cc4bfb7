package i18n

import (
	"context"
	"net/http"
)

// CookieName is the browser cookie that carries the interface language.
const CookieName = "lang"

type contextKey struct{}

// Middleware resolves the request language from the lang cookie, then the
// Accept-Language header, then fallback, and stores it in the request
// context.
func Middleware(fallback Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := FromRequest(r, fallback)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// FromRequest resolves the language of r without consulting its context.
func FromRequest(r *http.Request, fallback Lang) Lang {
	if c, err := r.Cookie(CookieName); err == nil {
		if lang, ok := ParseLang(c.Value); ok {
			return lang
		}
	}
	return Negotiate(r.Header.Get("Accept-Language"), fallback)
}

func WithLang(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the language stored by Middleware, or English.
func FromContext(ctx context.Context) Lang {
	if lang, ok := ctx.Value(contextKey{}).(Lang); ok {
		return lang
	}
	return English
}

// SetCookie persists lang for a year.
func SetCookie(w http.ResponseWriter, lang Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
