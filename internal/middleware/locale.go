package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey is the context key for the resolved UI locale ("en" or "bn").
var LocaleKey = localeContextKey{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

var supportedLocales = []language.Tag{
	language.English,
	language.Bengali,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Locale resolves the caller's locale from the X-Locale header, the
// Accept-Language header, or a GeoIP country hint (BD defaults to Bangla),
// falling back to defaultLocale.
func Locale(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale, lookup)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string, lookup CountryLookup) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		return matchLocale(v)
	}
	if v := r.Header.Get("Accept-Language"); v != "" {
		return matchLocale(v)
	}
	if lookup != nil {
		if ip := clientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && strings.EqualFold(country, "BD") {
				return "bn"
			}
		}
	}
	if fallback != "" {
		return matchLocale(fallback)
	}
	return "en"
}

func matchLocale(accept string) string {
	tag, _ := language.MatchStrings(localeMatcher, accept)
	base, _ := tag.Base()
	if base.String() == "bn" {
		return "bn"
	}
	return "en"
}

// LocaleFromContext returns the resolved locale, defaulting to English.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "en"
}
