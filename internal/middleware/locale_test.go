package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func resolveLocale(t *testing.T, configure func(*http.Request), lookup CountryLookup) string {
	t.Helper()
	var got string
	handler := Locale("en", lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))
	req := httptest.NewRequest("GET", "/", nil)
	if configure != nil {
		configure(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLocaleFromXLocaleHeader(t *testing.T) {
	got := resolveLocale(t, func(r *http.Request) {
		r.Header.Set("X-Locale", "bn")
	}, nil)
	if got != "bn" {
		t.Fatalf("locale = %q, want bn", got)
	}
}

func TestLocaleFromAcceptLanguage(t *testing.T) {
	got := resolveLocale(t, func(r *http.Request) {
		r.Header.Set("Accept-Language", "bn-BD,bn;q=0.9,en;q=0.8")
	}, nil)
	if got != "bn" {
		t.Fatalf("locale = %q, want bn", got)
	}
}

func TestLocaleFromGeoIPCountry(t *testing.T) {
	lookup := func(ip string) (string, error) { return "BD", nil }
	got := resolveLocale(t, func(r *http.Request) {
		r.RemoteAddr = "203.0.113.9:443"
	}, lookup)
	if got != "bn" {
		t.Fatalf("locale = %q, want bn", got)
	}
}

func TestLocaleDefaultsToEnglish(t *testing.T) {
	if got := resolveLocale(t, nil, nil); got != "en" {
		t.Fatalf("locale = %q, want en", got)
	}
	got := resolveLocale(t, func(r *http.Request) {
		r.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	}, nil)
	if got != "en" {
		t.Fatalf("unsupported language should fall back to en, got %q", got)
	}
}
