// Package i18n resolves the visitor's locale and formats engine money values.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"storefront/internal/session"
)

// QueryParam overrides the locale for the request and persists it.
const QueryParam = "lng"

// Source records where a resolved locale came from.
type Source string

const (
	SourceQuery   Source = "query"
	SourceSession Source = "session"
	SourceHeader  Source = "accept-language"
	SourceDefault Source = "default"
)

// Resolver picks one of the configured locales for a request.
type Resolver struct {
	supported []string
	tags      []language.Tag
	matcher   language.Matcher
	fallback  string
}

// NewResolver validates the locale list. defaultLocale must be one of supported.
func NewResolver(supported []string, defaultLocale string) (*Resolver, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("at least one supported locale is required")
	}
	r := &Resolver{}
	found := false
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", s, err)
		}
		code := strings.ToLower(s)
		r.supported = append(r.supported, code)
		r.tags = append(r.tags, tag)
		if code == strings.ToLower(defaultLocale) {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	r.fallback = strings.ToLower(defaultLocale)
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// Supported returns the configured locale codes.
func (r *Resolver) Supported() []string {
	return append([]string(nil), r.supported...)
}

func (r *Resolver) Default() string {
	return r.fallback
}

// IsSupported reports whether locale is one of the configured codes.
func (r *Resolver) IsSupported(locale string) bool {
	_, ok := r.normalize(locale)
	return ok
}

func (r *Resolver) normalize(locale string) (string, bool) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	for _, s := range r.supported {
		if s == locale {
			return s, true
		}
	}
	return "", false
}

// Resolve applies the precedence: lng query parameter, session locale,
// Accept-Language, default.
func (r *Resolver) Resolve(req *http.Request, sess *session.Session) (string, Source) {
	if lng, ok := r.normalize(req.URL.Query().Get(QueryParam)); ok {
		return lng, SourceQuery
	}
	if sess != nil {
		if stored, ok := r.normalize(sess.Locale()); ok {
			return stored, SourceSession
		}
	}
	if header := req.Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			if _, idx, conf := r.matcher.Match(tags...); conf != language.No {
				return r.supported[idx], SourceHeader
			}
		}
	}
	return r.fallback, SourceDefault
}

// Tag returns the language tag for a supported locale, or the default's.
func (r *Resolver) Tag(locale string) language.Tag {
	if code, ok := r.normalize(locale); ok {
		for i, s := range r.supported {
			if s == code {
				return r.tags[i]
			}
		}
	}
	for i, s := range r.supported {
		if s == r.fallback {
			return r.tags[i]
		}
	}
	return language.English
}
