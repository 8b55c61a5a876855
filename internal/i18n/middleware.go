package i18n

import (
	"log/slog"
	"net/http"

	"storefront/internal/session"
	"storefront/pkg/requestcontext"
)

// Middleware resolves the request locale and binds it to the context, where
// the commerce client picks it up as languageCode. A locale chosen through
// the lng query parameter is remembered in the session.
func Middleware(resolver *Resolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			locale, source := resolver.Resolve(r, sess)
			if source == SourceQuery && sess != nil && sess.Locale() != locale {
				sess.SetLocale(locale)
				if logger != nil {
					logger.DebugContext(r.Context(), "locale switched",
						"locale", locale,
						"request_id", requestcontext.RequestID(r.Context()),
					)
				}
			}
			w.Header().Set("Content-Language", locale)
			next.ServeHTTP(w, r.WithContext(requestcontext.WithLocale(r.Context(), locale)))
		})
	}
}
