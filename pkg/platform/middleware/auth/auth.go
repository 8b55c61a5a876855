// Package auth guards routes that need a signed-in customer. The storefront
// never validates engine tokens itself; it only refuses to forward requests
// that carry none, and the engine rejects tokens that do not belong to a
// customer.
package auth

import (
	"log/slog"
	"net/http"

	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// RequireAuth answers 401 when the session holds no engine auth token.
func RequireAuth(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if requestcontext.AuthToken(ctx) != "" {
				next.ServeHTTP(w, r)
				return
			}
			logger.InfoContext(ctx, "unauthorized access - no session token",
				"request_id", requestcontext.RequestID(ctx),
				"path", r.URL.Path,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "sign in to continue"))
		})
	}
}
