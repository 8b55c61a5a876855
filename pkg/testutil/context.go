package testutil

import (
	"context"
	"net/http"

	"storefront/internal/session"
	"storefront/pkg/requestcontext"
)

// WithSession binds a detached session built from rec to the request, along
// with its id and engine token. It simulates the session middleware.
func WithSession(req *http.Request, rec session.Record) (*http.Request, *session.Session) {
	sess := session.NewForTest(rec)
	ctx := session.WithSession(req.Context(), sess)
	ctx = requestcontext.WithSessionID(ctx, rec.ID)
	ctx = requestcontext.WithAuthToken(ctx, rec.AuthToken)
	return req.WithContext(ctx), sess
}

// WithLocale sets the resolved locale on the request context.
func WithLocale(req *http.Request, locale string) *http.Request {
	return req.WithContext(requestcontext.WithLocale(req.Context(), locale))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), key, value))
}
