// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services and the commerce client read them
// without importing net/http middleware packages.
//
//	requestID := requestcontext.RequestID(ctx)
//	token := requestcontext.AuthToken(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithLocale(ctx, "ko")
package requestcontext

import (
	"context"
	"sync"
	"time"
)

type (
	sessionIDKey     struct{}
	authTokenKey     struct{}
	localeKey        struct{}
	deviceClassKey   struct{}
	clientIPKey      struct{}
	userAgentKey     struct{}
	requestIDKey     struct{}
	requestTimeKey   struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeySessionID   = sessionIDKey{}
	ContextKeyAuthToken   = authTokenKey{}
	ContextKeyLocale      = localeKey{}
	ContextKeyDeviceClass = deviceClassKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// -----------------------------------------------------------------------------
// Session and engine credentials
// -----------------------------------------------------------------------------

// SessionID returns the storefront session id, or empty.
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeySessionID).(string); ok {
		return v
	}
	return ""
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// AuthTokenBox holds the commerce engine bearer token for one request. The
// engine may issue a new token mid-request (first cart mutation, login), and
// later engine calls in the same request must use it.
type AuthTokenBox struct {
	mu      sync.Mutex
	token   string
	changed bool
}

// NewAuthTokenBox returns a box seeded with the session's stored token.
func NewAuthTokenBox(token string) *AuthTokenBox {
	return &AuthTokenBox{token: token}
}

func (b *AuthTokenBox) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

// Changed reports whether the token was replaced or cleared since creation.
func (b *AuthTokenBox) Changed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.changed
}

func (b *AuthTokenBox) set(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token != token {
		b.token = token
		b.changed = true
	}
}

// WithAuthTokenBox binds a token box to the context.
func WithAuthTokenBox(ctx context.Context, box *AuthTokenBox) context.Context {
	return context.WithValue(ctx, ContextKeyAuthToken, box)
}

// WithAuthToken binds a fresh box holding token.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return WithAuthTokenBox(ctx, NewAuthTokenBox(token))
}

// AuthToken returns the commerce engine bearer token bound to the request.
func AuthToken(ctx context.Context) string {
	if box, ok := ctx.Value(ContextKeyAuthToken).(*AuthTokenBox); ok && box != nil {
		return box.Token()
	}
	return ""
}

// ReportAuthToken records a token issued by the engine. Empty tokens are
// ignored; outside a session-bound request it is a no-op.
func ReportAuthToken(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if box, ok := ctx.Value(ContextKeyAuthToken).(*AuthTokenBox); ok && box != nil {
		box.set(token)
	}
}

// ClearAuthToken drops the token after logout.
func ClearAuthToken(ctx context.Context) {
	if box, ok := ctx.Value(ContextKeyAuthToken).(*AuthTokenBox); ok && box != nil {
		box.set("")
	}
}

// -----------------------------------------------------------------------------
// Locale and device
// -----------------------------------------------------------------------------

// Locale returns the resolved storefront locale, or empty.
func Locale(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyLocale).(string); ok {
		return v
	}
	return ""
}

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, locale)
}

// DeviceClass returns "mobile", "tablet", "desktop" or "bot"; empty when unknown.
func DeviceClass(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyDeviceClass).(string); ok {
		return v
	}
	return ""
}

func WithDeviceClass(ctx context.Context, class string) context.Context {
	return context.WithValue(ctx, ContextKeyDeviceClass, class)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent)
// -----------------------------------------------------------------------------

func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	return ctx
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now returns the request-scoped time, falling back to time.Now() outside
// HTTP requests (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
