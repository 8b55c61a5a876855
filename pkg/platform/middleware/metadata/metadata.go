package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"storefront/pkg/requestcontext"
)

// Device classes derived from the User-Agent.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceBot     = "bot"
)

// ClientMetadata extracts the client IP, User-Agent and device class from the
// request and stores them in the context. Apply it early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), ua)
		ctx = requestcontext.WithDeviceClass(ctx, DeviceClass(ua))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceClass classifies a User-Agent string. Empty agents count as desktop.
func DeviceClass(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return DeviceDesktop
	}
	parsed := useragent.New(ua)
	switch {
	case parsed.Bot():
		return DeviceBot
	case parsed.Mobile():
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// ClientIPFromRequest extracts the real client IP, honouring proxy headers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For is "client, proxy1, proxy2"; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" or "[::1]:port".
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
