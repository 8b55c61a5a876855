package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/ratelimit/models"
	"storefront/internal/session"
	"storefront/pkg/platform/middleware/request"
	"storefront/pkg/requestcontext"
)

type routeFunc func(r chi.Router)

func (f routeFunc) Register(r chi.Router) { f(r) }

type countingLimiter struct {
	classes []models.EndpointClass
}

func (c *countingLimiter) RateLimit(class models.EndpointClass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.classes = append(c.classes, class)
			next.ServeHTTP(w, r)
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthz(t *testing.T) {
	router := NewRouter(Config{Logger: discardLogger()}, Handlers{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(request.HeaderRequestID))
}

func TestReadyz(t *testing.T) {
	up := Check{Name: "commerce", Probe: func(context.Context) error { return nil }}
	down := Check{Name: "redis", Probe: func(context.Context) error { return errors.New("connection refused") }}

	t.Run("all up", func(t *testing.T) {
		router := NewRouter(Config{Logger: discardLogger(), Checks: []Check{up}}, Handlers{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready","checks":{"commerce":"up"}}`, rec.Body.String())
	})

	t.Run("one down", func(t *testing.T) {
		router := NewRouter(Config{Logger: discardLogger(), Checks: []Check{up, down}}, Handlers{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"not_ready","checks":{"commerce":"up","redis":"down"}}`, rec.Body.String())
	})
}

func TestAPIRoutes(t *testing.T) {
	limiter := &countingLimiter{}
	var seenIP string
	cart := routeFunc(func(r chi.Router) {
		r.Get("/cart", func(w http.ResponseWriter, r *http.Request) {
			seenIP = requestcontext.ClientIP(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})
	catalog := routeFunc(func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	router := NewRouter(Config{Logger: discardLogger(), RateLimiter: limiter}, Handlers{Cart: cart, Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", seenIP)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []models.EndpointClass{models.ClassCart}, limiter.classes)
}

func TestFlash(t *testing.T) {
	sess := session.NewForTest(session.Record{ID: "sess-1"})
	sess.AddFlash(session.FlashSuccess, "Coupon applied")
	withSession := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
	router := NewRouter(Config{Logger: discardLogger(), Sessions: withSession}, Handlers{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flash", nil))
	assert.JSONEq(t, `{"messages":[{"kind":"success","message":"Coupon applied"}]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/flash", nil))
	assert.JSONEq(t, `{"messages":[]}`, rec.Body.String())
}
