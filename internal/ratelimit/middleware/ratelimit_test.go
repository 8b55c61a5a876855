package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/ratelimit/models"
	"storefront/internal/ratelimit/store/bucket"
	"storefront/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*models.RateLimitResult, error) {
	return nil, errors.New("redis: connection refused")
}

func newLimited(t *testing.T, store BucketStore, opts ...Option) http.Handler {
	t.Helper()
	m := New(store, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return m.RateLimit(models.ClassAuth)(ok)
}

func request(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/account/login", nil)
	req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, "test"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_HeadersAndExhaustion(t *testing.T) {
	h := newLimited(t, bucket.NewInMemoryBucketStore(),
		WithLimit(models.ClassAuth, models.Limit{Requests: 2, Window: time.Minute}))

	rec := request(h, "203.0.113.7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	request(h, "203.0.113.7")
	rec = request(h, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"error":"rate_limit_exceeded"`)

	rec = request(h, "198.51.100.2")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	h := newLimited(t, failingStore{})

	rec := request(h, "203.0.113.7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_Disabled(t *testing.T) {
	h := newLimited(t, bucket.NewInMemoryBucketStore(),
		WithDisabled(true),
		WithLimit(models.ClassAuth, models.Limit{Requests: 1, Window: time.Minute}))

	for range 3 {
		assert.Equal(t, http.StatusOK, request(h, "203.0.113.7").Code)
	}
}
