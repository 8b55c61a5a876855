package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "storefront/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "redis down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["error_description"]
		assert.False(t, ok, "internal errors must not expose their description")
	})

	t.Run("validation error includes description and reason", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.WithReason(dErrors.CodeValidation, "COUPON_CODE_INVALID_ERROR", "coupon code is not valid"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_error", body["error"])
		assert.Equal(t, "coupon code is not valid", body["error_description"])
		assert.Equal(t, "COUPON_CODE_INVALID_ERROR", body["reason"])
	})

	t.Run("foreign errors become internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, io.ErrUnexpectedEOF)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r *quantityRequest) Validate() error {
	if r.Quantity < 1 {
		return dErrors.New(dErrors.CodeValidation, "quantity must be positive")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("valid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"quantity":2}`))
		req, ok := DecodeAndPrepare[quantityRequest](w, r, logger, context.Background(), "req-1")
		require.True(t, ok)
		assert.Equal(t, 2, req.Quantity)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		_, ok := DecodeAndPrepare[quantityRequest](w, r, logger, context.Background(), "req-2")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})

	t.Run("validation failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":0}`))
		_, ok := DecodeAndPrepare[quantityRequest](w, r, logger, context.Background(), "req-3")
		assert.False(t, ok)
		assert.Contains(t, w.Body.String(), "validation_error")
	})
}
