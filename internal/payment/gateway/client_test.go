package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "storefront/pkg/domain-errors"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, "test_sk", WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return c
}

func TestConfirm(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/confirm", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test_sk", user)
		assert.Empty(t, pass)
		assert.Equal(t, "pk-1", r.Header.Get("Idempotency-Key"))

		var body confirmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, confirmRequest{PaymentKey: "pk-1", OrderID: "o-1", Amount: 15000}, body)

		_, _ = w.Write([]byte(`{"paymentKey":"pk-1","orderId":"o-1","status":"DONE","method":"card","totalAmount":15000,"approvedAt":"2025-05-01T12:00:00+09:00"}`))
	})

	receipt, err := c.Confirm(context.Background(), "pk-1", "o-1", 15000)

	require.NoError(t, err)
	assert.Equal(t, "DONE", receipt.Status)
	assert.Equal(t, int64(15000), receipt.TotalAmount)
}

func TestConfirm_Rejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"REJECT_CARD_PAYMENT","message":"card limit exceeded"}`))
	})

	_, err := c.Confirm(context.Background(), "pk-1", "o-1", 15000)

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Equal(t, "REJECT_CARD_PAYMENT", dErrors.ReasonOf(err))
	assert.Equal(t, "card limit exceeded", dErrors.MessageOf(err))
}

func TestConfirm_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Confirm(context.Background(), "pk-1", "o-1", 15000)

	assert.True(t, dErrors.HasCode(err, dErrors.CodeUpstream))
}

func TestConfirm_Unreachable(t *testing.T) {
	c, err := New("http://127.0.0.1:1", "sk")
	require.NoError(t, err)

	_, err = c.Confirm(context.Background(), "pk-1", "o-1", 1)

	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func TestCancel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/pk-1/cancel", r.URL.Path)
		var body cancelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "order rejected", body.CancelReason)
		_, _ = w.Write([]byte(`{"status":"CANCELED"}`))
	})

	assert.NoError(t, c.Cancel(context.Background(), "pk-1", "order rejected"))
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/v1", "sk")
	assert.Error(t, err)
}
