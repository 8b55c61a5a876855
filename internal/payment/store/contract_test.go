package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/payment"
	"storefront/pkg/platform/sentinel"
)

// runStoreContract exercises the ledger behaviour every implementation shares.
func runStoreContract(t *testing.T, newStore func(t *testing.T) payment.Store) {
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	pending := func(id string) *payment.Attempt {
		return &payment.Attempt{
			GatewayOrderID: id,
			OrderCode:      "ORD-" + id,
			SessionID:      "sess-1",
			Amount:         15000,
			Currency:       "KRW",
			Method:         "toss-payments",
			Status:         payment.StatusPending,
			CouponCodes:    []string{"WELCOME"},
			CreatedAt:      created,
			UpdatedAt:      created,
		}
	}

	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))

		got, err := s.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "ORD-a1", got.OrderCode)
		assert.Equal(t, int64(15000), got.Amount)
		assert.Equal(t, payment.StatusPending, got.Status)
		assert.Equal(t, []string{"WELCOME"}, got.CouponCodes)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		assert.ErrorIs(t, s.Create(ctx, pending("a1")), sentinel.ErrConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.ErrorIs(t, s.MarkConfirmed(ctx, "missing", "pk", created), sentinel.ErrNotFound)
		assert.ErrorIs(t, s.MarkFailed(ctx, "missing", "X", "x", created), sentinel.ErrNotFound)
	})

	t.Run("confirm once", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.MarkConfirmed(ctx, "a1", "pk-1", created.Add(time.Minute)))

		got, err := s.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusConfirmed, got.Status)
		assert.Equal(t, "pk-1", got.PaymentKey)

		assert.ErrorIs(t, s.MarkConfirmed(ctx, "a1", "pk-1", created), sentinel.ErrInvalidState)
		assert.ErrorIs(t, s.MarkFailed(ctx, "a1", "X", "x", created), sentinel.ErrInvalidState)
	})

	t.Run("payment key is bound to one attempt", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.Create(ctx, pending("a2")))
		require.NoError(t, s.MarkConfirmed(ctx, "a1", "pk-1", created))

		assert.ErrorIs(t, s.MarkConfirmed(ctx, "a2", "pk-1", created), sentinel.ErrAlreadyUsed)
	})

	t.Run("claim is taken once", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.Claim(ctx, "a1", "pk-1", created))
		assert.ErrorIs(t, s.Claim(ctx, "a1", "pk-1", created), sentinel.ErrInvalidState)

		got, err := s.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusProcessing, got.Status)
		assert.Equal(t, "pk-1", got.PaymentKey)

		require.NoError(t, s.MarkConfirmed(ctx, "a1", "pk-1", created.Add(time.Minute)))
		got, err = s.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusConfirmed, got.Status)
	})

	t.Run("claimed attempt can fail", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.Claim(ctx, "a1", "pk-1", created))
		require.NoError(t, s.MarkFailed(ctx, "a1", "REJECT_CARD_PAYMENT", "declined", created))
		assert.ErrorIs(t, s.Claim(ctx, "a1", "pk-1", created), sentinel.ErrInvalidState)
	})

	t.Run("claim rejects a key bound elsewhere", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.Create(ctx, pending("a2")))
		require.NoError(t, s.Claim(ctx, "a1", "pk-1", created))

		assert.ErrorIs(t, s.Claim(ctx, "a2", "pk-1", created), sentinel.ErrAlreadyUsed)
		assert.ErrorIs(t, s.Claim(ctx, "missing", "pk-2", created), sentinel.ErrNotFound)
	})

	t.Run("fail records reason", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Create(ctx, pending("a1")))
		require.NoError(t, s.MarkFailed(ctx, "a1", "PAY_PROCESS_CANCELED", "cancelled by user", created))

		got, err := s.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusFailed, got.Status)
		assert.Equal(t, "PAY_PROCESS_CANCELED", got.FailureCode)
		assert.Equal(t, "cancelled by user", got.FailureMessage)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(*testing.T) payment.Store { return NewMemory() })
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemory()
	a := &payment.Attempt{GatewayOrderID: "a1", Status: payment.StatusPending, CouponCodes: []string{"X"}}
	require.NoError(t, s.Create(context.Background(), a))
	a.CouponCodes[0] = "mutated"

	got, err := s.Get(context.Background(), "a1")
	require.NoError(t, err)
	got.CouponCodes[0] = "also mutated"

	again, err := s.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, again.CouponCodes)
}
