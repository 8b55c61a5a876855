//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/platform/sentinel"
	"storefront/pkg/testutil/containers"
)

func TestRedisStore(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	require.NoError(t, rc.FlushAll(ctx))

	store := NewRedisStore(rc.Client)
	rec := Record{
		ID:        "sess-1",
		AuthToken: "engine-token",
		Locale:    "ko",
		Flash:     []Flash{{Kind: FlashInfo, Message: "hello"}},
		PendingPayment: &PendingPayment{
			OrderCode: "ORD1", GatewayOrderID: "gw-1", Amount: 15000, Method: "toss-payments",
		},
	}
	require.NoError(t, store.Save(ctx, rec, time.Minute))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "engine-token", got.AuthToken)
	assert.Equal(t, "ko", got.Locale)
	require.NotNil(t, got.PendingPayment)
	assert.Equal(t, int64(15000), got.PendingPayment.Amount)

	ttl, err := rc.Client.TTL(ctx, redisKeyPrefix+"sess-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
