//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/commerce"
	"storefront/pkg/testutil/containers"
)

func TestRedis_RoundTripAndExpiry(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	c := NewRedis(rc.Client)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "en")
	require.NoError(t, err)
	assert.False(t, ok)

	want := []commerce.Collection{{ID: "2", Name: "Bags", Slug: "bags"}}
	require.NoError(t, c.Set(ctx, "en", want, time.Second))

	got, ok, err := c.Get(ctx, "en")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	assert.Eventually(t, func() bool {
		_, ok, _ := c.Get(ctx, "en")
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}
