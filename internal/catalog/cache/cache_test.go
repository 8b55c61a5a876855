package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/commerce"
)

func TestMemory_ExpiresPerLocale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "en", []commerce.Collection{{ID: "1", Name: "Shoes"}}, time.Minute))

	got, ok, err := m.Get(ctx, "en")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Shoes", got[0].Name)

	_, ok, _ = m.Get(ctx, "ko")
	assert.False(t, ok, "entries are per locale")

	now = now.Add(time.Minute)
	_, ok, _ = m.Get(ctx, "en")
	assert.False(t, ok, "entry expires at its ttl")
}
