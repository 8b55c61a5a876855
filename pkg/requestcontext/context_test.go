package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, SessionID(ctx))
	assert.Empty(t, AuthToken(ctx))
	assert.Empty(t, Locale(ctx))
	assert.Empty(t, DeviceClass(ctx))
	assert.Empty(t, RequestID(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
}

func TestAuthTokenBox(t *testing.T) {
	box := NewAuthTokenBox("stored")
	ctx := WithAuthTokenBox(context.Background(), box)
	assert.Equal(t, "stored", AuthToken(ctx))
	assert.False(t, box.Changed())

	ReportAuthToken(ctx, "")
	assert.False(t, box.Changed(), "empty tokens are ignored")

	ReportAuthToken(ctx, "stored")
	assert.False(t, box.Changed(), "same token is not a change")

	ReportAuthToken(ctx, "issued")
	assert.Equal(t, "issued", AuthToken(ctx))
	assert.True(t, box.Changed())

	ClearAuthToken(ctx)
	assert.Empty(t, AuthToken(ctx))
}

func TestReportAuthTokenWithoutBox(t *testing.T) {
	assert.NotPanics(t, func() {
		ReportAuthToken(context.Background(), "tok")
		ClearAuthToken(context.Background())
	})
}

func TestWithTime(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, fixed, Now(WithTime(context.Background(), fixed)))
}
