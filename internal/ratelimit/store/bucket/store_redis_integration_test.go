//go:build integration

package bucket_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"storefront/internal/ratelimit/store/bucket"
	"storefront/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *bucket.RedisBucketStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = bucket.NewRedisBucketStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestAllowUpToLimit() {
	ctx := context.Background()
	for i := range 3 {
		result, err := s.store.Allow(ctx, "auth:203.0.113.7", 3, time.Minute)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(2-i, result.Remaining)
	}

	result, err := s.store.Allow(ctx, "auth:203.0.113.7", 3, time.Minute)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Positive(result.RetryAfter)
	s.LessOrEqual(result.RetryAfter, 60)
}

func (s *RedisStoreSuite) TestReset() {
	ctx := context.Background()
	for range 2 {
		_, err := s.store.Allow(ctx, "auth:reset", 2, time.Minute)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.store.Reset(ctx, "auth:reset"))

	result, err := s.store.Allow(ctx, "auth:reset", 2, time.Minute)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

// TestConcurrentAllow verifies the script admits exactly limit requests
// when many arrive at once.
func (s *RedisStoreSuite) TestConcurrentAllow() {
	ctx := context.Background()
	const limit = 10
	var allowed atomic.Int32
	var wg sync.WaitGroup

	for range 50 {
		wg.Go(func() {
			result, err := s.store.Allow(ctx, "auth:concurrent", limit, time.Minute)
			if err == nil && result.Allowed {
				allowed.Add(1)
			}
		})
	}
	wg.Wait()

	s.Equal(int32(limit), allowed.Load())
}
