package bucket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 10
	testWindow = time.Minute
)

type InMemoryBucketStoreSuite struct {
	suite.Suite
	store *InMemoryBucketStore
	now   time.Time
	ctx   context.Context
}

func TestInMemoryBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBucketStoreSuite))
}

func (s *InMemoryBucketStoreSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewInMemoryBucketStore(WithClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func (s *InMemoryBucketStoreSuite) fill(key string, n int) {
	for range n {
		_, err := s.store.Allow(s.ctx, key, testLimit, testWindow)
		s.Require().NoError(err)
	}
}

func (s *InMemoryBucketStoreSuite) TestAllow() {
	s.Run("first request allowed", func() {
		result, err := s.store.Allow(s.ctx, "auth:first", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit, result.Limit)
		s.Equal(testLimit-1, result.Remaining)
		s.Equal(s.now.Add(testWindow), result.ResetAt)
	})

	s.Run("requests up to limit allowed", func() {
		s.fill("auth:limit", testLimit-1)
		result, err := s.store.Allow(s.ctx, "auth:limit", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(0, result.Remaining)
	})

	s.Run("request over limit denied with retry hint", func() {
		s.fill("auth:over", testLimit)
		s.now = s.now.Add(15 * time.Second)
		result, err := s.store.Allow(s.ctx, "auth:over", testLimit, testWindow)
		s.Require().NoError(err)
		s.False(result.Allowed)
		s.Equal(0, result.Remaining)
		s.Equal(45, result.RetryAfter)
	})
}

func (s *InMemoryBucketStoreSuite) TestWindowSlides() {
	s.fill("auth:slide", testLimit/2)
	s.now = s.now.Add(30 * time.Second)
	s.fill("auth:slide", testLimit/2)

	result, err := s.store.Allow(s.ctx, "auth:slide", testLimit, testWindow)
	s.Require().NoError(err)
	s.False(result.Allowed)

	// the first half expires; the second half still counts
	s.now = s.now.Add(31 * time.Second)
	result, err = s.store.Allow(s.ctx, "auth:slide", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(testLimit/2-1, result.Remaining)
}

func (s *InMemoryBucketStoreSuite) TestKeysAreIndependent() {
	s.fill("auth:203.0.113.7", testLimit)

	result, err := s.store.Allow(s.ctx, "auth:198.51.100.2", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryBucketStoreSuite) TestReset() {
	s.fill("auth:reset", testLimit)
	s.Require().NoError(s.store.Reset(s.ctx, "auth:reset"))

	result, err := s.store.Allow(s.ctx, "auth:reset", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(testLimit-1, result.Remaining)
}

func (s *InMemoryBucketStoreSuite) TestSweep() {
	s.fill("auth:old", 1)
	s.now = s.now.Add(testWindow / 2)
	s.fill("auth:new", 1)
	s.now = s.now.Add(testWindow/2 + time.Second)

	s.Equal(1, s.store.Sweep())
	s.Len(s.store.buckets, 1)
}

func (s *InMemoryBucketStoreSuite) TestConcurrent() {
	limit := 100
	key := "auth:concurrent"
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for range 200 {
		wg.Go(func() {
			result, err := s.store.Allow(s.ctx, key, limit, testWindow)
			s.NoError(err)
			if err == nil && result.Allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		})
	}

	wg.Wait()
	s.Equal(limit, allowedCount)
}
