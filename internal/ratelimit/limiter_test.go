package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-referral/internal/mocks"
	"github.com/feral-file/ff-referral/internal/ratelimit"
)

var testNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func TestNewLimiter_RequiresRate(t *testing.T) {
	_, err := ratelimit.NewLimiter(ratelimit.Config{}, nil, nil)
	assert.Error(t, err)
}

func TestLimiter_Local(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: 60, Burst: 2}, nil, clock)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// Keys are limited independently
	d, err = l.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	assert.NoError(t, l.Close())
}

func TestLimiter_Distributed(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	rc := mocks.NewMockRedisClient(ctrl)
	distributed := mocks.NewMockRedisRateLimiter(ctrl)

	rc.EXPECT().Ping(gomock.Any()).Return(nil)
	rc.EXPECT().NewRateLimiter().Return(distributed)

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: 10, KeyPrefix: "test:"}, rc, clock)
	require.NoError(t, err)
	ctx := context.Background()

	distributed.EXPECT().Allow(ctx, "test:alice", redis_rate.Limit{Rate: 10, Burst: 10, Period: time.Minute}).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 9}, nil)
	d, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 9, d.Remaining)

	distributed.EXPECT().Allow(ctx, "test:alice", gomock.Any()).
		Return(&redis_rate.Result{Allowed: 0, RetryAfter: 3 * time.Second}, nil)
	d, err = l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 3*time.Second, d.RetryAfter)

	rc.EXPECT().Close().Return(nil)
	assert.NoError(t, l.Close())
}

func TestLimiter_FallsBackToLocalOnRedisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	rc := mocks.NewMockRedisClient(ctrl)
	distributed := mocks.NewMockRedisRateLimiter(ctrl)

	clock.EXPECT().Now().Return(testNow).AnyTimes()
	rc.EXPECT().Ping(gomock.Any()).Return(nil)
	rc.EXPECT().NewRateLimiter().Return(distributed)

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: 10, EnableLocalFallback: true}, rc, clock)
	require.NoError(t, err)
	ctx := context.Background()

	distributed.EXPECT().Allow(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	d, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Redis is skipped until the retry window passes
	clock.EXPECT().Since(gomock.Any()).Return(time.Second)
	d, err = l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	clock.EXPECT().Since(gomock.Any()).Return(time.Minute)
	distributed.EXPECT().Allow(ctx, gomock.Any(), gomock.Any()).Return(&redis_rate.Result{Allowed: 1}, nil)
	d, err = l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_RedisDownWithoutFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	rc := mocks.NewMockRedisClient(ctrl)
	rc.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	_, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: 10}, rc, mocks.NewMockClock(ctrl))
	assert.ErrorContains(t, err, "fallback disabled")
}
