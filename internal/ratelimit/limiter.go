package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-referral/internal/adapter"
	"github.com/feral-file/ff-referral/internal/logger"
)

const (
	// maxLocalKeys bounds the per-key local limiters kept in memory
	maxLocalKeys = 10000
	// redisRetryAfter is how long the limiter stays local after a Redis failure
	redisRetryAfter = 10 * time.Second
)

// Config holds the request limits of one limiter
type Config struct {
	// RequestsPerMinute is the sustained rate allowed per key
	RequestsPerMinute int
	// Burst is the number of requests allowed at once, defaults to RequestsPerMinute
	Burst int
	// KeyPrefix namespaces the Redis keys
	KeyPrefix string
	// EnableLocalFallback keeps limiting in process while Redis is unreachable
	EnableLocalFallback bool
}

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request of a key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/rate_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request of the key
	Allow(ctx context.Context, key string) (*Decision, error)

	// Close releases the Redis connection
	Close() error
}

type limiter struct {
	config      Config
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	redisAvailable atomic.Bool
	redisFailedAt  atomic.Int64

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter creates a limiter backed by Redis when rc is set, in process otherwise
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ff:referral:limiter:"
	}

	l := &limiter{
		config: cfg,
		redis:  rc,
		clock:  clock,
		local:  make(map[string]*rate.Limiter),
	}

	if rc == nil {
		logger.Info("Rate limiter running in process", zap.Int("requests_per_minute", cfg.RequestsPerMinute))
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		l.markRedisFailed()
	} else {
		l.redisAvailable.Store(true)
	}
	l.distributed = rc.NewRateLimiter()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)
	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (*Decision, error) {
	if l.useRedis() {
		decision, err := l.allowDistributed(ctx, key)
		if err == nil {
			return decision, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.markRedisFailed()
		if !l.config.EnableLocalFallback {
			return nil, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	} else if l.distributed != nil && !l.config.EnableLocalFallback {
		return nil, fmt.Errorf("redis rate limiter unavailable")
	}

	return l.allowLocal(key), nil
}

// useRedis reports whether the distributed limiter should be tried, probing again after a failure
func (l *limiter) useRedis() bool {
	if l.distributed == nil {
		return false
	}
	if l.redisAvailable.Load() {
		return true
	}
	failedAt := time.Unix(0, l.redisFailedAt.Load())
	return l.clock.Since(failedAt) >= redisRetryAfter
}

func (l *limiter) markRedisFailed() {
	l.redisAvailable.Store(false)
	l.redisFailedAt.Store(l.clock.Now().UnixNano())
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (*Decision, error) {
	limit := redis_rate.Limit{
		Rate:   l.config.RequestsPerMinute,
		Burst:  l.config.Burst,
		Period: time.Minute,
	}
	res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, limit)
	if err != nil {
		return nil, err
	}

	if !l.redisAvailable.Swap(true) {
		logger.InfoCtx(ctx, "Redis rate limiter restored")
	}

	return &Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: max(res.RetryAfter, 0),
	}, nil
}

func (l *limiter) allowLocal(key string) *Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Limit(float64(l.config.RequestsPerMinute)/60), l.config.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	reservation := lim.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return &Decision{Allowed: false, RetryAfter: delay}
	}
	return &Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

func (l *limiter) Close() error {
	if l.redis == nil {
		return nil
	}
	return l.redis.Close()
}
