package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/config"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/metrics"
)

var (
	// ErrProxyClosed is returned for requests submitted after Close
	ErrProxyClosed = errors.New("rate limit proxy is closed")
	// ErrUnknownProvider is returned when a request names a provider with no configured limit
	ErrUnknownProvider = errors.New("provider not configured")
)

// RequestFunc performs the upstream call once a token has been acquired
type RequestFunc func(ctx context.Context) (interface{}, error)

type requestResult struct {
	value interface{}
	err   error
}

// Proxy throttles upstream calls per provider across all replicas sharing a Redis
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request blocks until a token for providerName is available, then runs fn
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close drains in-flight requests and releases Redis
	Close() error
}

type proxy struct {
	config         config.RateLimiterConfig
	pool           pond.ResultPool[*requestResult]
	limiters       map[string]*providerLimiter
	redis          adapter.RedisClient // nil in local-only mode
	clock          adapter.Clock
	closed         atomic.Bool
	closeOnce      sync.Once
	redisAvailable atomic.Bool
	stopHealth     chan struct{}
}

type providerLimiter struct {
	name               string
	config             config.RateLimitConfig
	distributedLimiter adapter.RedisRateLimiter
	localLimiter       *rate.Limiter
	preFilterLimiter   *rate.Limiter
}

// NewProxy creates a rate limiting proxy. A nil RedisClient runs every provider on an
// in-process limiter at its full configured rate.
func NewProxy(cfg config.RateLimiterConfig, rc adapter.RedisClient, clock adapter.Clock) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	localOnly := rc == nil
	redisAvailable := !localOnly
	var distributedLimiter adapter.RedisRateLimiter

	if !localOnly {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rc.Ping(ctx).Err(); err != nil {
			redisAvailable = false
			if !cfg.EnableLocalFallback {
				return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
			}
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		}
		distributedLimiter = rc.NewRateLimiter()
	} else {
		// a single process owns the whole quota
		cfg.EnableLocalFallback = true
		cfg.LocalFallbackMultiplier = 1.0
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, providerConfig := range cfg.Providers {
		localRate := max(float64(providerConfig.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)
		limiters[name] = &providerLimiter{
			name:               name,
			config:             providerConfig,
			distributedLimiter: distributedLimiter,
			localLimiter:       rate.NewLimiter(rate.Limit(localRate), providerConfig.Burst),
			// Pre-filter at the provider rate to spare Redis round trips
			preFilterLimiter: rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.Burst),
		}
	}

	p := &proxy{
		config:     cfg,
		pool:       pond.NewResultPool[*requestResult](cfg.MaxWorkers, pond.WithQueueSize(cfg.MaxQueueSize)),
		limiters:   limiters,
		redis:      rc,
		clock:      clock,
		stopHealth: make(chan struct{}),
	}
	p.redisAvailable.Store(redisAvailable)

	if !localOnly {
		go p.monitorRedisHealth()
	}

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(cfg.Providers)),
		zap.Bool("local_only", localOnly),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return p, nil
}

// Request runs fn through p with a typed result. A nil proxy calls fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return v, nil
}

// Request blocks until a token is acquired and fn completes, ctx is canceled, or the
// provider's max queue time elapses
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerName)
	}

	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	defer cancel()

	task := p.pool.Submit(func() *requestResult {
		value, err := p.executeWithRateLimit(queueCtx, limiter, fn)
		return &requestResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		metrics.Default().UpstreamError(providerName)
		return nil, result.err
	}
	return result.value, nil
}

func (p *proxy) executeWithRateLimit(ctx context.Context, limiter *providerLimiter, fn RequestFunc) (interface{}, error) {
	if err := p.acquireToken(ctx, limiter); err != nil {
		return nil, err
	}
	// Request timeouts belong to the HTTP and RPC adapters
	return fn(ctx)
}

// acquireToken blocks until a token is available from the distributed limiter, or
// from the local limiter while Redis is down
func (p *proxy) acquireToken(ctx context.Context, limiter *providerLimiter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p.redisAvailable.Load() {
			allowed, retryAfter, err := p.tryDistributedLimit(ctx, limiter)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return ctx.Err()
				}
				p.redisAvailable.Store(false)
				if !p.config.EnableLocalFallback {
					return fmt.Errorf("redis rate limiter unavailable: %w", err)
				}
				logger.Warn("Redis rate limiter error, falling back to local",
					zap.String("provider", limiter.name),
					zap.Error(err),
				)
			case allowed:
				return nil
			case retryAfter > 0:
				// 50-150% jitter so waiting replicas do not retry in lockstep
				jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-p.clock.After(jitter):
					continue
				}
			}
		}

		if !p.redisAvailable.Load() && p.config.EnableLocalFallback {
			return limiter.localLimiter.Wait(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(100 * time.Millisecond):
		}
	}
}

// tryDistributedLimit returns (allowed, retryAfter, err)
func (p *proxy) tryDistributedLimit(ctx context.Context, limiter *providerLimiter) (bool, time.Duration, error) {
	if limiter.distributedLimiter == nil {
		return false, 0, fmt.Errorf("distributed limiter not available")
	}

	if err := limiter.preFilterLimiter.Wait(ctx); err != nil {
		return false, 0, err
	}

	redisKey := p.config.RedisKeyPrefix + limiter.name
	res, err := limiter.distributedLimiter.Allow(ctx, redisKey, redis_rate.PerSecond(limiter.config.RequestsPerSecond))
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("provider", limiter.name),
			zap.Duration("retry_after", res.RetryAfter),
			zap.Int("remaining", res.Remaining),
		)
		return false, res.RetryAfter, nil
	}
	return true, 0, nil
}

func (p *proxy) monitorRedisHealth() {
	ticker := p.clock.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopHealth:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := p.redis.Ping(ctx).Err()
		cancel()

		available := err == nil
		was := p.redisAvailable.Swap(available)
		if !was && available {
			logger.Info("Redis connection restored")
		}
	}
}

// Close waits for in-flight requests and closes the Redis connection
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.stopHealth)

		logger.Info("Shutting down rate limit proxy")

		if errTasks := p.pool.Stop().Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		if p.redis != nil {
			if closeErr := p.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and fills defaults in place
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	providers := make(map[string]config.RateLimitConfig, len(cfg.Providers))
	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if provider.Burst <= 0 {
			provider.Burst = provider.RequestsPerSecond
		}
		if provider.MaxQueueTime <= 0 {
			provider.MaxQueueTime = time.Minute
		}
		providers[name] = provider
	}
	cfg.Providers = providers

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "royalty-checker:limiter:"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 10
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 10000
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	return nil
}
