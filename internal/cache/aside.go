package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alexivanou/cityportal-api/internal/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Aside is a best-effort cache-aside layer over a Provider. Backend
// failures are logged and counted but never returned: reads fall through
// to the loader and writes are skipped. A circuit breaker stops calling a
// failing backend until its timeout elapses.
type Aside struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	logger   *zap.Logger
	metrics  *metrics.Collector
}

// BreakerSettings configures the circuit breaker around the provider.
type BreakerSettings struct {
	Timeout          time.Duration
	MinRequests      uint32
	FailureThreshold float64
}

// DefaultBreakerSettings returns the settings used by the application.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Timeout:          30 * time.Second,
		MinRequests:      5,
		FailureThreshold: 0.5,
	}
}

// NewAside wraps provider. m may be nil.
func NewAside(provider Provider, logger *zap.Logger, m *metrics.Collector, bs BreakerSettings) *Aside {
	if bs.Timeout <= 0 {
		bs.Timeout = DefaultBreakerSettings().Timeout
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "cache",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bs.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= bs.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMiss)
		},
	})

	return &Aside{
		provider: provider,
		breaker:  cb,
		logger:   logger,
		metrics:  m,
	}
}

func (a *Aside) get(ctx context.Context, key string) ([]byte, error) {
	v, err := a.breaker.Execute(func() (any, error) {
		return a.provider.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (a *Aside) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := a.breaker.Execute(func() (any, error) {
		return nil, a.provider.Set(ctx, key, value, ttl)
	})
	return err
}

// GetOrCompute returns the cached value for key, or calls load, caches its
// result for ttl and returns it. Loader errors are returned unchanged and
// nothing is cached. A nil Aside always calls load.
func GetOrCompute[T any](ctx context.Context, a *Aside, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if a == nil {
		return load(ctx)
	}

	data, err := a.get(ctx, key)
	switch {
	case err == nil:
		var v T
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		decErr := dec.Decode(&v)
		if decErr == nil {
			a.metrics.CacheResult(metrics.CacheHit)
			return v, nil
		}
		a.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(decErr))
		a.metrics.CacheResult(metrics.CacheMiss)
	case errors.Is(err, ErrMiss):
		a.metrics.CacheResult(metrics.CacheMiss)
	default:
		a.metrics.CacheResult(metrics.CacheError)
		a.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	b, err := json.Marshal(v)
	if err != nil {
		a.logger.Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if err := a.set(ctx, key, b, ttl); err != nil {
		a.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// InvalidateByPrefix deletes every key matching pattern, e.g. "pages:*".
// Failures are logged, not returned.
func (a *Aside) InvalidateByPrefix(ctx context.Context, pattern string) {
	if a == nil {
		return
	}
	_, err := a.breaker.Execute(func() (any, error) {
		return nil, a.provider.DeleteByPattern(ctx, pattern)
	})
	a.metrics.Invalidation(err)
	if err != nil {
		a.logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

// Close releases the provider.
func (a *Aside) Close() error {
	if a == nil {
		return nil
	}
	return a.provider.Close()
}
