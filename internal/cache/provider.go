package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexivanou/cityportal-api/internal/config"
	"go.uber.org/zap"
)

// ErrMiss is returned by Provider.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Provider is a byte-oriented cache backend.
type Provider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPattern removes every key matching a glob such as "pages:*".
	DeleteByPattern(ctx context.Context, pattern string) error
	Close() error
}

// NewProvider builds the backend selected by cfg. Only a malformed Redis
// URL is an error; an unreachable server is logged and the provider is
// returned anyway, so reads pass through until Redis comes back.
func NewProvider(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.Type {
	case config.CacheTypeRedis:
		p, err := NewRedisProvider(cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if err := p.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable, cache degrades to pass-through", zap.Error(err))
		}
		return p, nil
	case config.CacheTypeNone:
		return NopProvider{}, nil
	default:
		return NewMemoryProvider(), nil
	}
}

// Key joins parts with ':' into a cache key. Empty parts are written as
// "-" so positional keys stay unambiguous.
func Key(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		v := fmt.Sprint(p)
		if v == "" {
			v = "-"
		}
		s[i] = v
	}
	return strings.Join(s, ":")
}

// NopProvider stores nothing; every Get misses.
type NopProvider struct{}

func (NopProvider) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (NopProvider) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopProvider) Delete(context.Context, string) error { return nil }

func (NopProvider) DeleteByPattern(context.Context, string) error { return nil }

func (NopProvider) Close() error { return nil }
