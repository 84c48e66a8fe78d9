package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryProvider is an in-process backend. Expired entries are dropped
// lazily on read and by DeleteByPattern.
type MemoryProvider struct {
	items sync.Map
	now   func() time.Time
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{now: time.Now}
}

func (m *MemoryProvider) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.items.Load(key)
	if !ok {
		return nil, ErrMiss
	}
	entry := v.(memoryEntry)
	if entry.expired(m.now()) {
		m.items.CompareAndDelete(key, v)
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (m *MemoryProvider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.items.Store(key, entry)
	return nil
}

func (m *MemoryProvider) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *MemoryProvider) DeleteByPattern(_ context.Context, pattern string) error {
	re, err := compileGlob(pattern)
	if err != nil {
		return err
	}
	now := m.now()
	m.items.Range(func(k, v any) bool {
		key := k.(string)
		if re.MatchString(key) || v.(memoryEntry).expired(now) {
			m.items.Delete(key)
		}
		return true
	})
	return nil
}

func (m *MemoryProvider) Close() error {
	m.items.Clear()
	return nil
}
