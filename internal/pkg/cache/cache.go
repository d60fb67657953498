// Package cache provides the keyed TTL caches used to avoid redundant
// recomputation: an in-process map cache for lookup data and a redis-backed
// store for generated DTR sheets. Both share the same staleness rule.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Entry is a cached value with the time it was fetched.
type Entry struct {
	Data      interface{}
	FetchedAt time.Time
}

// IsStale reports whether an entry fetched at e.FetchedAt is older than ttl
// as of now. A non-positive ttl means entries never expire.
func IsStale(e Entry, ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(e.FetchedAt) >= ttl
}

// Key builds a cache key from its parts: Key("dtr", 42, 2024, 2) ->
// "dtr:42:2024:2".
func Key(parts ...interface{}) string {
	strs := make([]string, 0, len(parts))
	for _, p := range parts {
		strs = append(strs, fmt.Sprintf("%v", p))
	}
	return strings.Join(strs, ":")
}

// Memory is a process-local keyed cache with TTL check and explicit
// invalidation. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]Entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false when absent or stale.
func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || IsStale(entry, m.ttl, m.now()) {
		return nil, false
	}
	return entry.Data, true
}

// Set stores value under key, stamped with the current time.
func (m *Memory) Set(key string, value interface{}) {
	m.mu.Lock()
	m.entries[key] = Entry{Data: value, FetchedAt: m.now()}
	m.mu.Unlock()
}

// Invalidate drops the given keys. Used after mutations so the next read
// refetches.
func (m *Memory) Invalidate(keys ...string) {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}

// InvalidatePrefix drops every key beginning with prefix.
func (m *Memory) InvalidatePrefix(prefix string) {
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}

// Store is the redis-backed cache for values that should survive restarts and
// be shared across instances (generated DTR sheets). Values are stored as
// json; redis handles expiry.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached value under key into dest. Returns false on a
// miss. Redis being down is reported as a miss, not a failure: the caller can
// always recompute.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.rdb == nil {
		return false
	}

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}

	return true
}

// Set stores value under key with the store's TTL.
func (s *Store) Set(ctx context.Context, key string, value interface{}) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshaling cache value")
	}

	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "writing cache value")
	}

	return nil
}

// InvalidatePrefix removes every key matching prefix*.
func (s *Store) InvalidatePrefix(ctx context.Context, prefix string) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "deleting cache key")
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "scanning cache keys")
	}

	return nil
}
