package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	fresh := Entry{FetchedAt: now.Add(-5 * time.Minute)}
	assert.False(t, IsStale(fresh, ttl, now))

	old := Entry{FetchedAt: now.Add(-15 * time.Minute)}
	assert.True(t, IsStale(old, ttl, now))

	// Boundary: exactly ttl old counts as stale.
	exact := Entry{FetchedAt: now.Add(-ttl)}
	assert.True(t, IsStale(exact, ttl, now))

	// Non-positive ttl disables expiry.
	assert.False(t, IsStale(old, 0, now))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "dtr:7:2024:2:whole", Key("dtr", 7, 2024, 2, "whole"))
}

func TestMemoryGetSetInvalidate(t *testing.T) {
	m := NewMemory(time.Minute)

	_, ok := m.Get("offices")
	assert.False(t, ok)

	m.Set("offices", []string{"HQ"})
	got, ok := m.Get("offices")
	assert.True(t, ok)
	assert.Equal(t, []string{"HQ"}, got)

	m.Invalidate("offices")
	_, ok = m.Get("offices")
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute)

	current := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m.Set("positions", 3)
	_, ok := m.Get("positions")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = m.Get("positions")
	assert.False(t, ok)
}

func TestMemoryInvalidatePrefix(t *testing.T) {
	m := NewMemory(time.Minute)

	m.Set("dtr:1:2024:2", "a")
	m.Set("dtr:1:2024:3", "b")
	m.Set("dtr:2:2024:2", "c")

	m.InvalidatePrefix("dtr:1:")

	_, ok := m.Get("dtr:1:2024:2")
	assert.False(t, ok)
	_, ok = m.Get("dtr:1:2024:3")
	assert.False(t, ok)
	_, ok = m.Get("dtr:2:2024:2")
	assert.True(t, ok)
}
