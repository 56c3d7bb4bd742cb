package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemory(clock.Now)

	require.NoError(t, c.Set(ctx, "zone:city:a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "zone:forever", []byte("2"), 0))

	val, ok, err := c.Get(ctx, "zone:city:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), val)

	clock.now = clock.now.Add(time.Minute)

	_, ok, err = c.Get(ctx, "zone:city:a")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire exactly at its ttl")

	_, ok, _ = c.Get(ctx, "zone:forever")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(nil)

	for _, k := range []string{"zone:city:a", "zone:city:b", "zone:home_country:a", "other"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), time.Hour))
	}

	require.NoError(t, c.Invalidate(ctx, "other"))
	_, ok, _ := c.Get(ctx, "other")
	assert.False(t, ok)

	require.NoError(t, c.InvalidatePrefix(ctx, "zone:city:"))
	_, ok, _ = c.Get(ctx, "zone:city:a")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "zone:city:b")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "zone:home_country:a")
	assert.True(t, ok)
}

func TestMemorySetCopiesValue(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(nil)

	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	val, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), val)
}
