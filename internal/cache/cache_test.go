package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](10)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3, s.HitRate(), 1e-9)
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 1, calls)
}

func TestCache_Eviction(t *testing.T) {
	var batches [][2]int
	c := New[int, int](4, OnEvict(func(evicted, remaining int) {
		batches = append(batches, [2]int{evicted, remaining})
	}))

	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	_, _ = c.Get(0)
	c.Set(4, 4)

	require.Equal(t, [][2]int{{2, 3}}, batches)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, uint64(2), c.Stats().Evictions)

	_, ok := c.Get(0)
	assert.True(t, ok, "recently used entry survives")
	_, ok = c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(4)
	assert.True(t, ok)
}

func TestCache_Unlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	assert.Equal(t, 100, c.Len())
	assert.Zero(t, c.Stats().Evictions)
	assert.Zero(t, c.Stats().Capacity)
}

func TestCache_Clear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	_, _ = c.Get("a")
	c.Clear()

	assert.Zero(t, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Hits, "counters survive Clear")
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.Equal(t, i*2, c.GetOrCreate(i, func() int { return i * 2 }))
			}
		}()
	}
	wg.Wait()

	s := c.Stats()
	assert.LessOrEqual(t, s.Len, 64)
	assert.Equal(t, uint64(1600), s.Hits+s.Misses)
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int {
			return i
		})
	}
}
