package colorlit

import (
	"go.uber.org/zap"

	"github.com/gogpu/colorlit/internal/cache"
)

// parseKey identifies one parse: the same text can mean different colors
// under different notations.
type parseKey struct {
	kind Notation
	text string
}

// parseResult is a memoized parse outcome, failures included.
type parseResult struct {
	color Color
	err   error
}

// parseCache memoizes parse results. When the soft limit is exceeded the
// least recently used quarter is evicted.
type parseCache struct {
	entries *cache.Cache[parseKey, parseResult]
}

func newParseCache(softLimit int) *parseCache {
	return &parseCache{
		entries: cache.New[parseKey, parseResult](softLimit, cache.OnEvict(func(evicted, remaining int) {
			Logger().Debug("parse cache eviction", zap.Int("evicted", evicted), zap.Int("remaining", remaining))
		})),
	}
}

// getOrParse returns the cached result for (kind, text) or runs parse and
// stores its outcome. A literal is parsed once even when scans race on it.
func (c *parseCache) getOrParse(kind Notation, text string, parse func() (Color, error)) (Color, error) {
	r := c.entries.GetOrCreate(parseKey{kind: kind, text: text}, func() parseResult {
		col, err := parse()
		return parseResult{color: col, err: err}
	})
	return r.color, r.err
}

// CacheStats reports parse cache usage.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s CacheStats) HitRate() float64 {
	return cache.Stats{Hits: s.Hits, Misses: s.Misses}.HitRate()
}

// CacheStats returns parse cache statistics. The zero value is returned
// when the engine was created without WithParseCache. Engines derived with
// With share their parent's cache and report the same numbers.
func (e *Engine) CacheStats() CacheStats {
	if e.cache == nil {
		return CacheStats{}
	}
	s := e.cache.entries.Stats()
	return CacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
