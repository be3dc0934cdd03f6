package morphemize

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoCapacity bounds the number of distinct expressions each strategy
// remembers before least-recently-used entries are evicted.
const memoCapacity = 131072

// memo is the per-strategy memoization cache. Results are keyed by the
// exact input expression; no normalization is applied to the key, so
// "a b" and "a  b" are distinct entries. Only successful segmentations
// are stored. The underlying LRU is safe for concurrent use.
type memo struct {
	cache  *lru.Cache[string, []Morpheme]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// newMemo creates a memo bounded to capacity entries. A non-positive
// capacity falls back to memoCapacity; lru.New only fails on a
// non-positive size, which the fallback rules out.
func newMemo(capacity int) *memo {
	if capacity <= 0 {
		capacity = memoCapacity
	}
	cache, err := lru.New[string, []Morpheme](capacity)
	if err != nil {
		panic("morphemize: lru.New with positive capacity: " + err.Error())
	}
	return &memo{cache: cache}
}

// do returns the cached result for expression, or runs segment and
// caches its result. Errors are returned as-is and never cached, so a
// transient backend failure does not poison the cache.
func (m *memo) do(expression string, segment func(string) ([]Morpheme, error)) ([]Morpheme, error) {
	if cached, ok := m.cache.Get(expression); ok {
		m.hits.Add(1)
		return cached, nil
	}
	m.misses.Add(1)
	morphs, err := segment(expression)
	if err != nil {
		return nil, err
	}
	m.cache.Add(expression, morphs)
	return morphs, nil
}
