package styles

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/opencode-ai/themekit/internal/theme"
)

// DefaultCacheSize is the number of resolved styles a Mapper keeps.
const DefaultCacheSize = 512

// Mapper memoizes style resolution. Entries are keyed by the theme
// fingerprint and the full request, so cached output always equals a
// direct call to Resolve.
type Mapper struct {
	cache  *lru.Cache[cacheKey, ResolvedStyle]
	hits   atomic.Int64
	misses atomic.Int64
}

type cacheKey struct {
	fingerprint uint64
	dark        bool
	request     Request
}

// MapperStats reports cache effectiveness.
type MapperStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// NewMapper creates a memoizing mapper holding up to size entries.
func NewMapper(size int) (*Mapper, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, ResolvedStyle](size)
	if err != nil {
		return nil, fmt.Errorf("create style cache: %w", err)
	}
	return &Mapper{cache: cache}, nil
}

// Resolve returns the style for req, computing it on a cache miss.
func (m *Mapper) Resolve(th *theme.Theme, req Request) (ResolvedStyle, error) {
	key := cacheKey{fingerprint: th.Fingerprint, dark: th.IsDarkMode, request: req}
	if rs, ok := m.cache.Get(key); ok {
		m.hits.Add(1)
		return rs, nil
	}

	rs, err := Resolve(th, req)
	if err != nil {
		return ResolvedStyle{}, err
	}
	m.misses.Add(1)
	m.cache.Add(key, rs)
	return rs, nil
}

// Stats returns a snapshot of the cache counters.
func (m *Mapper) Stats() MapperStats {
	return MapperStats{
		Entries: m.cache.Len(),
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
	}
}
