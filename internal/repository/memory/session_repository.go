package memory

import (
	"time"

	"adminsearch-be/pkg/search"

	"github.com/patrickmn/go-cache"
)

// SearchSessionRepository keeps live search engines keyed by session id.
// Expiration is sliding: every Get pushes it back by the default TTL.
type SearchSessionRepository struct {
	cache *cache.Cache
}

// NewSearchSessionRepository calls onEvicted, when set, for every session
// removed by Delete or by expiry.
func NewSearchSessionRepository(ttl, cleanupInterval time.Duration, onEvicted func(sessionID string)) *SearchSessionRepository {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(sessionID string, v interface{}) {
		// Evicted engines may still have an IsSearching flip scheduled.
		if engine, ok := v.(*search.Engine); ok {
			engine.CancelPending()
		}
		if onEvicted != nil {
			onEvicted(sessionID)
		}
	})
	return &SearchSessionRepository{
		cache: c,
	}
}

func (r *SearchSessionRepository) Save(sessionID string, engine *search.Engine) {
	r.cache.Set(sessionID, engine, cache.DefaultExpiration)
}

func (r *SearchSessionRepository) Get(sessionID string) (*search.Engine, bool) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	engine := x.(*search.Engine)
	// Replace fails if a Delete won the race; the session stays gone.
	if err := r.cache.Replace(sessionID, engine, cache.DefaultExpiration); err != nil {
		return nil, false
	}
	return engine, true
}

func (r *SearchSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SearchSessionRepository) Count() int {
	return r.cache.ItemCount()
}
