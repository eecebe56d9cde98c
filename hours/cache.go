package hours

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

// Suggestion lists only depend on the range and the query, so they are kept
// for a few minutes.
var suggestCache = cache.New(5*time.Minute, time.Hour)

var (
	suggestHits   atomic.Int64
	suggestMisses atomic.Int64
)

// SuggestStats is a snapshot of the suggestion cache counters.
type SuggestStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

func (s SuggestStats) String() string {
	return fmt.Sprintf("suggest cache: %d hits, %d misses, %d entries", s.Hits, s.Misses, s.Entries)
}

// SuggestCacheStats returns the current counters of the suggestion cache.
func SuggestCacheStats() SuggestStats {
	return SuggestStats{
		Hits:    suggestHits.Load(),
		Misses:  suggestMisses.Load(),
		Entries: suggestCache.ItemCount(),
	}
}

// ClearCache drops every memoized suggestion list and zeroes the counters.
func ClearCache() {
	suggestCache.Flush()
	suggestHits.Store(0)
	suggestMisses.Store(0)
}
