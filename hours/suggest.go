package hours

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
)

// Suggest lists the hours of r in ascending numeric order. A non-empty query
// keeps only the hours whose decimal form, plain or padded to two digits,
// starts with it: "1" gives 1 and 10..19, "0" gives 0..9. The returned slice
// belongs to the caller.
func Suggest(r Range, query string) []int {
	key := fmt.Sprintf("%d:%d:%s", r.Min, r.Max, query)
	if v, ok := suggestCache.Get(key); ok {
		suggestHits.Add(1)
		return slices.Clone(v.([]int))
	}
	suggestMisses.Add(1)

	ret := []int{}
	for h := r.Min; h <= r.Max; h++ {
		if query == "" || matches(h, query) {
			ret = append(ret, h)
		}
	}

	suggestCache.Set(key, ret, cache.DefaultExpiration)
	return slices.Clone(ret)
}

func matches(h int, query string) bool {
	return strings.HasPrefix(strconv.Itoa(h), query) || strings.HasPrefix(fmt.Sprintf("%02d", h), query)
}
