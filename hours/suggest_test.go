package hours

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func seq(from, to int) []int {
	var ret []int
	for i := from; i <= to; i++ {
		ret = append(ret, i)
	}
	return ret
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		r     Range
		query string
		want  []int
	}{
		{"all", Range{0, 23}, "", seq(0, 23)},
		{"query 1", Range{0, 23}, "1", append([]int{1}, seq(10, 19)...)},
		{"query 2", Range{0, 23}, "2", []int{2, 20, 21, 22, 23}},
		{"query 0", Range{0, 23}, "0", seq(0, 9)},
		{"padded query", Range{0, 23}, "05", []int{5}},
		{"end after start", Range{11, 23}, "", seq(11, 23)},
		{"today with query 1", Range{14, 23}, "1", seq(14, 19)},
		{"no match", Range{0, 9}, "5x", []int{}},
		{"empty range", Range{24, 23}, "", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.r, tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggest(%v, %q) mismatch (-want +got):\n%s", tt.r, tt.query, diff)
			}
		})
	}
}

func TestSuggestOrderedSubset(t *testing.T) {
	for _, q := range []string{"", "0", "1", "2", "3", "12", "9"} {
		got := Suggest(Range{3, 21}, q)
		for i, h := range got {
			require.True(t, h >= 3 && h <= 21)
			if i > 0 {
				require.Less(t, got[i-1], h)
			}
		}
	}
}

func TestSuggestCache(t *testing.T) {
	ClearCache()

	first := Suggest(Range{0, 23}, "1")
	first[0] = 99
	second := Suggest(Range{0, 23}, "1")

	require.Equal(t, 1, second[0], "cached slice must not be shared with callers")
	stats := SuggestCacheStats()
	require.Equal(t, SuggestStats{Hits: 1, Misses: 1, Entries: 1}, stats)
	require.Equal(t, "suggest cache: 1 hits, 1 misses, 1 entries", stats.String())

	ClearCache()
	require.Equal(t, SuggestStats{}, SuggestCacheStats())
}
