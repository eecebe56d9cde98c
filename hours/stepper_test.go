package hours

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	r := Range{Min: 0, Max: 23}
	tests := []struct {
		name    string
		dir     Direction
		current Hour
		r       Range
		open    bool
		want    int
		wantOK  bool
	}{
		{"up", Up, At(10), r, false, 11, true},
		{"down", Down, At(10), r, false, 9, true},
		{"up at max", Up, At(23), r, false, 23, true},
		{"down at min", Down, At(0), r, false, 0, true},
		{"down at range min", Down, At(11), Range{11, 23}, false, 11, true},
		{"list open", Up, At(10), r, true, 0, false},
		{"unset up", Up, Unset, Range{4, 9}, false, 4, true},
		{"unset down", Down, Unset, Range{4, 9}, false, 9, true},
		{"empty range", Up, At(23), Range{24, 23}, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(tt.dir, tt.current, tt.r, tt.open)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
