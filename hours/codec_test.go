package hours

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	text string
	emit bool
}

// recordingField remembers every write made to it.
type recordingField struct {
	writes []write
}

func (f *recordingField) Write(text string, emit bool) {
	f.writes = append(f.writes, write{text, emit})
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{"14", 14, false},
		{"14h00", 14, false},
		{" 07 ", 7, false},
		{"0", 0, false},
		{"23h59", 23, false},
		{"24", 0, true},
		{"hhh", 0, true},
		{"", 0, true},
		{"-1", 0, true},
		{"h14", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			require.True(t, errors.Is(err, ErrParse), tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "14h00", Format(14))
	assert.Equal(t, "0h00", Format(0))
	assert.Equal(t, At(9), ParseHour(Format(9)))
	assert.Equal(t, Unset, ParseHour("nope"))
}

func TestPatch(t *testing.T) {
	r := Range{Min: 6, Max: 23}

	t.Run("bad input clears without notification", func(t *testing.T) {
		f := &recordingField{}
		require.Equal(t, OutcomeCleared, Patch("hhh", f, r, true))
		require.Equal(t, []write{{"", false}}, f.writes)
	})
	t.Run("in bounds writes canonical text", func(t *testing.T) {
		f := &recordingField{}
		require.Equal(t, OutcomeWritten, Patch("14", f, r, false))
		require.Equal(t, []write{{"14h00", false}}, f.writes)
	})
	t.Run("emits only when asked", func(t *testing.T) {
		f := &recordingField{}
		require.Equal(t, OutcomeWritten, Patch("12", f, r, true))
		require.Equal(t, []write{{"12h00", true}}, f.writes)
	})
	t.Run("out of bounds is dropped", func(t *testing.T) {
		f := &recordingField{}
		require.Equal(t, OutcomeRejected, Patch("5", f, r, true))
		require.Empty(t, f.writes)
	})
	require.Equal(t, "rejected", OutcomeRejected.String())
}
