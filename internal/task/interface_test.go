package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 42 ", want: 42},
		{in: "-3", want: -3},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePriority_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"high", "HIGH", "  High ", "\thigh\n"} {
		got, err := ParsePriority(in)
		require.NoError(t, err)
		assert.Equal(t, PriorityHigh, got)
	}
	_, err := ParsePriority("alta")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseStatus_ExactValues(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		got, err := ParseStatus(" " + string(s) + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("in progress")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseTitle(t *testing.T) {
	t.Parallel()

	got, err := ParseTitle("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got)

	_, err = ParseTitle(" \t ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
