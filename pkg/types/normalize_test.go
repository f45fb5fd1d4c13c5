package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TimeString
	}{
		{name: "24h", raw: "14:30", want: "14:30"},
		{name: "single digit hour", raw: "9:05", want: "09:05"},
		{name: "am without minutes", raw: "9am", want: "09:00"},
		{name: "midnight am", raw: "12am", want: "00:00"},
		{name: "noon pm with minutes", raw: "12:30pm", want: "12:30"},
		{name: "pm upper case with space", raw: "  7:05 PM ", want: "19:05"},
		{name: "noon pm", raw: "12pm", want: "12:00"},
		{name: "compact four digits", raw: "0930", want: "09:30"},
		{name: "compact three digits", raw: "930", want: "09:30"},
		{name: "dot separator", raw: "9.30", want: "09:30"},
		{name: "end of day", raw: "23:59", want: "23:59"},
		{name: "pm on 24h hour is kept", raw: "13pm", want: "13:00"},
		{name: "zero am", raw: "0am", want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"25:00",
		"10:60",
		"abc",
		"pm",
		"9:",
		"24:00",
		"12:-5",
		"99999",
		"9:+5",
		"+9:30",
		"09:005",
		"009:30",
		" -1am",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestNormalize_LexicalOrderMatchesChronological(t *testing.T) {
	early, err := Normalize("9am")
	require.NoError(t, err)
	late, err := Normalize("10:15")
	require.NoError(t, err)

	assert.True(t, early < late)
	assert.True(t, early.IsBefore(late))
}
