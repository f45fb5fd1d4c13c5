package slotgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func TestBaseTimes(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		gap      int
		want     []types.TimeString
	}{
		{
			name:     "inclusive upper bound",
			start:    "08:00",
			end:      "20:00",
			duration: 60,
			gap:      60,
			want:     []types.TimeString{"08:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00"},
		},
		{
			name:     "step does not land on end",
			start:    "9am",
			end:      "11:00",
			duration: 45,
			gap:      0,
			want:     []types.TimeString{"09:00", "09:45", "10:30"},
		},
		{
			name:     "start equals end",
			start:    "10:00",
			end:      "10:00",
			duration: 30,
			gap:      0,
			want:     []types.TimeString{"10:00"},
		},
		{
			name:     "reversed bounds",
			start:    "20:00",
			end:      "08:00",
			duration: 60,
			gap:      0,
			want:     []types.TimeString{},
		},
		{
			name:     "zero step",
			start:    "08:00",
			end:      "09:00",
			duration: 0,
			gap:      0,
			want:     []types.TimeString{},
		},
		{
			name:     "unparseable start",
			start:    "noon-ish",
			end:      "20:00",
			duration: 60,
			gap:      0,
			want:     []types.TimeString{},
		},
		{
			name:     "late evening up to 23:59",
			start:    "11pm",
			end:      "23:59",
			duration: 30,
			gap:      0,
			want:     []types.TimeString{"23:00", "23:30"},
		},
		{
			name:     "last slot starts at 23:59",
			start:    "22:59",
			end:      "23:59",
			duration: 60,
			gap:      0,
			want:     []types.TimeString{"22:59", "23:59"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseTimes(tt.start, tt.end, tt.duration, tt.gap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseTimes_Deterministic(t *testing.T) {
	first := BaseTimes("07:15", "18:40", 50, 10)
	second := BaseTimes("07:15", "18:40", 50, 10)
	assert.Equal(t, first, second)
}
