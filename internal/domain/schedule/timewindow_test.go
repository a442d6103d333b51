package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		want    int
		wantErr bool
	}{
		{name: "midnight", clock: "00:00", want: 0},
		{name: "morning", clock: "08:30", want: 510},
		{name: "end of day", clock: "23:59", want: 1439},
		{name: "hour out of range", clock: "24:00", wantErr: true},
		{name: "minute out of range", clock: "10:60", wantErr: true},
		{name: "garbage", clock: "not-a-time", wantErr: true},
		{name: "trailing garbage", clock: "10:3a", wantErr: true},
		{name: "trailing space", clock: "10:3 ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClockMinutes(tt.clock)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.False(t, ValidClock("9:00"), "must be zero padded")
	assert.False(t, ValidClock("09:00:00"))
	assert.False(t, ValidClock(""))
	// Right length but only a prefix is a valid time.
	assert.False(t, ValidClock("10:3a"))
	assert.False(t, ValidClock("10:3 "))
}

func TestAddHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		hours float64
		want  string
	}{
		{name: "whole hours", start: "10:00", hours: 2, want: "12:00"},
		{name: "fractional hours", start: "09:15", hours: 1.5, want: "10:45"},
		{name: "wraps past midnight", start: "23:00", hours: 2, want: "01:00"},
		{name: "zero duration", start: "08:00", hours: 0, want: "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddHours(tt.start, tt.hours))
		})
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeWindow
		want bool
	}{
		{
			name: "clear overlap",
			a:    TimeWindow{Start: "10:00", End: "12:00"},
			b:    TimeWindow{Start: "11:00", End: "13:00"},
			want: true,
		},
		{
			name: "contained",
			a:    TimeWindow{Start: "09:00", End: "17:00"},
			b:    TimeWindow{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "back to back is not overlap",
			a:    TimeWindow{Start: "10:00", End: "11:00"},
			b:    TimeWindow{Start: "11:00", End: "12:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    TimeWindow{Start: "08:00", End: "09:00"},
			b:    TimeWindow{Start: "14:00", End: "15:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestWindowFrom(t *testing.T) {
	w := WindowFrom("10:00", 2.5)
	assert.Equal(t, TimeWindow{Start: "10:00", End: "12:30"}, w)
	assert.True(t, w.IsValid())

	assert.False(t, TimeWindow{Start: "12:00", End: "12:00"}.IsValid())
}
