package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpmeclean/schedule-service/internal/domain"
	"github.com/helpmeclean/schedule-service/internal/domain/entity"
)

func TestClampOverride(t *testing.T) {
	bounds := &entity.CompanyScheduleSlot{
		CompanyID: 10, DayOfWeek: domain.Monday,
		StartTime: "08:00", EndTime: "17:00", IsWorkDay: true,
	}

	tests := []struct {
		name      string
		candidate OverrideCandidate
		bounds    *entity.CompanyScheduleSlot
		want      OverrideCandidate
	}{
		{
			name:      "no bounds passes through",
			candidate: OverrideCandidate{StartTime: "06:00", EndTime: "23:00", IsAvailable: true},
			bounds:    nil,
			want:      OverrideCandidate{StartTime: "06:00", EndTime: "23:00", IsAvailable: true},
		},
		{
			name:      "unavailable candidate passes through",
			candidate: OverrideCandidate{StartTime: "06:00", EndTime: "23:00", IsAvailable: false},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "06:00", EndTime: "23:00", IsAvailable: false},
		},
		{
			name:      "both ends clamped into company bounds",
			candidate: OverrideCandidate{StartTime: "07:00", EndTime: "21:00", IsAvailable: true},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "08:00", EndTime: "17:00", IsAvailable: true},
		},
		{
			name:      "inside bounds untouched",
			candidate: OverrideCandidate{StartTime: "09:00", EndTime: "15:00", IsAvailable: true},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "09:00", EndTime: "15:00", IsAvailable: true},
		},
		{
			name:      "end clamped but window stays valid",
			candidate: OverrideCandidate{StartTime: "16:50", EndTime: "17:10", IsAvailable: true},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "16:50", EndTime: "17:00", IsAvailable: true},
		},
		{
			name:      "collapsed window substituted with full bounds",
			candidate: OverrideCandidate{StartTime: "17:30", EndTime: "18:00", IsAvailable: true},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "08:00", EndTime: "17:00", IsAvailable: true},
		},
		{
			name:      "window entirely before bounds substituted",
			candidate: OverrideCandidate{StartTime: "05:00", EndTime: "07:00", IsAvailable: true},
			bounds:    bounds,
			want:      OverrideCandidate{StartTime: "08:00", EndTime: "17:00", IsAvailable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampOverride(tt.candidate, tt.bounds)
			assert.Equal(t, tt.want, got)

			// Clamping is idempotent: re-clamping a stored override is a no-op.
			assert.Equal(t, got, ClampOverride(got, tt.bounds))
		})
	}
}

func TestClampOverride_Totality(t *testing.T) {
	// Any available candidate clamped against valid work-day bounds ends up
	// as a non-empty window inside those bounds.
	bounds := &entity.CompanyScheduleSlot{StartTime: "08:00", EndTime: "17:00", IsWorkDay: true}

	candidates := []OverrideCandidate{
		{StartTime: "00:00", EndTime: "23:59", IsAvailable: true},
		{StartTime: "08:00", EndTime: "08:01", IsAvailable: true},
		{StartTime: "16:59", EndTime: "17:00", IsAvailable: true},
		{StartTime: "20:00", EndTime: "06:00", IsAvailable: true}, // inverted input
		{StartTime: "12:00", EndTime: "12:00", IsAvailable: true}, // empty input
	}

	for _, c := range candidates {
		got := ClampOverride(c, bounds)
		assert.True(t, bounds.StartTime <= got.StartTime, "candidate %+v", c)
		assert.True(t, got.StartTime < got.EndTime, "candidate %+v", c)
		assert.True(t, got.EndTime <= bounds.EndTime, "candidate %+v", c)
	}
}
