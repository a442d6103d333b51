package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/helpmeclean/schedule-service/internal/domain"
)

// Times of day travel as zero-padded "HH:MM" strings, the format both the
// API and the database use. Zero padding makes lexicographic comparison
// agree with chronological order, so windows compare with plain <.

// ClockMinutes parses a "HH:MM" string into minutes since midnight. The
// whole string must parse; trailing garbage is an error, not ignored.
func ClockMinutes(clock string) (int, error) {
	t, err := time.Parse(domain.ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM", wrapping within a
// 24-hour clock.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidClock reports whether clock is a well-formed "HH:MM" value.
func ValidClock(clock string) bool {
	if len(clock) != len(domain.ClockLayout) {
		return false
	}
	_, err := ClockMinutes(clock)
	return err == nil
}

// AddHours adds a duration in hours (fractions allowed) to a "HH:MM" time,
// wrapping within a 24-hour clock. Assumes start is well formed; malformed
// input must be rejected at the boundary before reaching the engine.
func AddHours(start string, hours float64) string {
	minutes, err := ClockMinutes(start)
	if err != nil {
		return start
	}
	return FormatClock(minutes + int(math.Round(hours*60)))
}

// TimeWindow is a half-open time-of-day interval [Start, End).
type TimeWindow struct {
	Start string
	End   string
}

// WindowFrom builds the window covering an interval that starts at a given
// time and lasts the given number of hours.
func WindowFrom(start string, hours float64) TimeWindow {
	return TimeWindow{Start: start, End: AddHours(start, hours)}
}

// IsValid reports whether the window is non-empty.
func (w TimeWindow) IsValid() bool {
	return w.Start < w.End
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints do not overlap: back-to-back jobs are legal.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start < o.End && o.Start < w.End
}
