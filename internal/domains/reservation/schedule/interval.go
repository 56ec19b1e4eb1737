// Package schedule holds the booking calendar arithmetic: time-of-day
// intervals, half-day windows, and the conflict rules that decide whether a
// reservation request may occupy its slot.
package schedule

import (
	"fmt"
	"time"

	"socihub/shared/constant"
)

// Granularity is the unit a reservation occupies an amenity with.
type Granularity string

const (
	WholeDay Granularity = "whole_day"
	HalfDay  Granularity = "half_day"
	Hourly   Granularity = "hourly"
)

func (g Granularity) Valid() bool {
	switch g {
	case WholeDay, HalfDay, Hourly:
		return true
	default:
		return false
	}
}

// Slot is a half-day sub-period.
type Slot string

const (
	Morning   Slot = "morning"
	Afternoon Slot = "afternoon"
)

func (s Slot) Valid() bool {
	return s == Morning || s == Afternoon
}

// TimeOfDay is a local clock time expressed as minutes since midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse(constant.TimeOfDayFormat, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeRange is a half-open interval [Start, End) on a single day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Valid() || end < 0 || end > minutesPerDay {
		return TimeRange{}, fmt.Errorf("time range out of bounds: [%s, %s)", start, end)
	}

	if start >= end {
		return TimeRange{}, fmt.Errorf("time range start %s must be before end %s", start, end)
	}

	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open ranges share any instant.
// Adjacent ranges sharing an endpoint do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains reports whether point falls inside the half-open range.
func (r TimeRange) Contains(point TimeOfDay) bool {
	return r.Start <= point && point < r.End
}

// Minutes is the duration of the range in minutes.
func (r TimeRange) Minutes() int {
	return int(r.End - r.Start)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Window returns the fixed time window a half-day slot occupies:
// morning [06:00, 12:00), afternoon [12:00, 18:00).
func (s Slot) Window() TimeRange {
	if s == Morning {
		return TimeRange{Start: 6 * 60, End: 12 * 60}
	}

	return TimeRange{Start: 12 * 60, End: 18 * 60}
}
