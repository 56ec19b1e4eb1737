package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"socihub/internal/domains/reservation/schedule"
)

func wholeDayEntry(id string) schedule.Entry {
	return schedule.Entry{ID: id, Granularity: schedule.WholeDay}
}

func halfDayEntry(id string, slot schedule.Slot) schedule.Entry {
	return schedule.Entry{ID: id, Granularity: schedule.HalfDay, Slot: slot}
}

func hourlyEntry(t *testing.T, id, start, end string) schedule.Entry {
	t.Helper()

	return schedule.Entry{ID: id, Granularity: schedule.Hourly, Range: mustRange(t, start, end)}
}

func TestCheck_WholeDay(t *testing.T) {
	req := schedule.Request{Granularity: schedule.WholeDay}

	tests := []struct {
		name       string
		existing   []schedule.Entry
		want       bool
		wantReason schedule.Reason
	}{
		{
			name:     "empty day accepts",
			existing: nil,
			want:     true,
		},
		{
			name:       "existing whole day blocks",
			existing:   []schedule.Entry{wholeDayEntry("b1")},
			want:       false,
			wantReason: schedule.ReasonWholeDayBlocked,
		},
		{
			name:       "existing half day blocks",
			existing:   []schedule.Entry{halfDayEntry("b1", schedule.Morning)},
			want:       false,
			wantReason: schedule.ReasonSlotTaken,
		},
		{
			name:       "existing hourly blocks",
			existing:   []schedule.Entry{hourlyEntry(t, "b1", "09:00", "10:00")},
			want:       false,
			wantReason: schedule.ReasonRangeOverlap,
		},
		{
			name: "half day outranks hourly in the reason",
			existing: []schedule.Entry{
				hourlyEntry(t, "b1", "09:00", "10:00"),
				halfDayEntry("b2", schedule.Afternoon),
			},
			want:       false,
			wantReason: schedule.ReasonSlotTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Check(req, tt.existing)

			assert.Equal(t, tt.want, got.Allowed)
			if !tt.want {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestCheck_HalfDay(t *testing.T) {
	tests := []struct {
		name       string
		slot       schedule.Slot
		existing   []schedule.Entry
		want       bool
		wantReason schedule.Reason
	}{
		{
			name: "empty day accepts",
			slot: schedule.Morning,
			want: true,
		},
		{
			name:       "whole day blocks",
			slot:       schedule.Morning,
			existing:   []schedule.Entry{wholeDayEntry("b1")},
			want:       false,
			wantReason: schedule.ReasonWholeDayBlocked,
		},
		{
			name:       "same slot taken",
			slot:       schedule.Morning,
			existing:   []schedule.Entry{halfDayEntry("b1", schedule.Morning)},
			want:       false,
			wantReason: schedule.ReasonSlotTaken,
		},
		{
			name:     "other slot free",
			slot:     schedule.Afternoon,
			existing: []schedule.Entry{halfDayEntry("b1", schedule.Morning)},
			want:     true,
		},
		{
			name:     "hourly entries do not block a half day",
			slot:     schedule.Morning,
			existing: []schedule.Entry{hourlyEntry(t, "b1", "09:00", "10:00")},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Check(schedule.Request{Granularity: schedule.HalfDay, Slot: tt.slot}, tt.existing)

			assert.Equal(t, tt.want, got.Allowed)
			if !tt.want {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestCheck_Hourly(t *testing.T) {
	tests := []struct {
		name       string
		rng        schedule.TimeRange
		existing   []schedule.Entry
		want       bool
		wantReason schedule.Reason
	}{
		{
			name: "empty day accepts",
			rng:  mustRange(t, "09:00", "10:00"),
			want: true,
		},
		{
			name:       "whole day blocks",
			rng:        mustRange(t, "09:00", "10:00"),
			existing:   []schedule.Entry{wholeDayEntry("b1")},
			want:       false,
			wantReason: schedule.ReasonWholeDayBlocked,
		},
		{
			name:       "overlapping hourly blocks",
			rng:        mustRange(t, "09:30", "10:30"),
			existing:   []schedule.Entry{hourlyEntry(t, "b1", "09:00", "10:00")},
			want:       false,
			wantReason: schedule.ReasonRangeOverlap,
		},
		{
			name:     "adjacent hourly accepted",
			rng:      mustRange(t, "10:00", "11:00"),
			existing: []schedule.Entry{hourlyEntry(t, "b1", "09:00", "10:00")},
			want:     true,
		},
		{
			name:       "start inside reserved morning window",
			rng:        mustRange(t, "07:00", "08:00"),
			existing:   []schedule.Entry{halfDayEntry("b1", schedule.Morning)},
			want:       false,
			wantReason: schedule.ReasonHalfDayConflict,
		},
		{
			name:     "start before reserved afternoon window",
			rng:      mustRange(t, "10:00", "13:00"),
			existing: []schedule.Entry{halfDayEntry("b1", schedule.Afternoon)},
			want:     true,
		},
		{
			name:       "start exactly at reserved window start",
			rng:        mustRange(t, "12:00", "13:00"),
			existing:   []schedule.Entry{halfDayEntry("b1", schedule.Afternoon)},
			want:       false,
			wantReason: schedule.ReasonHalfDayConflict,
		},
		{
			name:     "start outside unreserved slot window",
			rng:      mustRange(t, "19:00", "20:00"),
			existing: []schedule.Entry{halfDayEntry("b1", schedule.Afternoon)},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Check(schedule.Request{Granularity: schedule.Hourly, Range: tt.rng}, tt.existing)

			assert.Equal(t, tt.want, got.Allowed)
			if !tt.want {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestSlotKey(t *testing.T) {
	tests := []struct {
		name string
		req  schedule.Request
		want string
	}{
		{
			name: "whole day",
			req:  schedule.Request{Granularity: schedule.WholeDay},
			want: "day",
		},
		{
			name: "morning",
			req:  schedule.Request{Granularity: schedule.HalfDay, Slot: schedule.Morning},
			want: "am",
		},
		{
			name: "afternoon",
			req:  schedule.Request{Granularity: schedule.HalfDay, Slot: schedule.Afternoon},
			want: "pm",
		},
		{
			name: "hourly",
			req:  schedule.Request{Granularity: schedule.Hourly, Range: mustRange(t, "09:00", "10:30")},
			want: "hr:0540-0630",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.SlotKey(tt.req))
		})
	}
}
