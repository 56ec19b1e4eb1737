package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"socihub/internal/domains/reservation/schedule"
)

func mustRange(t *testing.T, start, end string) schedule.TimeRange {
	t.Helper()

	s, err := schedule.ParseTimeOfDay(start)
	assert.NoError(t, err)

	e, err := schedule.ParseTimeOfDay(end)
	assert.NoError(t, err)

	rng, err := schedule.NewTimeRange(s, e)
	assert.NoError(t, err)

	return rng
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    schedule.TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "not a time", input: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", schedule.TimeOfDay(545).String())
	assert.Equal(t, "00:00", schedule.TimeOfDay(0).String())
	assert.Equal(t, "23:59", schedule.TimeOfDay(1439).String())
}

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   schedule.TimeOfDay
		end     schedule.TimeOfDay
		wantErr bool
	}{
		{name: "valid", start: 540, end: 600},
		{name: "full day", start: 0, end: 1440},
		{name: "empty", start: 540, end: 540, wantErr: true},
		{name: "inverted", start: 600, end: 540, wantErr: true},
		{name: "negative start", start: -1, end: 60, wantErr: true},
		{name: "end past midnight", start: 540, end: 1441, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schedule.NewTimeRange(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    schedule.TimeRange
		b    schedule.TimeRange
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustRange(t, "09:00", "11:00"),
			b:    mustRange(t, "10:00", "12:00"),
			want: true,
		},
		{
			name: "adjacent ranges do not overlap",
			a:    mustRange(t, "09:00", "10:00"),
			b:    mustRange(t, "10:00", "11:00"),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustRange(t, "06:00", "07:00"),
			b:    mustRange(t, "08:00", "09:00"),
			want: false,
		},
		{
			name: "containment",
			a:    mustRange(t, "09:00", "12:00"),
			b:    mustRange(t, "10:00", "11:00"),
			want: true,
		},
		{
			name: "identical",
			a:    mustRange(t, "09:00", "10:00"),
			b:    mustRange(t, "09:00", "10:00"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	rng := mustRange(t, "09:00", "10:00")

	start, _ := schedule.ParseTimeOfDay("09:00")
	mid, _ := schedule.ParseTimeOfDay("09:30")
	end, _ := schedule.ParseTimeOfDay("10:00")

	assert.True(t, rng.Contains(start), "start is inside a half-open range")
	assert.True(t, rng.Contains(mid))
	assert.False(t, rng.Contains(end), "end is outside a half-open range")
}

func TestSlot_Window(t *testing.T) {
	assert.Equal(t, mustRange(t, "06:00", "12:00"), schedule.Morning.Window())
	assert.Equal(t, mustRange(t, "12:00", "18:00"), schedule.Afternoon.Window())
}
