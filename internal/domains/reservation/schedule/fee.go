package schedule

import "fmt"

const minutesPerHour = 60

// Pricing is the per-unit rate card of an amenity, in the smallest currency
// unit.
type Pricing struct {
	PerDay     int64
	PerHalfDay int64
	PerHour    int64
}

// Fee computes the total charge for a reservation. Hourly reservations bill
// whole hours, rounding partial hours up.
func Fee(granularity Granularity, pricing Pricing, rng TimeRange) (int64, error) {
	switch granularity {
	case WholeDay:
		return pricing.PerDay, nil
	case HalfDay:
		return pricing.PerHalfDay, nil
	case Hourly:
		minutes := rng.Minutes()
		if minutes <= 0 {
			return 0, fmt.Errorf("hourly reservation has non-positive duration: %s", rng)
		}

		billedHours := int64((minutes + minutesPerHour - 1) / minutesPerHour)

		return pricing.PerHour * billedHours, nil
	default:
		return 0, fmt.Errorf("unknown granularity %q", granularity)
	}
}
