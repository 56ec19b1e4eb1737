package schedule

import "fmt"

// Reason identifies why a reservation request was rejected.
type Reason string

const (
	ReasonWholeDayBlocked Reason = "whole_day_blocked"
	ReasonSlotTaken       Reason = "slot_taken"
	ReasonRangeOverlap    Reason = "range_overlap"
	ReasonHalfDayConflict Reason = "half_day_conflict"
)

func (r Reason) Message() string {
	switch r {
	case ReasonWholeDayBlocked:
		return "the amenity is reserved for the whole day"
	case ReasonSlotTaken:
		return "the requested half-day slot is already reserved"
	case ReasonRangeOverlap:
		return "the requested time range overlaps an existing reservation"
	case ReasonHalfDayConflict:
		return "the requested start time falls inside a reserved half-day slot"
	default:
		return "the requested slot is not available"
	}
}

// Decision is the outcome of a conflict check. The zero Decision rejects with
// no reason; use Accept and Reject.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func Accept() Decision {
	return Decision{Allowed: true}
}

func Reject(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Entry is the conflict-relevant view of an existing reservation on the same
// amenity and date as the request being checked. Slot is set for half-day
// entries and Range for hourly ones.
type Entry struct {
	ID          string
	Granularity Granularity
	Slot        Slot
	Range       TimeRange
}

// Request is the conflict-relevant view of the reservation being attempted.
type Request struct {
	Granularity Granularity
	Slot        Slot
	Range       TimeRange
}

// Check runs the conflict rule matching the request's granularity against the
// existing reservations for the same amenity and date. It is pure: callers own
// loading the entries and acting on the decision.
func Check(req Request, existing []Entry) Decision {
	switch req.Granularity {
	case WholeDay:
		return checkWholeDay(existing)
	case HalfDay:
		return checkHalfDay(req.Slot, existing)
	case Hourly:
		return checkHourly(req.Range, existing)
	default:
		return Reject(ReasonWholeDayBlocked)
	}
}

// checkWholeDay rejects when anything at all is reserved on the date: a
// whole-day reservation monopolizes the amenity. The reason names the most
// restrictive entry found.
func checkWholeDay(existing []Entry) Decision {
	if len(existing) == 0 {
		return Accept()
	}

	for _, entry := range existing {
		if entry.Granularity == WholeDay {
			return Reject(ReasonWholeDayBlocked)
		}
	}

	for _, entry := range existing {
		if entry.Granularity == HalfDay {
			return Reject(ReasonSlotTaken)
		}
	}

	return Reject(ReasonRangeOverlap)
}

func checkHalfDay(slot Slot, existing []Entry) Decision {
	for _, entry := range existing {
		if entry.Granularity == WholeDay {
			return Reject(ReasonWholeDayBlocked)
		}

		if entry.Granularity == HalfDay && entry.Slot == slot {
			return Reject(ReasonSlotTaken)
		}
	}

	return Accept()
}

// checkHourly rejects on a whole-day reservation, on any overlapping hourly
// range, or when the requested start time falls inside an already-reserved
// half-day window. Only the start time is tested against half-day windows; a
// range that merely ends inside one is allowed.
func checkHourly(rng TimeRange, existing []Entry) Decision {
	for _, entry := range existing {
		switch entry.Granularity {
		case WholeDay:
			return Reject(ReasonWholeDayBlocked)
		case Hourly:
			if entry.Range.Overlaps(rng) {
				return Reject(ReasonRangeOverlap)
			}
		case HalfDay:
			if entry.Slot.Window().Contains(rng.Start) {
				return Reject(ReasonHalfDayConflict)
			}
		}
	}

	return Accept()
}

// SlotKey encodes the exclusive unit a request reserves. Two requests compete
// iff they produce the same key for the same amenity and date; the storage
// layer enforces uniqueness on it as the final guard against races.
func SlotKey(req Request) string {
	switch req.Granularity {
	case WholeDay:
		return "day"
	case HalfDay:
		if req.Slot == Morning {
			return "am"
		}

		return "pm"
	default:
		return fmt.Sprintf("hr:%04d-%04d", int(req.Range.Start), int(req.Range.End))
	}
}
