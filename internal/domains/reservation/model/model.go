package model

import (
	"time"

	"socihub/internal/domains/reservation/schedule"
	"socihub/shared/model"
)

const (
	TableName  = "amenity_bookings"
	EntityName = "reservation"

	FieldID           = "id"
	FieldAmenityID    = "amenity_id"
	FieldBookingDate  = "booking_date"
	FieldGranularity  = "granularity"
	FieldTimeSlot     = "time_slot"
	FieldStartMinutes = "start_minutes"
	FieldEndMinutes   = "end_minutes"
	FieldSlotKey      = "slot_key"
	FieldRequestedBy  = "requested_by"
	FieldTotalFee     = "total_fee"
)

// Booking is a committed reservation of an amenity on a calendar day.
// TimeSlot is set for half-day bookings, StartMinutes/EndMinutes for hourly
// ones; SlotKey encodes the exclusive unit and backs the storage-level
// uniqueness guard.
type Booking struct {
	ID           string    `db:"id"`
	AmenityID    string    `db:"amenity_id"`
	BookingDate  time.Time `db:"booking_date"`
	Granularity  string    `db:"granularity"`
	TimeSlot     string    `db:"time_slot"`
	StartMinutes int       `db:"start_minutes"`
	EndMinutes   int       `db:"end_minutes"`
	SlotKey      string    `db:"slot_key"`
	RequestedBy  string    `db:"requested_by"`
	TotalFee     int64     `db:"total_fee"`
	model.Metadata
}

// ScheduleEntry is the conflict-relevant view of the booking.
func (b *Booking) ScheduleEntry() schedule.Entry {
	return schedule.Entry{
		ID:          b.ID,
		Granularity: schedule.Granularity(b.Granularity),
		Slot:        schedule.Slot(b.TimeSlot),
		Range: schedule.TimeRange{
			Start: schedule.TimeOfDay(b.StartMinutes),
			End:   schedule.TimeOfDay(b.EndMinutes),
		},
	}
}

// ScheduleRequest is the booking viewed as a reservation attempt, used when
// re-validating an update.
func (b *Booking) ScheduleRequest() schedule.Request {
	return schedule.Request{
		Granularity: schedule.Granularity(b.Granularity),
		Slot:        schedule.Slot(b.TimeSlot),
		Range: schedule.TimeRange{
			Start: schedule.TimeOfDay(b.StartMinutes),
			End:   schedule.TimeOfDay(b.EndMinutes),
		},
	}
}
