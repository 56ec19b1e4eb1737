// Package events publishes reservation lifecycle events to Kafka. Publishing
// is fire-and-forget: consumers such as the notification service react to the
// stream, and a publish failure never fails the reservation itself.
package events

import (
	"time"

	"socihub/internal/domains/reservation/model"
	"socihub/internal/domains/reservation/schedule"
	"socihub/shared/constant"
	"socihub/shared/timezone"
)

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationUpdated   = "reservation.updated"
	TopicReservationCancelled = "reservation.cancelled"
)

type ReservationEvent struct {
	BookingID   string    `json:"booking_id"`
	AmenityID   string    `json:"amenity_id"`
	BookingDate string    `json:"booking_date"`
	Granularity string    `json:"granularity"`
	TimeSlot    string    `json:"time_slot,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	RequestedBy string    `json:"requested_by"`
	TotalFee    int64     `json:"total_fee"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewReservationEvent(booking model.Booking) ReservationEvent {
	event := ReservationEvent{
		BookingID:   booking.ID,
		AmenityID:   booking.AmenityID,
		BookingDate: booking.BookingDate.Format(constant.BookingDateFormat),
		Granularity: booking.Granularity,
		TimeSlot:    booking.TimeSlot,
		RequestedBy: booking.RequestedBy,
		TotalFee:    booking.TotalFee,
		OccurredAt:  timezone.Now(),
	}

	if booking.Granularity == string(schedule.Hourly) {
		event.StartTime = schedule.TimeOfDay(booking.StartMinutes).String()
		event.EndTime = schedule.TimeOfDay(booking.EndMinutes).String()
	}

	return event
}
