package dto

import (
	"time"

	"github.com/google/uuid"

	amenityDto "socihub/internal/domains/amenity/model/dto"
	"socihub/internal/domains/reservation/model"
	"socihub/internal/domains/reservation/schedule"
	"socihub/shared"
	"socihub/shared/constant"
	gDto "socihub/shared/dto"
	"socihub/shared/failure"
	gModel "socihub/shared/model"
	"socihub/shared/timezone"
)

// ReserveRequest is the payload for both Create and the validate-only dry run.
type ReserveRequest struct {
	AmenityID   string `json:"amenity_id"   validate:"required,uuid4"`
	BookingDate string `json:"booking_date" validate:"required,bookingdate"`
	Granularity string `json:"granularity"  validate:"required,oneof=whole_day half_day hourly"`
	TimeSlot    string `json:"time_slot"    validate:"omitempty,oneof=morning afternoon"`
	StartTime   string `json:"start_time"   validate:"omitempty,timeofday"`
	EndTime     string `json:"end_time"     validate:"omitempty,timeofday"`
}

// Date parses the booking date in the application timezone.
func (r *ReserveRequest) Date() (time.Time, error) {
	date, err := timezone.Parse(constant.BookingDateFormat, r.BookingDate)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
	}

	return date, nil
}

// ToScheduleRequest checks the granularity-specific fields and builds the
// conflict-check view. A missing slot or time field for the declared
// granularity is a caller error, never defaulted.
func (r *ReserveRequest) ToScheduleRequest() (schedule.Request, error) {
	granularity := schedule.Granularity(r.Granularity)

	switch granularity {
	case schedule.WholeDay:
		return schedule.Request{Granularity: granularity}, nil

	case schedule.HalfDay:
		if r.TimeSlot == "" {
			return schedule.Request{}, failure.BadRequestFromString("time_slot is required for half-day reservations") // nolint:wrapcheck
		}

		return schedule.Request{Granularity: granularity, Slot: schedule.Slot(r.TimeSlot)}, nil

	case schedule.Hourly:
		if r.StartTime == "" || r.EndTime == "" {
			return schedule.Request{}, failure.BadRequestFromString("start_time and end_time are required for hourly reservations") // nolint:wrapcheck
		}

		start, err := schedule.ParseTimeOfDay(r.StartTime)
		if err != nil {
			return schedule.Request{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		end, err := schedule.ParseTimeOfDay(r.EndTime)
		if err != nil {
			return schedule.Request{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		rng, err := schedule.NewTimeRange(start, end)
		if err != nil {
			return schedule.Request{}, failure.BadRequest(err) // nolint:wrapcheck
		}

		return schedule.Request{Granularity: granularity, Range: rng}, nil

	default:
		return schedule.Request{}, failure.BadRequestFromString("unknown granularity") // nolint:wrapcheck
	}
}

// ToModel builds the booking to persist from an accepted request.
func (r *ReserveRequest) ToModel(scheduleReq schedule.Request, date time.Time, fee int64, user string) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		AmenityID:    r.AmenityID,
		BookingDate:  date,
		Granularity:  string(scheduleReq.Granularity),
		TimeSlot:     string(scheduleReq.Slot),
		StartMinutes: int(scheduleReq.Range.Start),
		EndMinutes:   int(scheduleReq.Range.End),
		SlotKey:      schedule.SlotKey(scheduleReq),
		RequestedBy:  user,
		TotalFee:     fee,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateReservationRequest carries the changeable fields of a booking. The
// granularity is fixed at creation; moving a booking to another granularity is
// a cancel plus a new reservation.
type UpdateReservationRequest struct {
	BookingDate string `json:"booking_date" validate:"omitempty,bookingdate"`
	TimeSlot    string `json:"time_slot"    validate:"omitempty,oneof=morning afternoon"`
	StartTime   string `json:"start_time"   validate:"omitempty,timeofday"`
	EndTime     string `json:"end_time"     validate:"omitempty,timeofday"`
}

func (r UpdateReservationRequest) Empty() bool {
	return r == (UpdateReservationRequest{})
}

type ReservationResponse struct {
	ID          string `json:"id"`
	AmenityID   string `json:"amenity_id"`
	BookingDate string `json:"booking_date"`
	Granularity string `json:"granularity"`
	TimeSlot    string `json:"time_slot,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	RequestedBy string `json:"requested_by"`
	TotalFee    int64  `json:"total_fee"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.AmenityID = mod.AmenityID
	r.BookingDate = mod.BookingDate.Format(constant.BookingDateFormat)
	r.Granularity = mod.Granularity
	r.TimeSlot = mod.TimeSlot
	r.RequestedBy = mod.RequestedBy
	r.TotalFee = mod.TotalFee
	r.Metadata.FromModel(mod.Metadata)

	if mod.Granularity == string(schedule.Hourly) {
		r.StartTime = schedule.TimeOfDay(mod.StartMinutes).String()
		r.EndTime = schedule.TimeOfDay(mod.EndMinutes).String()
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ValidateReservationResponse is the dry-run verdict: whether the slot is
// available, the reason code when it is not, and the fee the reservation would
// cost.
type ValidateReservationResponse struct {
	Allowed  bool   `json:"allowed"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
	TotalFee int64  `json:"total_fee"`
}

type UpcomingDatesResponse struct {
	AmenityID string   `json:"amenity_id"`
	Dates     []string `json:"dates"`
}

// AmenityCalendarResponse pairs an amenity with its upcoming fully booked
// dates, for rendering an availability calendar in one call.
type AmenityCalendarResponse struct {
	Amenity         amenityDto.AmenityResponse `json:"amenity"`
	FullyBookedDate []string                   `json:"fully_booked_dates"`
}
