package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"socihub/config"
	"socihub/infras/otel"
	amenityModel "socihub/internal/domains/amenity/model"
	amenityRepo "socihub/internal/domains/amenity/repository"
	"socihub/internal/domains/reservation/model"
	"socihub/internal/domains/reservation/model/dto"
	"socihub/internal/domains/reservation/repository"
	"socihub/internal/domains/reservation/schedule"
	"socihub/internal/events"
	"socihub/shared"
	"socihub/shared/cache"
	"socihub/shared/constant"
	gDto "socihub/shared/dto"
	"socihub/shared/failure"
	"socihub/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
	cacheReservationDates  = "reservation:dates"
)

type Reservation interface {
	Validate(ctx context.Context, req dto.ReserveRequest) (dto.ValidateReservationResponse, error)
	Create(ctx context.Context, req dto.ReserveRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
	UpcomingDates(ctx context.Context, amenityID, from string) (dto.UpcomingDatesResponse, error)
	Calendar(ctx context.Context, amenityID, from string) (dto.AmenityCalendarResponse, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	amenityRepo amenityRepo.Amenity
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Reservation,
	amenityRepo amenityRepo.Amenity,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		amenityRepo: amenityRepo,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Validate is the dry run of Create: same shape checks, same conflict rules
// over a snapshot of the day's bookings, no persistence. A conflict is
// reported as data, not as an error, so pre-flight UI checks can render the
// reason.
func (s *serviceImpl) Validate(ctx context.Context, req dto.ReserveRequest) (res dto.ValidateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scheduleReq, date, amenity, err := s.prepare(ctx, req)
	if err != nil {
		return res, err
	}

	existing, err := s.repo.FindForDate(ctx, req.AmenityID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to load existing reservations")

		return res, fmt.Errorf("failed to load existing reservations: %w", err)
	}

	decision := schedule.Check(scheduleReq, scheduleEntries(existing))
	if !decision.Allowed {
		return dto.ValidateReservationResponse{
			Allowed: false,
			Reason:  string(decision.Reason),
			Message: decision.Reason.Message(),
		}, nil
	}

	fee, err := schedule.Fee(scheduleReq.Granularity, pricingOf(amenity), scheduleReq.Range)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	return dto.ValidateReservationResponse{Allowed: true, TotalFee: fee}, nil
}

// Create reserves the requested slot. The conflict rules run inside the
// repository's reservation transaction so that concurrent requests for the
// same slot admit exactly one winner.
func (s *serviceImpl) Create(ctx context.Context, req dto.ReserveRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	scheduleReq, date, amenity, err := s.prepare(ctx, req)
	if err != nil {
		return res, err
	}

	fee, err := schedule.Fee(scheduleReq.Granularity, pricingOf(amenity), scheduleReq.Range)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	booking := req.ToModel(scheduleReq, date, fee, user)

	if err = s.repo.Reserve(ctx, booking, conflictGuard(scheduleReq)); err != nil {
		if failure.IsConflict(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.ReservationCreated(c, booking)
		s.invalidateCaches(c, booking.ID)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = s.scopeToCaller(ctx, filter)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = s.scopeToCaller(ctx, filter)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.requireOwnership(ctx, booking); err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Update re-validates the moved booking against the day's other reservations
// and recommits atomically; the booking being moved never conflicts with
// itself. The fee is recomputed from the new time fields.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.requireOwnership(ctx, booking); err != nil {
		return res, err
	}

	updated, err := applyChanges(booking, req)
	if err != nil {
		return res, err
	}

	amenity, err := s.loadActiveAmenity(ctx, updated.AmenityID)
	if err != nil {
		return res, err
	}

	scheduleReq := updated.ScheduleRequest()

	fee, err := schedule.Fee(scheduleReq.Granularity, pricingOf(amenity), scheduleReq.Range)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	updated.TotalFee = fee
	updated.ModifiedAt = timezone.Now()
	updated.ModifiedBy = user

	if err = s.repo.Rebook(ctx, updated, conflictGuard(scheduleReq)); err != nil {
		if failure.IsConflict(err) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.ReservationUpdated(c, updated)
		s.invalidateCaches(c, updated.ID)
	}()

	return res, nil
}

// Delete cancels a reservation, freeing its slot. Deleting an unknown or
// already-cancelled booking reports not found.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = s.requireOwnership(ctx, booking); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.ReservationCancelled(c, booking)
		s.invalidateCaches(c, id)
	}()

	return nil
}

// UpcomingDates lists the days from the given date on which the amenity is
// fully booked: a whole-day reservation, or both half-day slots taken.
func (s *serviceImpl) UpcomingDates(ctx context.Context, amenityID, from string) (res dto.UpcomingDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpcomingDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, err := s.parseFromDate(from)
	if err != nil {
		return res, err
	}

	exist, err := s.amenityRepo.Exist(ctx, shared.FilterByID(amenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return res, fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheReservationDates, amenityID, fromDate.Format(constant.BookingDateFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for fully booked dates")

		return res, nil
	}

	dates, err := s.repo.FullyBookedDates(ctx, amenityID, fromDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to query fully booked dates")

		return res, fmt.Errorf("failed to query fully booked dates: %w", err)
	}

	res.AmenityID = amenityID
	res.Dates = make([]string, len(dates))

	for i, date := range dates {
		res.Dates[i] = date.Format(constant.BookingDateFormat)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fully booked dates to cache")
		}
	}()

	return res, nil
}

// Calendar pairs the amenity's details with its upcoming fully booked dates.
func (s *serviceImpl) Calendar(ctx context.Context, amenityID, from string) (res dto.AmenityCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	amenity, err := s.amenityRepo.Get(ctx, shared.FilterByID(amenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity")

		return res, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return res, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	dates, err := s.UpcomingDates(ctx, amenityID, from)
	if err != nil {
		return res, err
	}

	res.Amenity.FromModel(amenity)
	res.FullyBookedDate = dates.Dates

	return res, nil
}

// prepare runs the shared front half of Validate and Create: shape checks,
// date parsing, and the amenity lookup.
func (s *serviceImpl) prepare(ctx context.Context, req dto.ReserveRequest) (schedule.Request, time.Time, amenityModel.Amenity, error) {
	scheduleReq, err := req.ToScheduleRequest()
	if err != nil {
		return schedule.Request{}, time.Time{}, amenityModel.Amenity{}, err
	}

	date, err := req.Date()
	if err != nil {
		return schedule.Request{}, time.Time{}, amenityModel.Amenity{}, err
	}

	amenity, err := s.loadActiveAmenity(ctx, req.AmenityID)
	if err != nil {
		return schedule.Request{}, time.Time{}, amenityModel.Amenity{}, err
	}

	return scheduleReq, date, amenity, nil
}

func (s *serviceImpl) loadActiveAmenity(ctx context.Context, amenityID string) (amenityModel.Amenity, error) {
	amenity, err := s.amenityRepo.Get(ctx, shared.FilterByID(amenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity")

		return amenity, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return amenity, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	if !amenity.Active() {
		return amenity, failure.BadRequestFromString("amenity is not available for reservations") // nolint:wrapcheck
	}

	return amenity, nil
}

func (s *serviceImpl) loadBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return booking, fmt.Errorf("failed to get reservation: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return booking, nil
}

// requireOwnership lets admins touch any booking and members only their own.
func (s *serviceImpl) requireOwnership(ctx context.Context, booking model.Booking) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.RequestedBy != user {
		return failure.Forbidden("reservation belongs to another member") // nolint:wrapcheck
	}

	return nil
}

// scopeToCaller narrows listing queries to the caller's own bookings unless
// the caller is an admin.
func (s *serviceImpl) scopeToCaller(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return filter
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	ownFilter := gDto.Filter{
		Field:    model.FieldRequestedBy,
		Value:    user,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}

	if len(filter.Filters) == 0 {
		return gDto.FilterGroup{Filters: []any{ownFilter}}
	}

	return gDto.FilterGroup{
		Filters:  []any{filter, ownFilter},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (s *serviceImpl) parseFromDate(from string) (time.Time, error) {
	if from == "" {
		now := timezone.Now()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation()), nil
	}

	fromDate, err := timezone.Parse(constant.BookingDateFormat, from)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid from date") // nolint:wrapcheck
	}

	return fromDate, nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheCountReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheReservationDates)
}

// conflictGuard wraps the conflict rules as the transactional guard the
// repository runs after taking the day lock.
func conflictGuard(req schedule.Request) repository.Guard {
	return func(existing []model.Booking) error {
		decision := schedule.Check(req, scheduleEntries(existing))
		if !decision.Allowed {
			return failure.ConflictWithReason(string(decision.Reason), decision.Reason.Message()) // nolint:wrapcheck
		}

		return nil
	}
}

func scheduleEntries(bookings []model.Booking) []schedule.Entry {
	entries := make([]schedule.Entry, len(bookings))
	for i := range bookings {
		entries[i] = bookings[i].ScheduleEntry()
	}

	return entries
}

func pricingOf(amenity amenityModel.Amenity) schedule.Pricing {
	return schedule.Pricing{
		PerDay:     amenity.PricePerDay,
		PerHalfDay: amenity.PricePerHalfDay,
		PerHour:    amenity.PricePerHour,
	}
}

// applyChanges folds the update request into a copy of the stored booking.
// The granularity never changes; slot and time fields must match it.
func applyChanges(booking model.Booking, req dto.UpdateReservationRequest) (model.Booking, error) {
	updated := booking

	if req.BookingDate != "" {
		date, err := timezone.Parse(constant.BookingDateFormat, req.BookingDate)
		if err != nil {
			return updated, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
		}

		updated.BookingDate = date
	}

	switch schedule.Granularity(booking.Granularity) {
	case schedule.WholeDay:
		if req.TimeSlot != "" || req.StartTime != "" || req.EndTime != "" {
			return updated, failure.BadRequestFromString("slot and time fields do not apply to whole-day reservations") // nolint:wrapcheck
		}

	case schedule.HalfDay:
		if req.StartTime != "" || req.EndTime != "" {
			return updated, failure.BadRequestFromString("time fields do not apply to half-day reservations") // nolint:wrapcheck
		}

		if req.TimeSlot != "" {
			updated.TimeSlot = req.TimeSlot
		}

	case schedule.Hourly:
		if req.TimeSlot != "" {
			return updated, failure.BadRequestFromString("time_slot does not apply to hourly reservations") // nolint:wrapcheck
		}

		if req.StartTime != "" {
			start, err := schedule.ParseTimeOfDay(req.StartTime)
			if err != nil {
				return updated, failure.BadRequest(err) // nolint:wrapcheck
			}

			updated.StartMinutes = int(start)
		}

		if req.EndTime != "" {
			end, err := schedule.ParseTimeOfDay(req.EndTime)
			if err != nil {
				return updated, failure.BadRequest(err) // nolint:wrapcheck
			}

			updated.EndMinutes = int(end)
		}

		if _, err := schedule.NewTimeRange(schedule.TimeOfDay(updated.StartMinutes), schedule.TimeOfDay(updated.EndMinutes)); err != nil {
			return updated, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	updated.SlotKey = schedule.SlotKey(updated.ScheduleRequest())

	return updated, nil
}
