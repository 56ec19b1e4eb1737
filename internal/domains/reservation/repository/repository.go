package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"socihub/infras/otel"
	"socihub/infras/postgres"
	"socihub/internal/domains/reservation/model"
	"socihub/internal/domains/reservation/schedule"
	"socihub/shared/constant"
	gDto "socihub/shared/dto"
	"socihub/shared/failure"
	"socihub/shared/logger"
	gRepo "socihub/shared/repository"
	"socihub/shared/timezone"
)

// Guard re-checks the conflict rules against the bookings visible inside the
// reservation transaction. Returning an error aborts the commit; the error is
// surfaced to the caller unwrapped.
type Guard func(existing []model.Booking) error

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindForDate(ctx context.Context, amenityID string, date time.Time) ([]model.Booking, error)
	Reserve(ctx context.Context, booking model.Booking, guard Guard) error
	Rebook(ctx context.Context, booking model.Booking, guard Guard) error
	FullyBookedDates(ctx context.Context, amenityID string, from time.Time) ([]time.Time, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const selectBookingsForDate = `
	SELECT id, amenity_id, booking_date, granularity, time_slot, start_minutes,
	       end_minutes, slot_key, requested_by, total_fee,
	       created_at, modified_at, created_by, modified_by
	FROM amenity_bookings
	WHERE amenity_id = $1 AND booking_date = $2`

// FindForDate returns the snapshot of bookings for one amenity and day,
// without locking. Validate and calendar reads use it.
func (repo *repositoryImpl) FindForDate(ctx context.Context, amenityID string, date time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindForDate")
	defer scope.End()

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, selectBookingsForDate, amenityID, date)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find bookings for date: %w", err)
	}

	return bookings, nil
}

// Reserve commits a booking atomically with respect to competing reservations
// on the same amenity and day: it takes a transaction-scoped advisory lock on
// the (amenity, date) pair, re-reads the existing bookings, re-runs the
// conflict guard against them, and only then inserts. The unique index on
// (amenity_id, booking_date, slot_key) is the storage backstop; its violation
// surfaces as a conflict.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking, guard Guard) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back reservation transaction")
			}
		}
	}()

	if err = repo.lockDay(ctx, tx, booking.AmenityID, booking.BookingDate); err != nil {
		return err
	}

	var existing []model.Booking
	if err = tx.SelectContext(ctx, &existing, selectBookingsForDate, booking.AmenityID, booking.BookingDate); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to load existing bookings: %w", err)
	}

	if err = guard(existing); err != nil {
		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return translateUniqueViolation(err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return translateUniqueViolation(fmt.Errorf("failed to commit reservation: %w", err))
	}

	return nil
}

// Rebook moves an existing booking with the same discipline as Reserve. The
// guard sees the bookings for the target day minus the booking being moved.
func (repo *repositoryImpl) Rebook(ctx context.Context, booking model.Booking, guard Guard) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Rebook")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin rebook transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back rebook transaction")
			}
		}
	}()

	if err = repo.lockDay(ctx, tx, booking.AmenityID, booking.BookingDate); err != nil {
		return err
	}

	var loaded []model.Booking
	if err = tx.SelectContext(ctx, &loaded, selectBookingsForDate, booking.AmenityID, booking.BookingDate); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to load existing bookings: %w", err)
	}

	existing := make([]model.Booking, 0, len(loaded))

	for _, other := range loaded {
		if other.ID != booking.ID {
			existing = append(existing, other)
		}
	}

	if err = guard(existing); err != nil {
		return err
	}

	changes := map[string]any{
		model.FieldBookingDate:   booking.BookingDate,
		model.FieldTimeSlot:      booking.TimeSlot,
		model.FieldStartMinutes:  booking.StartMinutes,
		model.FieldEndMinutes:    booking.EndMinutes,
		model.FieldSlotKey:       booking.SlotKey,
		model.FieldTotalFee:      booking.TotalFee,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: booking.ModifiedBy,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    booking.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, changes, filter); err != nil {
		return translateUniqueViolation(err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return translateUniqueViolation(fmt.Errorf("failed to commit rebook: %w", err))
	}

	return nil
}

const selectFullyBookedDates = `
	SELECT booking_date FROM amenity_bookings
	WHERE amenity_id = $1 AND booking_date >= $2 AND granularity = $3
	UNION
	SELECT booking_date FROM amenity_bookings
	WHERE amenity_id = $1 AND booking_date >= $2 AND granularity = $4
	GROUP BY booking_date
	HAVING COUNT(DISTINCT time_slot) = 2
	ORDER BY booking_date`

// FullyBookedDates lists the days on which the amenity cannot take any further
// reservation: a whole-day booking exists, or both half-day slots are taken.
func (repo *repositoryImpl) FullyBookedDates(ctx context.Context, amenityID string, from time.Time) ([]time.Time, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FullyBookedDates")
	defer scope.End()

	var dates []time.Time

	err := repo.db.Read.SelectContext(ctx, &dates, selectFullyBookedDates,
		amenityID, from, string(schedule.WholeDay), string(schedule.HalfDay))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query fully booked dates: %w", err)
	}

	return dates, nil
}

func (repo *repositoryImpl) lockDay(ctx context.Context, tx *sqlx.Tx, amenityID string, date time.Time) error {
	lockKey := amenityID + ":" + date.Format(constant.BookingDateFormat)

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", lockKey); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock amenity day: %w", err)
	}

	return nil
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.ConflictWithReason(string(schedule.ReasonSlotTaken), schedule.ReasonSlotTaken.Message()) // nolint:wrapcheck
	}

	return err
}
