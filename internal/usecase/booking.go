package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/infra"
	"lensfolio/internal/pkg/clock"
	"lensfolio/internal/pkg/errs"
	"lensfolio/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingConflict      = errors.New("time slot is already booked")
	ErrInvalidBookingInput  = errors.New("invalid booking input")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	ListPublic(ctx context.Context, userEmail string) ([]*booking.Booking, error)
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateBookingInput struct {
	CouponCode string
	Name       string
	Email      string
	StartTime  time.Time
	EndTime    time.Time
}

type UpdateBookingInput struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*booking.Booking, error)
	ListBookings(ctx context.Context) ([]*booking.Booking, error)
	ListPublicBookings(ctx context.Context, userEmail string) ([]*booking.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	DayAvailability(ctx context.Context, day time.Time, durationHours int) ([]booking.HourSlot, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	dispatcher  *NotificationDispatcher
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	dispatcher *NotificationDispatcher,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		dispatcher:  dispatcher,
		clock:       clock,
	}
}

// CreateBooking writes a pending booking. The store's exclusion constraint is
// the collision check, so two concurrent requests for the same slot cannot
// both succeed. The notification is dispatched after the write; its failure
// never fails the booking.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*booking.Booking, error) {
	if input.CouponCode == "" || input.Name == "" || input.Email == "" {
		return nil, ErrInvalidBookingInput
	}

	slot, err := booking.NewTimeSlot(input.StartTime, input.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	entity, err := booking.NewBooking(input.CouponCode, input.Name, input.Email, slot, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	if err := u.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if notifyErr := u.dispatcher.BookingCreated(ctx, entity); notifyErr != nil {
		slog.Error("failed to send booking notification", "booking_id", entity.ID(), "error", notifyErr)
	}

	return entity, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookings, nil
}

// ListPublicBookings returns confirmed bookings for everyone, plus the
// caller's own pending ones when an email is supplied.
func (u *bookingUseCaseImpl) ListPublicBookings(ctx context.Context, userEmail string) ([]*booking.Booking, error) {
	bookings, err := u.bookingRepo.ListPublic(ctx, userEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookings, nil
}

// UpdateBooking merges a partial admin edit. The first transition to
// confirmed stamps confirmedAt; later transitions keep the original stamp.
// Rescheduling is collision-checked the same way creation is.
func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*booking.Booking, error) {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if input.StartTime != nil || input.EndTime != nil {
		slot, err := booking.NewTimeSlot(
			patch.Coalesce(input.StartTime, entity.Slot().Start()),
			patch.Coalesce(input.EndTime, entity.Slot().End()),
		)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidBookingInput)
		}
		entity.Reschedule(slot)
	}

	if input.Status != nil {
		status := booking.Status(*input.Status)
		if err := entity.ChangeStatus(status, u.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrInvalidBookingStatus)
		}
	}

	if err := u.bookingRepo.Update(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBookingConflict
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DayAvailability computes the discrete hour slots of one day for a session
// of the given duration, marking slots that overlap an active booking.
func (u *bookingUseCaseImpl) DayAvailability(ctx context.Context, day time.Time, durationHours int) ([]booking.HourSlot, error) {
	if durationHours <= 0 {
		return nil, ErrInvalidBookingInput
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	active, err := u.bookingRepo.ListActiveBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	taken := make([]booking.TimeSlot, 0, len(active))
	for _, b := range active {
		taken = append(taken, b.Slot())
	}

	return booking.DayHourSlots(dayStart, durationHours, taken), nil
}
