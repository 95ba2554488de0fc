package repository

import (
	"context"
	"errors"
	"time"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts a booking. The bookings_no_overlap exclusion constraint is
// the collision authority: concurrent creates that both pass an application
// check still cannot both land.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, coupon_code, name, email, start_time, end_time, status, created_at, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID(), b.CouponCode(), b.Name(), b.Email(),
		b.Slot().Start(), b.Slot().End(), b.Status().String(), b.CreatedAt(), b.ConfirmedAt(),
	)
	if err != nil {
		if isPgCode(err, pgExclusionViolation) {
			return infra.WrapRepoErr("time slot already booked", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := selectBooking + ` WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	query := selectBooking + ` ORDER BY start_time`
	return r.queryMany(ctx, query)
}

// ListPublic returns what the public calendar may see: every confirmed
// booking, plus the caller's own pending ones when an email is supplied.
// Other users' pending requests and contact details stay hidden.
func (r *BookingRepository) ListPublic(ctx context.Context, userEmail string) ([]*booking.Booking, error) {
	query := selectBooking + `
		WHERE status = 'confirmed'
		   OR (status = 'pending' AND $1 <> '' AND email = $1)
		ORDER BY start_time
	`
	return r.queryMany(ctx, query, userEmail)
}

// ListActiveBetween returns non-cancelled bookings intersecting [from, to),
// for availability computation.
func (r *BookingRepository) ListActiveBetween(ctx context.Context, from, to time.Time) ([]*booking.Booking, error) {
	query := selectBooking + `
		WHERE status <> 'cancelled' AND start_time < $2 AND end_time > $1
		ORDER BY start_time
	`
	return r.queryMany(ctx, query, from, to)
}

// Update persists admin edits. Moving a booking onto an occupied slot trips
// the same exclusion constraint as Create and surfaces as a conflict.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query := `
		UPDATE bookings
		SET start_time = $2, end_time = $3, status = $4, confirmed_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		b.ID(), b.Slot().Start(), b.Slot().End(), b.Status().String(), b.ConfirmedAt(),
	)
	if err != nil {
		if isPgCode(err, pgExclusionViolation) {
			return infra.WrapRepoErr("time slot already booked", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectBooking = `
	SELECT id, coupon_code, name, email, start_time, end_time, status, created_at, confirmed_at
	FROM bookings
`

func (r *BookingRepository) queryMany(ctx context.Context, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id          uuid.UUID
		couponCode  string
		name        string
		email       string
		startTime   time.Time
		endTime     time.Time
		status      string
		createdAt   time.Time
		confirmedAt *time.Time
	)

	if err := row.Scan(&id, &couponCode, &name, &email, &startTime, &endTime, &status, &createdAt, &confirmedAt); err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, couponCode, name, email, slot, booking.Status(status), createdAt, confirmedAt,
	), nil
}
