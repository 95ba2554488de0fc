package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired       = errors.New("booking name is required")
	ErrEmailRequired      = errors.New("booking email is required")
	ErrCouponCodeRequired = errors.New("booking coupon code is required")
	ErrInvalidStatus      = errors.New("invalid booking status")
)

// Booking is a requested photography session occupying a time slot. It is
// created by the public flow in pending state and moves through the admin
// confirm/cancel lifecycle; cancelled bookings release their slot.
type Booking struct {
	id          uuid.UUID
	couponCode  string
	name        string
	email       string
	slot        TimeSlot
	status      Status
	createdAt   time.Time
	confirmedAt *time.Time
}

// NewBooking constructs a pending booking. IDs are uuid v7 so they stay
// time-ordered like the original numeric timestamps.
func NewBooking(couponCode, name, email string, slot TimeSlot, now time.Time) (*Booking, error) {
	if couponCode == "" {
		return nil, ErrCouponCodeRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         id,
		couponCode: couponCode,
		name:       name,
		email:      email,
		slot:       slot,
		status:     StatusPending,
		createdAt:  now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	couponCode, name, email string,
	slot TimeSlot,
	status Status,
	createdAt time.Time,
	confirmedAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		couponCode:  couponCode,
		name:        name,
		email:       email,
		slot:        slot,
		status:      status,
		createdAt:   createdAt,
		confirmedAt: confirmedAt,
	}
}

// ChangeStatus applies an admin status transition. The confirmation
// timestamp is stamped only on the first transition to confirmed and is
// never cleared afterwards.
func (b *Booking) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	if status == StatusConfirmed && b.confirmedAt == nil {
		t := now
		b.confirmedAt = &t
	}
	return nil
}

// Reschedule moves the booking to a new slot. Collision control for admin
// edits is the store's concern.
func (b *Booking) Reschedule(slot TimeSlot) {
	b.slot = slot
}

// ConflictsWith reports whether two bookings contend for calendar time.
// Cancelled bookings never conflict; their slot is free for reuse.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.status == StatusCancelled || other.status == StatusCancelled {
		return false
	}
	return b.slot.Overlaps(other.slot)
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CouponCode() string     { return b.couponCode }
func (b *Booking) Name() string           { return b.name }
func (b *Booking) Email() string          { return b.email }
func (b *Booking) Slot() TimeSlot         { return b.slot }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) ConfirmedAt() *time.Time { return b.confirmedAt }
