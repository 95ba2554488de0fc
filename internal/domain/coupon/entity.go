package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired        = errors.New("coupon recipient name is required")
	ErrEmailRequired       = errors.New("coupon recipient email is required")
	ErrInvalidSlotDuration = errors.New("slot duration must be a positive number of hours")
	ErrCouponInactive      = errors.New("coupon is not active")
)

// Coupon is a booking authorization token tied to a named client. It grants
// one slot-duration booking privilege per use and stays reusable until an
// admin deactivates it.
type Coupon struct {
	id                uuid.UUID
	code              Code
	name              string
	email             string
	slotDurationHours int
	isActive          bool
	createdAt         time.Time
	usedAt            *time.Time
}

func NewCoupon(code Code, name, email string, slotDurationHours int, now time.Time) (*Coupon, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if slotDurationHours <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	return &Coupon{
		id:                uuid.New(),
		code:              code,
		name:              name,
		email:             email,
		slotDurationHours: slotDurationHours,
		isActive:          true,
		createdAt:         now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	name, email string,
	slotDurationHours int,
	isActive bool,
	createdAt time.Time,
	usedAt *time.Time,
) *Coupon {
	return &Coupon{
		id:                id,
		code:              code,
		name:              name,
		email:             email,
		slotDurationHours: slotDurationHours,
		isActive:          isActive,
		createdAt:         createdAt,
		usedAt:            usedAt,
	}
}

// Grant is what a successful validation hands to the booking flow: the slot
// duration and the identity the booking will be filed under.
type Grant struct {
	SlotDurationHours int
	Name              string
	Email             string
}

func (c *Coupon) Validate() (Grant, error) {
	if !c.isActive {
		return Grant{}, ErrCouponInactive
	}
	return Grant{
		SlotDurationHours: c.slotDurationHours,
		Name:              c.name,
		Email:             c.email,
	}, nil
}

// Update is a partial edit from the admin panel.
type Update struct {
	Name              *string
	Email             *string
	SlotDurationHours *int
	IsActive          *bool
}

func (c *Coupon) Apply(u Update) error {
	if u.Name != nil && *u.Name == "" {
		return ErrNameRequired
	}
	if u.Email != nil && *u.Email == "" {
		return ErrEmailRequired
	}
	if u.SlotDurationHours != nil && *u.SlotDurationHours <= 0 {
		return ErrInvalidSlotDuration
	}

	if u.Name != nil {
		c.name = *u.Name
	}
	if u.Email != nil {
		c.email = *u.Email
	}
	if u.SlotDurationHours != nil {
		c.slotDurationHours = *u.SlotDurationHours
	}
	if u.IsActive != nil {
		c.isActive = *u.IsActive
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) Code() Code             { return c.code }
func (c *Coupon) Name() string           { return c.name }
func (c *Coupon) Email() string          { return c.email }
func (c *Coupon) SlotDurationHours() int { return c.slotDurationHours }
func (c *Coupon) IsActive() bool         { return c.isActive }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UsedAt() *time.Time     { return c.usedAt }
