package request

import (
	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/usecase"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required"`
	SlotDurationHours int    `json:"slotDurationHours" binding:"required"`
}

func (r CreateCouponRequest) ToInput() usecase.CreateCouponInput {
	return usecase.CreateCouponInput{
		Name:              r.Name,
		Email:             r.Email,
		SlotDurationHours: r.SlotDurationHours,
	}
}

type UpdateCouponRequest struct {
	ID                uuid.UUID `json:"id" binding:"required"`
	Name              *string   `json:"name,omitempty"`
	Email             *string   `json:"email,omitempty"`
	SlotDurationHours *int      `json:"slotDurationHours,omitempty"`
	IsActive          *bool     `json:"isActive,omitempty"`
}

func (r UpdateCouponRequest) ToUpdate() coupon.Update {
	return coupon.Update{
		Name:              r.Name,
		Email:             r.Email,
		SlotDurationHours: r.SlotDurationHours,
		IsActive:          r.IsActive,
	}
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
