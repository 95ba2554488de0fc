package request

import (
	"time"

	"lensfolio/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CouponCode string    `json:"couponCode" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		CouponCode: r.CouponCode,
		Name:       r.Name,
		Email:      r.Email,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

type UpdateBookingRequest struct {
	ID        uuid.UUID  `json:"id" binding:"required"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

func (r UpdateBookingRequest) ToInput() usecase.UpdateBookingInput {
	return usecase.UpdateBookingInput{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
	}
}
