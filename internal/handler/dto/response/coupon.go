package response

import (
	"time"

	"lensfolio/internal/domain/coupon"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	SlotDurationHours int        `json:"slotDurationHours"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UsedAt            *time.Time `json:"usedAt,omitempty"`
}

type ValidateCouponResponse struct {
	Valid             bool   `json:"valid"`
	SlotDurationHours int    `json:"slotDurationHours"`
	Name              string `json:"name"`
	Email             string `json:"email"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:                c.ID(),
		Code:              c.Code().String(),
		Name:              c.Name(),
		Email:             c.Email(),
		SlotDurationHours: c.SlotDurationHours(),
		IsActive:          c.IsActive(),
		CreatedAt:         c.CreatedAt(),
		UsedAt:            c.UsedAt(),
	}
}

func FromCoupons(coupons []*coupon.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, FromCoupon(c))
	}
	return out
}

func FromGrant(g coupon.Grant) *ValidateCouponResponse {
	return &ValidateCouponResponse{
		Valid:             true,
		SlotDurationHours: g.SlotDurationHours,
		Name:              g.Name,
		Email:             g.Email,
	}
}
